package mapper

import (
	"time"

	"railbook/internal/domain"
	"railbook/internal/dto"
)

// The functions below copy scalar fields only. They produce the shallow
// forms embedded in ticket DTOs and the reference entities linked when a
// stored instance is not available.

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func userScalars(u *domain.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:          u.ID,
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth,
		Gender:      u.Gender,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Password:    u.Password,
	}
}

func userEntity(d *dto.UserDTO) *domain.User {
	return &domain.User{
		ID:          d.ID,
		FirstName:   d.FirstName,
		MiddleName:  d.MiddleName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		Gender:      d.Gender,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Password:    d.Password,
	}
}

func stationScalars(s *domain.Station) *dto.StationDTO {
	return &dto.StationDTO{ID: s.ID, Name: s.Name, Address: s.Address, Phone: s.Phone}
}

func stationEntity(d *dto.StationDTO) *domain.Station {
	return &domain.Station{ID: d.ID, Name: d.Name, Address: d.Address, Phone: d.Phone}
}

func trainScalars(tr *domain.Train) *dto.TrainDTO {
	return &dto.TrainDTO{ID: tr.ID, SeatCount: tr.SeatCount, Model: tr.Model}
}

func trainEntity(d *dto.TrainDTO) *domain.Train {
	return &domain.Train{ID: d.ID, SeatCount: d.SeatCount, Model: d.Model}
}

func economyScalars(e *domain.Economy) *dto.EconomyDTO {
	return &dto.EconomyDTO{ID: e.ID, FareClass: e.FareClass}
}

func economyEntity(d *dto.EconomyDTO) *domain.Economy {
	return &domain.Economy{ID: d.ID, FareClass: d.FareClass}
}

func ageGroupScalars(g *domain.AgeGroup) *dto.AgeGroupDTO {
	return &dto.AgeGroupDTO{ID: g.ID, TypeName: g.TypeName}
}

func ageGroupEntity(d *dto.AgeGroupDTO) *domain.AgeGroup {
	return &domain.AgeGroup{ID: d.ID, TypeName: d.TypeName}
}

func discountScalars(d *domain.Discount) *dto.DiscountDTO {
	return &dto.DiscountDTO{
		ID:       d.ID,
		TypeName: d.TypeName,
		Percent:  d.Percent,
		StartAt:  copyTime(d.StartAt),
		EndAt:    copyTime(d.EndAt),
	}
}

func discountEntity(d *dto.DiscountDTO) *domain.Discount {
	return &domain.Discount{
		ID:       d.ID,
		TypeName: d.TypeName,
		Percent:  d.Percent,
		StartAt:  copyTime(d.StartAt),
		EndAt:    copyTime(d.EndAt),
	}
}

func ticketScalars(t *domain.Ticket) *dto.TicketDTO {
	return &dto.TicketDTO{
		ID:                     t.ID,
		Reference:              t.Reference,
		DepartDateBooking:      t.DepartDateBooking,
		ReturnDateBooking:      copyTime(t.ReturnDateBooking),
		RegistrationDateTicket: t.RegistrationDateTicket,
		ReturnDateTicket:       copyTime(t.ReturnDateTicket),
		Price:                  t.Price,
	}
}

func ticketEntity(d *dto.TicketDTO) *domain.Ticket {
	return &domain.Ticket{
		ID:                     d.ID,
		Reference:              d.Reference,
		DepartDateBooking:      d.DepartDateBooking,
		ReturnDateBooking:      copyTime(d.ReturnDateBooking),
		RegistrationDateTicket: d.RegistrationDateTicket,
		ReturnDateTicket:       copyTime(d.ReturnDateTicket),
		Price:                  d.Price,
	}
}
