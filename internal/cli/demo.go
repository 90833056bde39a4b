package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"railbook/internal/domain"
	"railbook/internal/dto"
	"railbook/internal/service"
)

func demoCmd(a *app) *cobra.Command {
	var format string
	var sqlitePath string

	c := &cobra.Command{
		Use:   "demo",
		Short: "Seed a sample network, book tickets and print the snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tickets, err := seed(a.catalog)
			if err != nil {
				return err
			}

			for _, t := range tickets {
				price, err := a.catalog.Tickets.Quote(t.ID, t.DepartDateBooking)
				if err != nil {
					return err
				}
				a.logger.Info("booked ticket",
					"reference", t.Reference,
					"from", t.StartStation.Name,
					"to", t.EndStation.Name,
					"price", t.Price,
					"quoted", price,
				)
			}

			return a.export(cmd.Context(), cmd.OutOrStdout(), format, sqlitePath)
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "", "output format: json or yaml (default from config)")
	c.Flags().StringVar(&sqlitePath, "sqlite", "", "also write the snapshot into this SQLite archive")
	return c
}

// seed stores three stations, the reference data and three bookings
func seed(c *service.Catalog) ([]*dto.TicketDTO, error) {
	var stations []*dto.StationDTO
	for _, s := range []dto.StationDTO{
		{Name: "Kyiv-Pasazhyrskyi", Address: "Vokzalna Sq 1, Kyiv", Phone: "+380 44 309 7005"},
		{Name: "Lviv", Address: "Dvirtseva Sq 1, Lviv"},
		{Name: "Odesa-Holovna", Address: "Pryvokzalna Sq 2, Odesa"},
	} {
		saved, err := c.Stations.Save(&s)
		if err != nil {
			return nil, fmt.Errorf("seed station %s: %w", s.Name, err)
		}
		stations = append(stations, saved)
	}

	intercity, err := c.Trains.Save(&dto.TrainDTO{SeatCount: 578, Model: "HRCS2"})
	if err != nil {
		return nil, fmt.Errorf("seed train: %w", err)
	}
	night, err := c.Trains.Save(&dto.TrainDTO{SeatCount: 640})
	if err != nil {
		return nil, fmt.Errorf("seed train: %w", err)
	}

	first, err := c.Economies.Save(&dto.EconomyDTO{FareClass: "First"})
	if err != nil {
		return nil, fmt.Errorf("seed economy: %w", err)
	}
	second, err := c.Economies.Save(&dto.EconomyDTO{FareClass: "Second"})
	if err != nil {
		return nil, fmt.Errorf("seed economy: %w", err)
	}

	adult, err := c.AgeGroups.Save(&dto.AgeGroupDTO{TypeName: "Adult"})
	if err != nil {
		return nil, fmt.Errorf("seed age group: %w", err)
	}
	child, err := c.AgeGroups.Save(&dto.AgeGroupDTO{TypeName: "Child"})
	if err != nil {
		return nil, fmt.Errorf("seed age group: %w", err)
	}

	summer := dto.DiscountDTO{
		TypeName: "Summer",
		Percent:  0.1,
		StartAt:  datePtr(2024, 6, 1),
		EndAt:    datePtr(2024, 8, 31),
	}
	summerSaved, err := c.Discounts.Save(&summer)
	if err != nil {
		return nil, fmt.Errorf("seed discount: %w", err)
	}
	student, err := c.Discounts.Save(&dto.DiscountDTO{TypeName: "Student", Percent: 0.25})
	if err != nil {
		return nil, fmt.Errorf("seed discount: %w", err)
	}

	olena, err := c.Users.Save(&dto.UserDTO{
		FirstName:   "Olena",
		LastName:    "Kovalenko",
		DateOfBirth: domain.Date(1990, 3, 14),
		Gender:      "female",
		Email:       "olena@example.com",
		Password:    "olena-secret",
	})
	if err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}
	taras, err := c.Users.Save(&dto.UserDTO{
		FirstName:   "Taras",
		MiddleName:  "Ivanovych",
		LastName:    "Melnyk",
		DateOfBirth: domain.Date(2012, 9, 2),
		Email:       "taras@example.com",
		PhoneNumber: "+380 67 000 0000",
		Password:    "taras-secret",
	})
	if err != nil {
		return nil, fmt.Errorf("seed user: %w", err)
	}

	bookings := []dto.TicketDTO{
		{
			DepartDateBooking:      domain.Date(2024, 7, 12),
			RegistrationDateTicket: domain.Date(2024, 6, 20),
			Price:                  820,
			User:                   &dto.UserDTO{ID: olena.ID},
			StartStation:           &dto.StationDTO{ID: stations[0].ID},
			EndStation:             &dto.StationDTO{ID: stations[1].ID},
			Train:                  &dto.TrainDTO{ID: intercity.ID},
			Economy:                &dto.EconomyDTO{ID: first.ID},
			AgeGroup:               &dto.AgeGroupDTO{ID: adult.ID},
			Discounts:              []dto.DiscountDTO{{ID: summerSaved.ID}},
		},
		{
			DepartDateBooking:      domain.Date(2024, 9, 3),
			ReturnDateBooking:      datePtr(2024, 9, 10),
			RegistrationDateTicket: domain.Date(2024, 8, 15),
			Price:                  460,
			User:                   &dto.UserDTO{ID: taras.ID},
			StartStation:           &dto.StationDTO{ID: stations[0].ID},
			EndStation:             &dto.StationDTO{ID: stations[2].ID},
			Train:                  &dto.TrainDTO{ID: night.ID},
			Economy:                &dto.EconomyDTO{ID: second.ID},
			AgeGroup:               &dto.AgeGroupDTO{ID: child.ID},
			Discounts:              []dto.DiscountDTO{{ID: summerSaved.ID}, {ID: student.ID}},
		},
		{
			DepartDateBooking:      domain.Date(2024, 7, 20),
			RegistrationDateTicket: domain.Date(2024, 7, 1),
			Price:                  390,
			StartStation:           &dto.StationDTO{ID: stations[1].ID},
			EndStation:             &dto.StationDTO{ID: stations[2].ID},
			Train:                  &dto.TrainDTO{ID: night.ID},
			Economy:                &dto.EconomyDTO{ID: second.ID},
			AgeGroup:               &dto.AgeGroupDTO{ID: adult.ID},
		},
	}

	tickets := make([]*dto.TicketDTO, 0, len(bookings))
	for _, b := range bookings {
		saved, err := c.Tickets.Save(&b)
		if err != nil {
			return nil, fmt.Errorf("seed ticket: %w", err)
		}
		tickets = append(tickets, saved)
	}
	return tickets, nil
}

func datePtr(year int, month time.Month, day int) *time.Time {
	t := domain.Date(year, month, day)
	return &t
}
