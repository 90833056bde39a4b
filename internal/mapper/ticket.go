package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// TicketMapper converts tickets. Associates are converted shallow, which
// is what keeps the ticket/station/ticket cycle out of the DTO graph.
type TicketMapper struct {
	base[domain.Ticket, dto.TicketDTO]
	linker
}

var _ Mapper[*domain.Ticket, *dto.TicketDTO] = (*TicketMapper)(nil)

func newTicketMapper(l linker) *TicketMapper {
	m := &TicketMapper{linker: l}
	m.base = base[domain.Ticket, dto.TicketDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *TicketMapper) toDTO(t *domain.Ticket) *dto.TicketDTO {
	d := ticketScalars(t)
	if u := t.User(); u != nil {
		d.User = userScalars(u)
		d.User.Password = ""
	}
	if s := t.StartStation(); s != nil {
		d.StartStation = stationScalars(s)
	}
	if s := t.EndStation(); s != nil {
		d.EndStation = stationScalars(s)
	}
	if tr := t.Train(); tr != nil {
		d.Train = trainScalars(tr)
	}
	if e := t.Economy(); e != nil {
		d.Economy = economyScalars(e)
	}
	if g := t.AgeGroup(); g != nil {
		d.AgeGroup = ageGroupScalars(g)
	}
	for _, dc := range t.Discounts() {
		d.Discounts = append(d.Discounts, *discountScalars(dc))
	}
	return d
}

func (m *TicketMapper) toEntity(d *dto.TicketDTO) *domain.Ticket {
	t := ticketEntity(d)

	if d.User != nil {
		if e, ok := lookup(m.linker, "user", d.User.ID, Resolver.User, func() *domain.User {
			return userEntity(d.User)
		}); ok {
			t.SetUser(e)
		}
	}
	if d.StartStation != nil {
		if s, ok := m.station(d.StartStation); ok {
			t.SetStartStation(s)
		}
	}
	if d.EndStation != nil {
		// a round trip back to the departure station links the same instance
		if start := t.StartStation(); start != nil && d.EndStation.ID > 0 && start.ID == d.EndStation.ID {
			t.SetEndStation(start)
		} else if s, ok := m.station(d.EndStation); ok {
			t.SetEndStation(s)
		}
	}
	if d.Train != nil {
		if e, ok := lookup(m.linker, "train", d.Train.ID, Resolver.Train, func() *domain.Train {
			return trainEntity(d.Train)
		}); ok {
			t.SetTrain(e)
		}
	}
	if d.Economy != nil {
		if e, ok := lookup(m.linker, "economy", d.Economy.ID, Resolver.Economy, func() *domain.Economy {
			return economyEntity(d.Economy)
		}); ok {
			t.SetEconomy(e)
		}
	}
	if d.AgeGroup != nil {
		if e, ok := lookup(m.linker, "age_group", d.AgeGroup.ID, Resolver.AgeGroup, func() *domain.AgeGroup {
			return ageGroupEntity(d.AgeGroup)
		}); ok {
			t.SetAgeGroup(e)
		}
	}
	for i := range d.Discounts {
		dd := &d.Discounts[i]
		if dc, ok := lookup(m.linker, "discount", dd.ID, Resolver.Discount, func() *domain.Discount {
			return discountEntity(dd)
		}); ok {
			t.AddDiscount(dc)
		}
	}
	return t
}

func (m *TicketMapper) station(d *dto.StationDTO) (*domain.Station, bool) {
	return lookup(m.linker, "station", d.ID, Resolver.Station, func() *domain.Station {
		return stationEntity(d)
	})
}
