package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// StationMapper converts stations
type StationMapper struct {
	base[domain.Station, dto.StationDTO]
	linker
}

var _ Mapper[*domain.Station, *dto.StationDTO] = (*StationMapper)(nil)

func newStationMapper(l linker) *StationMapper {
	m := &StationMapper{linker: l}
	m.base = base[domain.Station, dto.StationDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *StationMapper) toDTO(s *domain.Station) *dto.StationDTO {
	d := stationScalars(s)
	d.DepartureTicketIDs = ticketIDs(s.Departures())
	d.ArrivalTicketIDs = ticketIDs(s.Arrivals())
	return d
}

func (m *StationMapper) toEntity(d *dto.StationDTO) *domain.Station {
	s := stationEntity(d)
	// a ticket may start and end here; link one instance for both roles
	linked := make(map[int]*domain.Ticket)
	ticket := func(id int) (*domain.Ticket, bool) {
		if t, ok := linked[id]; ok {
			return t, true
		}
		t, ok := m.ticket(id)
		if ok {
			linked[id] = t
		}
		return t, ok
	}
	for _, id := range d.DepartureTicketIDs {
		if t, ok := ticket(id); ok {
			t.SetStartStation(s)
		}
	}
	for _, id := range d.ArrivalTicketIDs {
		if t, ok := ticket(id); ok {
			t.SetEndStation(s)
		}
	}
	return s
}
