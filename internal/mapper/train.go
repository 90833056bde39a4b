package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// TrainMapper converts trains
type TrainMapper struct {
	base[domain.Train, dto.TrainDTO]
	linker
}

var _ Mapper[*domain.Train, *dto.TrainDTO] = (*TrainMapper)(nil)

func newTrainMapper(l linker) *TrainMapper {
	m := &TrainMapper{linker: l}
	m.base = base[domain.Train, dto.TrainDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *TrainMapper) toDTO(tr *domain.Train) *dto.TrainDTO {
	d := trainScalars(tr)
	d.TicketIDs = ticketIDs(tr.Tickets())
	return d
}

func (m *TrainMapper) toEntity(d *dto.TrainDTO) *domain.Train {
	tr := trainEntity(d)
	for _, id := range d.TicketIDs {
		if t, ok := m.ticket(id); ok {
			tr.AddTicket(t)
		}
	}
	return tr
}
