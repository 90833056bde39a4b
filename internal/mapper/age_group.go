package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// AgeGroupMapper converts age groups
type AgeGroupMapper struct {
	base[domain.AgeGroup, dto.AgeGroupDTO]
	linker
}

var _ Mapper[*domain.AgeGroup, *dto.AgeGroupDTO] = (*AgeGroupMapper)(nil)

func newAgeGroupMapper(l linker) *AgeGroupMapper {
	m := &AgeGroupMapper{linker: l}
	m.base = base[domain.AgeGroup, dto.AgeGroupDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *AgeGroupMapper) toDTO(g *domain.AgeGroup) *dto.AgeGroupDTO {
	d := ageGroupScalars(g)
	d.TicketIDs = ticketIDs(g.Tickets())
	return d
}

func (m *AgeGroupMapper) toEntity(d *dto.AgeGroupDTO) *domain.AgeGroup {
	g := ageGroupEntity(d)
	for _, id := range d.TicketIDs {
		if t, ok := m.ticket(id); ok {
			g.AddTicket(t)
		}
	}
	return g
}
