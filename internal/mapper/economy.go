package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// EconomyMapper converts fare classes
type EconomyMapper struct {
	base[domain.Economy, dto.EconomyDTO]
	linker
}

var _ Mapper[*domain.Economy, *dto.EconomyDTO] = (*EconomyMapper)(nil)

func newEconomyMapper(l linker) *EconomyMapper {
	m := &EconomyMapper{linker: l}
	m.base = base[domain.Economy, dto.EconomyDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *EconomyMapper) toDTO(e *domain.Economy) *dto.EconomyDTO {
	d := economyScalars(e)
	d.TicketIDs = ticketIDs(e.Tickets())
	return d
}

func (m *EconomyMapper) toEntity(d *dto.EconomyDTO) *domain.Economy {
	e := economyEntity(d)
	for _, id := range d.TicketIDs {
		if t, ok := m.ticket(id); ok {
			e.AddTicket(t)
		}
	}
	return e
}
