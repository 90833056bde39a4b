package mapper

import (
	"railbook/internal/domain"
	"railbook/internal/dto"
)

// DiscountMapper converts discounts
type DiscountMapper struct {
	base[domain.Discount, dto.DiscountDTO]
	linker
}

var _ Mapper[*domain.Discount, *dto.DiscountDTO] = (*DiscountMapper)(nil)

func newDiscountMapper(l linker) *DiscountMapper {
	m := &DiscountMapper{linker: l}
	m.base = base[domain.Discount, dto.DiscountDTO]{toDTO: m.toDTO, toEntity: m.toEntity}
	return m
}

func (m *DiscountMapper) toDTO(dc *domain.Discount) *dto.DiscountDTO {
	d := discountScalars(dc)
	d.TicketIDs = ticketIDs(dc.Tickets())
	return d
}

func (m *DiscountMapper) toEntity(d *dto.DiscountDTO) *domain.Discount {
	dc := discountEntity(d)
	for _, id := range d.TicketIDs {
		if t, ok := m.ticket(id); ok {
			dc.AddTicket(t)
		}
	}
	return dc
}
