package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"railbook/internal/domain"
	"railbook/internal/dto"
	"railbook/internal/mapper"
	"railbook/internal/repository"
)

// TicketService manages tickets. Every stored ticket carries a booking
// reference.
type TicketService struct {
	*Crud[domain.Ticket, *domain.Ticket, dto.TicketDTO]
}

var _ CrudService[*dto.TicketDTO] = (*TicketService)(nil)

// NewTicketService creates the ticket service
func NewTicketService(store *repository.TicketStore, m *mapper.TicketMapper, opts ...Option) *TicketService {
	s := &TicketService{
		Crud: newCrud[domain.Ticket, *domain.Ticket, dto.TicketDTO](store, m, (*dto.TicketDTO).Identity, buildOptions(opts)),
	}
	s.prepare = s.assignReference
	return s
}

// assignReference settles the booking reference of a write at id (0 on
// save). A reference already held by another stored ticket is never reused:
// the replaced ticket's reference is kept, otherwise a new one is issued.
func (s *TicketService) assignReference(id int, d *dto.TicketDTO) (*dto.TicketDTO, error) {
	if d.Reference != "" && !s.referenceHeld(d.Reference, id) {
		return d, nil
	}
	prepared := *d
	if old, ok := s.store.FindByID(id); ok && old.Reference != "" {
		prepared.Reference = old.Reference
	} else {
		prepared.Reference = uuid.NewString()
	}
	if d.Reference != "" && d.Reference != prepared.Reference {
		s.logger.Debug("reissued booking reference", "id", id, "held", d.Reference, "reference", prepared.Reference)
	}
	return &prepared, nil
}

// referenceHeld reports whether a stored ticket other than id carries ref
func (s *TicketService) referenceHeld(ref string, id int) bool {
	for _, t := range s.store.FindAll() {
		if t.Reference == ref && t.ID != id {
			return true
		}
	}
	return false
}

// FindByReference returns the ticket booked under ref
func (s *TicketService) FindByReference(ref string) (*dto.TicketDTO, bool) {
	if ref == "" {
		return nil, false
	}
	for _, t := range s.store.FindAll() {
		if t.Reference == ref {
			return s.mapper.ToDTO(t), true
		}
	}
	return nil, false
}

// Quote returns the price of ticket id on day after its active discounts
func (s *TicketService) Quote(id int, day time.Time) (float64, error) {
	t, ok := s.store.FindByID(id)
	if !ok {
		return 0, fmt.Errorf("ticket %d: %w", id, ErrNotFound)
	}
	price := t.DiscountedPrice(day)
	s.logger.Debug("quoted ticket", "id", id, "price", price)
	return price, nil
}
