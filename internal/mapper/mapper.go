package mapper

import (
	"log/slog"

	"railbook/internal/domain"
)

// Mapper converts one entity type to and from its DTO. E and D are pointer
// types.
type Mapper[E, D any] interface {
	ToDTO(entity E) D
	ToDTOOptional(entity E, ok bool) (D, bool)
	ToDTOs(entities []E) []D
	ToEntity(d D) E
	ToEntityOptional(d D, ok bool) (E, bool)
	ToEntities(ds []D) []E
}

// Resolver finds stored entities by id
type Resolver interface {
	User(id int) (*domain.User, bool)
	Station(id int) (*domain.Station, bool)
	Train(id int) (*domain.Train, bool)
	Economy(id int) (*domain.Economy, bool)
	AgeGroup(id int) (*domain.AgeGroup, bool)
	Discount(id int) (*domain.Discount, bool)
	Ticket(id int) (*domain.Ticket, bool)
}

// base implements the nil handling and the collection forms of Mapper on
// top of the single-value conversions, which only ever see non-nil input
type base[ET, DT any] struct {
	toDTO    func(*ET) *DT
	toEntity func(*DT) *ET
}

func (b base[ET, DT]) ToDTO(entity *ET) *DT {
	if entity == nil {
		return new(DT)
	}
	return b.toDTO(entity)
}

func (b base[ET, DT]) ToDTOOptional(entity *ET, ok bool) (*DT, bool) {
	if !ok || entity == nil {
		return nil, false
	}
	return b.toDTO(entity), true
}

func (b base[ET, DT]) ToDTOs(entities []*ET) []*DT {
	out := make([]*DT, 0, len(entities))
	for _, entity := range entities {
		if entity != nil {
			out = append(out, b.toDTO(entity))
		}
	}
	return out
}

func (b base[ET, DT]) ToEntity(d *DT) *ET {
	if d == nil {
		return new(ET)
	}
	return b.toEntity(d)
}

func (b base[ET, DT]) ToEntityOptional(d *DT, ok bool) (*ET, bool) {
	if !ok || d == nil {
		return nil, false
	}
	return b.toEntity(d), true
}

func (b base[ET, DT]) ToEntities(ds []*DT) []*ET {
	out := make([]*ET, 0, len(ds))
	for _, d := range ds {
		if d != nil {
			out = append(out, b.toEntity(d))
		}
	}
	return out
}

// linker resolves association targets while building entities
type linker struct {
	resolver Resolver
	logger   *slog.Logger
}

func newLinker(resolver Resolver, logger *slog.Logger) linker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return linker{resolver: resolver, logger: logger}
}

// lookup returns the stored entity with id. Without a resolver, or for a
// transient reference (id <= 0), it returns fallback(). An id the resolver
// does not know is reported as absent so no link to a missing entity is made.
func lookup[E any](l linker, kind string, id int, find func(Resolver, int) (E, bool), fallback func() E) (E, bool) {
	if l.resolver != nil && id > 0 {
		e, ok := find(l.resolver, id)
		if !ok {
			l.logger.Debug("dropping unknown reference", "entity", kind, "id", id)
		}
		return e, ok
	}
	l.logger.Debug("linking reference entity", "entity", kind, "id", id)
	return fallback(), true
}

func (l linker) ticket(id int) (*domain.Ticket, bool) {
	return lookup(l, "ticket", id, Resolver.Ticket, func() *domain.Ticket {
		return &domain.Ticket{ID: id}
	})
}

// ticketIDs lists the ids of the persistent tickets
func ticketIDs(tickets []*domain.Ticket) []int {
	var ids []int
	for _, t := range tickets {
		if t.ID > 0 {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// Set holds one mapper per entity type sharing a resolver
type Set struct {
	Users     *UserMapper
	Stations  *StationMapper
	Trains    *TrainMapper
	Economies *EconomyMapper
	AgeGroups *AgeGroupMapper
	Discounts *DiscountMapper
	Tickets   *TicketMapper
}

// NewSet creates the mappers. resolver may be nil, in which case every
// association is linked to a reference entity. With a resolver, ids it
// cannot find are dropped.
func NewSet(resolver Resolver, logger *slog.Logger) *Set {
	l := newLinker(resolver, logger)
	return &Set{
		Users:     newUserMapper(l),
		Stations:  newStationMapper(l),
		Trains:    newTrainMapper(l),
		Economies: newEconomyMapper(l),
		AgeGroups: newAgeGroupMapper(l),
		Discounts: newDiscountMapper(l),
		Tickets:   newTicketMapper(l),
	}
}
