package service

import (
	"errors"
	"fmt"
	"log/slog"

	"railbook/internal/domain"
	"railbook/internal/dto"
	"railbook/internal/mapper"
	"railbook/internal/repository"
)

var (
	// ErrNilDTO is returned when a nil DTO is saved
	ErrNilDTO = errors.New("nil dto")
	// ErrNotFound is returned when an id or key matches no stored entity
	ErrNotFound = errors.New("not found")
)

// CrudService defines the DTO-level data access contract for one entity
// type. D is a pointer to the DTO type.
type CrudService[D any] interface {
	// Write operations
	Save(d D) (D, error)
	SaveAll(ds []D) []D
	UpdateID(id int, d D) bool

	// Read operations
	FindByID(id int) (D, bool)
	FindAll() []D
	ExistByID(id int) bool
	Count() int

	// Delete operations
	DeleteByID(id int)
	Delete(d D)
	DeleteAll()
	DeleteEntities(ds []D)
}

// entity constrains Crud to pointer entities that can leave the graph
type entity[T any] interface {
	*T
	domain.Identifiable
	domain.Detacher
}

// prepareFunc returns the DTO to convert for a write at id (0 on save).
// It must not modify d.
type prepareFunc[D any] func(id int, d *D) (*D, error)

// Crud implements CrudService on top of a repository store and a mapper
type Crud[T any, E entity[T], D any] struct {
	name     string
	store    *repository.Store[T, E]
	mapper   mapper.Mapper[E, *D]
	idOf     func(*D) int
	prepare  prepareFunc[D]
	eventBus *EventBus
	logger   *slog.Logger
}

// Per-entity instantiations
type (
	StationService  = Crud[domain.Station, *domain.Station, dto.StationDTO]
	TrainService    = Crud[domain.Train, *domain.Train, dto.TrainDTO]
	EconomyService  = Crud[domain.Economy, *domain.Economy, dto.EconomyDTO]
	AgeGroupService = Crud[domain.AgeGroup, *domain.AgeGroup, dto.AgeGroupDTO]
	DiscountService = Crud[domain.Discount, *domain.Discount, dto.DiscountDTO]
)

var _ CrudService[*dto.StationDTO] = (*StationService)(nil)

func newCrud[T any, E entity[T], D any](store *repository.Store[T, E], m mapper.Mapper[E, *D], idOf func(*D) int, o options) *Crud[T, E, D] {
	return &Crud[T, E, D]{
		name:     store.Name(),
		store:    store,
		mapper:   m,
		idOf:     idOf,
		eventBus: o.eventBus,
		logger:   o.logger.With("service", store.Name()),
	}
}

// NewStationService creates the station service
func NewStationService(store *repository.StationStore, m *mapper.StationMapper, opts ...Option) *StationService {
	return newCrud[domain.Station, *domain.Station, dto.StationDTO](store, m, (*dto.StationDTO).Identity, buildOptions(opts))
}

// NewTrainService creates the train service
func NewTrainService(store *repository.TrainStore, m *mapper.TrainMapper, opts ...Option) *TrainService {
	return newCrud[domain.Train, *domain.Train, dto.TrainDTO](store, m, (*dto.TrainDTO).Identity, buildOptions(opts))
}

// NewEconomyService creates the fare class service
func NewEconomyService(store *repository.EconomyStore, m *mapper.EconomyMapper, opts ...Option) *EconomyService {
	return newCrud[domain.Economy, *domain.Economy, dto.EconomyDTO](store, m, (*dto.EconomyDTO).Identity, buildOptions(opts))
}

// NewAgeGroupService creates the age group service
func NewAgeGroupService(store *repository.AgeGroupStore, m *mapper.AgeGroupMapper, opts ...Option) *AgeGroupService {
	return newCrud[domain.AgeGroup, *domain.AgeGroup, dto.AgeGroupDTO](store, m, (*dto.AgeGroupDTO).Identity, buildOptions(opts))
}

// NewDiscountService creates the discount service
func NewDiscountService(store *repository.DiscountStore, m *mapper.DiscountMapper, opts ...Option) *DiscountService {
	return newCrud[domain.Discount, *domain.Discount, dto.DiscountDTO](store, m, (*dto.DiscountDTO).Identity, buildOptions(opts))
}

// toEntity prepares d for a write at id and converts it
func (s *Crud[T, E, D]) toEntity(id int, d *D) (E, error) {
	if s.prepare != nil {
		prepared, err := s.prepare(id, d)
		if err != nil {
			return nil, err
		}
		d = prepared
	}
	return s.mapper.ToEntity(d), nil
}

// Save stores d as a new entity and returns it with the assigned id
func (s *Crud[T, E, D]) Save(d *D) (*D, error) {
	if d == nil {
		return nil, ErrNilDTO
	}

	e, err := s.toEntity(0, d)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", s.name, err)
	}
	saved, err := s.store.Save(e)
	if err != nil {
		return nil, fmt.Errorf("failed to save %s: %w", s.name, err)
	}

	s.publish(EventEntityCreated, saved.Identity())
	return s.mapper.ToDTO(saved), nil
}

// SaveAll saves the non-nil DTOs in order and returns the saved ones
func (s *Crud[T, E, D]) SaveAll(ds []*D) []*D {
	saved := make([]*D, 0, len(ds))
	for _, d := range ds {
		if d == nil {
			continue
		}
		out, err := s.Save(d)
		if err != nil {
			s.logger.Error("failed to save entity", "error", err)
			continue
		}
		saved = append(saved, out)
	}
	return saved
}

// UpdateID replaces the entity stored at id with d. The replaced entity is
// detached from the graph.
func (s *Crud[T, E, D]) UpdateID(id int, d *D) bool {
	if id <= 0 || d == nil {
		s.logger.Warn("rejected update", "id", id, "nil_dto", d == nil)
		return false
	}

	e, err := s.toEntity(id, d)
	if err != nil {
		s.logger.Error("failed to update entity", "id", id, "error", err)
		return false
	}

	old, found := s.store.FindByID(id)
	if !s.store.UpdateID(id, e) {
		e.Detach()
		return false
	}
	if found && old != e {
		old.Detach()
	}

	s.publish(EventEntityUpdated, id)
	return true
}

// FindByID returns the DTO of the entity stored at id
func (s *Crud[T, E, D]) FindByID(id int) (*D, bool) {
	return s.mapper.ToDTOOptional(s.store.FindByID(id))
}

// FindAll returns every stored entity as a DTO in insertion order
func (s *Crud[T, E, D]) FindAll() []*D {
	return s.mapper.ToDTOs(s.store.FindAll())
}

// ExistByID reports whether id is stored
func (s *Crud[T, E, D]) ExistByID(id int) bool {
	return s.store.ExistByID(id)
}

// Count returns the number of stored entities
func (s *Crud[T, E, D]) Count() int {
	return s.store.Count()
}

// DeleteByID removes the entity at id and detaches it from the graph
func (s *Crud[T, E, D]) DeleteByID(id int) {
	e, ok := s.store.FindByID(id)
	if !ok {
		return
	}
	s.store.DeleteByID(id)
	e.Detach()

	s.publish(EventEntityDeleted, id)
}

// Delete removes the entity identified by d
func (s *Crud[T, E, D]) Delete(d *D) {
	if d == nil {
		return
	}
	s.DeleteByID(s.idOf(d))
}

// DeleteAll removes and detaches every entity
func (s *Crud[T, E, D]) DeleteAll() {
	for _, e := range s.store.FindAll() {
		e.Detach()
	}
	s.store.DeleteAll()

	s.publish(EventEntitiesCleared, 0)
}

// DeleteEntities removes the entities identified by ds
func (s *Crud[T, E, D]) DeleteEntities(ds []*D) {
	for _, d := range ds {
		s.Delete(d)
	}
}

func (s *Crud[T, E, D]) publish(eventType EventType, id int) {
	s.logger.Debug("publishing event", "type", eventType, "id", id)
	s.eventBus.Publish(Event{
		Type:     eventType,
		Entity:   s.name,
		EntityID: id,
	})
}
