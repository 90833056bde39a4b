package repository

import (
	"log/slog"
	"sync"

	"railbook/internal/domain"
)

// Entity constrains Store to pointer entities
type Entity[T any] interface {
	*T
	domain.Identifiable
}

// Option configures a Store
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer Observer
}

// WithLogger sets the logger used for per-operation debug logs
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver reports every operation to observer
func WithObserver(observer Observer) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

// Store is the in-memory repository for one entity type
type Store[T any, E Entity[T]] struct {
	name     string
	logger   *slog.Logger
	observer Observer

	mu     sync.RWMutex
	lastID int
	items  map[int]E
	order  []int
}

var _ CrudRepository[*domain.Station] = (*Store[domain.Station, *domain.Station])(nil)

// NewStore creates an empty store. name labels logs and metrics.
func NewStore[T any, E Entity[T]](name string, opts ...Option) *Store[T, E] {
	o := options{
		logger:   slog.New(slog.DiscardHandler),
		observer: nopObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Store[T, E]{
		name:     name,
		logger:   o.logger.With("entity", name),
		observer: o.observer,
		items:    make(map[int]E),
	}
}

// Name returns the entity label of the store
func (s *Store[T, E]) Name() string {
	return s.name
}

// Save assigns the next id to entity and stores it. Saving the instance
// already stored under its id is a no-op.
func (s *Store[T, E]) Save(entity E) (E, error) {
	if entity == nil {
		s.logger.Warn("rejected nil entity")
		s.observer.Observe(s.name, OpReject, s.Count())
		return nil, ErrNilEntity
	}

	s.mu.Lock()
	id := s.saveLocked(entity)
	size := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("saved entity", "id", id)
	s.observer.Observe(s.name, OpSave, size)
	return entity, nil
}

// SaveAll saves the non-nil entities in order and returns them
func (s *Store[T, E]) SaveAll(entities []E) []E {
	saved := make([]E, 0, len(entities))
	for _, entity := range entities {
		if entity == nil {
			s.logger.Debug("skipped nil entity")
			continue
		}
		if _, err := s.Save(entity); err == nil {
			saved = append(saved, entity)
		}
	}
	return saved
}

func (s *Store[T, E]) saveLocked(entity E) int {
	if id := entity.Identity(); id > 0 {
		if stored, ok := s.items[id]; ok && stored == entity {
			return id
		}
	}

	s.lastID++
	entity.AssignIdentity(s.lastID)
	s.items[s.lastID] = entity
	s.order = append(s.order, s.lastID)
	return s.lastID
}

// FindByID returns the entity stored under id
func (s *Store[T, E]) FindByID(id int) (E, bool) {
	if id <= 0 {
		return nil, false
	}

	s.mu.RLock()
	entity, ok := s.items[id]
	size := len(s.items)
	s.mu.RUnlock()

	s.logger.Debug("find entity", "id", id, "found", ok)
	s.observer.Observe(s.name, OpFind, size)
	return entity, ok
}

// FindAll returns every stored entity in insertion order
func (s *Store[T, E]) FindAll() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]E, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.items[id])
	}
	return all
}

// ExistByID reports whether id is stored
func (s *Store[T, E]) ExistByID(id int) bool {
	if id <= 0 {
		return false
	}

	s.mu.RLock()
	_, ok := s.items[id]
	s.mu.RUnlock()

	s.logger.Debug("existence check", "id", id, "exists", ok)
	return ok
}

// Count returns the number of stored entities
func (s *Store[T, E]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// UpdateID replaces the entity at id with entity and forces entity's id to
// id. A missing id is inserted. Returns false for an absent id or nil entity.
func (s *Store[T, E]) UpdateID(id int, entity E) bool {
	if id <= 0 || entity == nil {
		s.logger.Warn("failed to update entity", "id", id)
		s.observer.Observe(s.name, OpReject, s.Count())
		return false
	}

	s.mu.Lock()
	if prev := entity.Identity(); prev > 0 && prev != id && s.items[prev] == entity {
		s.removeLocked(prev)
	}
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	entity.AssignIdentity(id)
	s.items[id] = entity
	// ids handed out by UpdateID must never come back from Save
	if id > s.lastID {
		s.lastID = id
	}
	size := len(s.items)
	s.mu.Unlock()

	s.logger.Debug("updated entity", "id", id)
	s.observer.Observe(s.name, OpUpdate, size)
	return true
}

// DeleteByID removes the entity stored under id, if any
func (s *Store[T, E]) DeleteByID(id int) {
	if id <= 0 {
		return
	}

	s.mu.Lock()
	removed := s.removeLocked(id)
	size := len(s.items)
	s.mu.Unlock()

	if removed {
		s.logger.Debug("deleted entity", "id", id)
		s.observer.Observe(s.name, OpDelete, size)
	}
}

// Delete removes entity by its id
func (s *Store[T, E]) Delete(entity E) {
	if entity == nil {
		return
	}
	s.DeleteByID(entity.Identity())
}

// DeleteAll removes every entity. The id counter keeps counting.
func (s *Store[T, E]) DeleteAll() {
	s.mu.Lock()
	s.items = make(map[int]E)
	s.order = nil
	s.mu.Unlock()

	s.logger.Debug("deleted all entities")
	s.observer.Observe(s.name, OpDeleteAll, 0)
}

// DeleteEntities removes each non-nil entity of the list by its id
func (s *Store[T, E]) DeleteEntities(entities []E) {
	for _, entity := range entities {
		s.Delete(entity)
	}
}

// Reset empties the store and restarts ids at 1
func (s *Store[T, E]) Reset() {
	s.mu.Lock()
	s.lastID = 0
	s.items = make(map[int]E)
	s.order = nil
	s.mu.Unlock()

	s.logger.Debug("reset store")
	s.observer.Observe(s.name, OpDeleteAll, 0)
}

func (s *Store[T, E]) removeLocked(id int) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, stored := range s.order {
		if stored == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}
