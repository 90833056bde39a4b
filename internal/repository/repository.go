package repository

import (
	"errors"

	"railbook/internal/domain"
)

// ErrNilEntity is returned when a nil entity is saved
var ErrNilEntity = errors.New("nil entity")

// CrudRepository defines the data access contract for one entity type
type CrudRepository[E domain.Identifiable] interface {
	// Write operations
	Save(entity E) (E, error)
	SaveAll(entities []E) []E
	UpdateID(id int, entity E) bool

	// Read operations
	FindByID(id int) (E, bool)
	FindAll() []E
	ExistByID(id int) bool
	Count() int

	// Delete operations
	DeleteByID(id int)
	Delete(entity E)
	DeleteAll()
	DeleteEntities(entities []E)
}

// Operation names a store operation reported to an Observer
type Operation string

const (
	OpSave      Operation = "save"
	OpUpdate    Operation = "update"
	OpFind      Operation = "find"
	OpDelete    Operation = "delete"
	OpDeleteAll Operation = "delete_all"
	OpReject    Operation = "reject"
)

// Observer receives every store operation together with the store size
// after it completed
type Observer interface {
	Observe(entity string, op Operation, size int)
}

type nopObserver struct{}

func (nopObserver) Observe(string, Operation, int) {}
