package service

import (
	"errors"
	"fmt"
	"log/slog"

	"railbook/internal/dto"
	"railbook/internal/mapper"
	"railbook/internal/repository"
)

// ErrNilSnapshot is returned when importing a nil snapshot
var ErrNilSnapshot = errors.New("nil snapshot")

// Catalog bundles the services of one booking graph
type Catalog struct {
	Users     *UserService
	Stations  *StationService
	Trains    *TrainService
	Economies *EconomyService
	AgeGroups *AgeGroupService
	Discounts *DiscountService
	Tickets   *TicketService

	registry *repository.Registry
	eventBus *EventBus
	logger   *slog.Logger
}

// NewCatalog creates the services over registry. Mappers resolve references
// through the registry.
func NewCatalog(registry *repository.Registry, opts ...Option) *Catalog {
	o := buildOptions(opts)
	// share one bus across the services even when none was given
	opts = append(opts, WithEventBus(o.eventBus))

	mappers := mapper.NewSet(registry, o.logger)
	return &Catalog{
		Users:     NewUserService(registry.Users, mappers.Users, opts...),
		Stations:  NewStationService(registry.Stations, mappers.Stations, opts...),
		Trains:    NewTrainService(registry.Trains, mappers.Trains, opts...),
		Economies: NewEconomyService(registry.Economies, mappers.Economies, opts...),
		AgeGroups: NewAgeGroupService(registry.AgeGroups, mappers.AgeGroups, opts...),
		Discounts: NewDiscountService(registry.Discounts, mappers.Discounts, opts...),
		Tickets:   NewTicketService(registry.Tickets, mappers.Tickets, opts...),
		registry:  registry,
		eventBus:  o.eventBus,
		logger:    o.logger,
	}
}

// EventBus returns the bus every service of the catalog publishes on
func (c *Catalog) EventBus() *EventBus {
	return c.eventBus
}

// Counts returns the number of stored entities per entity label
func (c *Catalog) Counts() map[string]int {
	return c.registry.Counts()
}

// Snapshot exports every stored entity
func (c *Catalog) Snapshot() *dto.Snapshot {
	snap := dto.NewSnapshot()
	snap.Users = values(c.Users.FindAll())
	snap.Stations = values(c.Stations.FindAll())
	snap.Trains = values(c.Trains.FindAll())
	snap.Economies = values(c.Economies.FindAll())
	snap.AgeGroups = values(c.AgeGroups.FindAll())
	snap.Discounts = values(c.Discounts.FindAll())
	snap.Tickets = values(c.Tickets.FindAll())
	return snap
}

// Clear removes every entity from the graph
func (c *Catalog) Clear() {
	c.Tickets.DeleteAll()
	c.Users.DeleteAll()
	c.Stations.DeleteAll()
	c.Trains.DeleteAll()
	c.Economies.DeleteAll()
	c.AgeGroups.DeleteAll()
	c.Discounts.DeleteAll()
}

func values[D any](ds []*D) []D {
	out := make([]D, 0, len(ds))
	for _, d := range ds {
		out = append(out, *d)
	}
	return out
}

// ImportResult represents the result of an import operation
type ImportResult struct {
	// Created counts the saved entities per entity label
	Created map[string]int `json:"created"`
	// IDs maps the ids of the snapshot to the ids assigned on save
	IDs map[string]map[int]int `json:"ids"`
	// Dropped counts ticket references to entities missing from the snapshot
	Dropped int `json:"dropped"`
}

func newImportResult() *ImportResult {
	return &ImportResult{
		Created: make(map[string]int),
		IDs:     make(map[string]map[int]int),
	}
}

func (r *ImportResult) record(entity string, from, to int) {
	r.Created[entity]++
	if from <= 0 {
		return
	}
	if r.IDs[entity] == nil {
		r.IDs[entity] = make(map[int]int)
	}
	r.IDs[entity][from] = to
}

// Import saves every entity of snap under fresh ids. Associations are
// taken from the ticket side: owner ticket id lists are ignored and each
// ticket is linked to the saved counterparts of its associates.
func (c *Catalog) Import(snap *dto.Snapshot) (*ImportResult, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	result := newImportResult()

	for _, d := range snap.Users {
		d.TicketID = 0
		if err := importOne(c.Users, repository.EntityUser, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.Stations {
		d.DepartureTicketIDs, d.ArrivalTicketIDs = nil, nil
		if err := importOne(c.Stations, repository.EntityStation, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.Trains {
		d.TicketIDs = nil
		if err := importOne(c.Trains, repository.EntityTrain, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.Economies {
		d.TicketIDs = nil
		if err := importOne(c.Economies, repository.EntityEconomy, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.AgeGroups {
		d.TicketIDs = nil
		if err := importOne(c.AgeGroups, repository.EntityAgeGroup, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.Discounts {
		d.TicketIDs = nil
		if err := importOne(c.Discounts, repository.EntityDiscount, &d, result); err != nil {
			return result, err
		}
	}
	for _, d := range snap.Tickets {
		remapped := c.remapTicket(d, result)
		if err := importOne(c.Tickets, repository.EntityTicket, remapped, result); err != nil {
			return result, err
		}
	}

	c.logger.Info("imported snapshot", "entities", snap.Len(), "dropped_references", result.Dropped)
	c.eventBus.Publish(Event{
		Type:    EventSnapshotImported,
		Payload: result,
	})
	return result, nil
}

func importOne[D any, P interface {
	*D
	Identity() int
}](svc interface{ Save(P) (P, error) }, entity string, d P, result *ImportResult) error {
	from := d.Identity()
	saved, err := svc.Save(d)
	if err != nil {
		return fmt.Errorf("failed to import %s %d: %w", entity, from, err)
	}
	result.record(entity, from, saved.Identity())
	return nil
}

// assigned returns the id given on import to the snapshot entity id
func (r *ImportResult) assigned(entity string, id int) (int, bool) {
	to, ok := r.IDs[entity][id]
	if !ok {
		r.Dropped++
	}
	return to, ok
}

// remapTicket points the associates of d at the ids assigned on import.
// Associates the snapshot does not contain are dropped.
func (c *Catalog) remapTicket(d dto.TicketDTO, result *ImportResult) *dto.TicketDTO {
	if d.User != nil {
		u := *d.User
		d.User = nil
		if id, ok := result.assigned(repository.EntityUser, u.ID); ok {
			u.ID = id
			d.User = &u
		}
	}
	d.StartStation = remapStation(d.StartStation, result)
	d.EndStation = remapStation(d.EndStation, result)
	if d.Train != nil {
		tr := *d.Train
		d.Train = nil
		if id, ok := result.assigned(repository.EntityTrain, tr.ID); ok {
			tr.ID = id
			d.Train = &tr
		}
	}
	if d.Economy != nil {
		e := *d.Economy
		d.Economy = nil
		if id, ok := result.assigned(repository.EntityEconomy, e.ID); ok {
			e.ID = id
			d.Economy = &e
		}
	}
	if d.AgeGroup != nil {
		g := *d.AgeGroup
		d.AgeGroup = nil
		if id, ok := result.assigned(repository.EntityAgeGroup, g.ID); ok {
			g.ID = id
			d.AgeGroup = &g
		}
	}
	discounts := make([]dto.DiscountDTO, 0, len(d.Discounts))
	for _, dc := range d.Discounts {
		if id, ok := result.assigned(repository.EntityDiscount, dc.ID); ok {
			dc.ID = id
			discounts = append(discounts, dc)
		}
	}
	d.Discounts = discounts
	return &d
}

func remapStation(s *dto.StationDTO, result *ImportResult) *dto.StationDTO {
	if s == nil {
		return nil
	}
	id, ok := result.assigned(repository.EntityStation, s.ID)
	if !ok {
		return nil
	}
	remapped := *s
	remapped.ID = id
	return &remapped
}
