package repository

import "railbook/internal/domain"

// Store instantiations for the booking graph
type (
	UserStore     = Store[domain.User, *domain.User]
	StationStore  = Store[domain.Station, *domain.Station]
	TrainStore    = Store[domain.Train, *domain.Train]
	EconomyStore  = Store[domain.Economy, *domain.Economy]
	AgeGroupStore = Store[domain.AgeGroup, *domain.AgeGroup]
	DiscountStore = Store[domain.Discount, *domain.Discount]
	TicketStore   = Store[domain.Ticket, *domain.Ticket]
)

// Entity labels used for logs and metrics
const (
	EntityUser     = "user"
	EntityStation  = "station"
	EntityTrain    = "train"
	EntityEconomy  = "economy"
	EntityAgeGroup = "age_group"
	EntityDiscount = "discount"
	EntityTicket   = "ticket"
)

// Registry holds one store per entity type of a booking graph
type Registry struct {
	Users     *UserStore
	Stations  *StationStore
	Trains    *TrainStore
	Economies *EconomyStore
	AgeGroups *AgeGroupStore
	Discounts *DiscountStore
	Tickets   *TicketStore
}

// NewRegistry creates empty stores sharing the same options
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		Users:     NewStore[domain.User](EntityUser, opts...),
		Stations:  NewStore[domain.Station](EntityStation, opts...),
		Trains:    NewStore[domain.Train](EntityTrain, opts...),
		Economies: NewStore[domain.Economy](EntityEconomy, opts...),
		AgeGroups: NewStore[domain.AgeGroup](EntityAgeGroup, opts...),
		Discounts: NewStore[domain.Discount](EntityDiscount, opts...),
		Tickets:   NewStore[domain.Ticket](EntityTicket, opts...),
	}
}

// Reset empties every store and restarts ids
func (r *Registry) Reset() {
	r.Users.Reset()
	r.Stations.Reset()
	r.Trains.Reset()
	r.Economies.Reset()
	r.AgeGroups.Reset()
	r.Discounts.Reset()
	r.Tickets.Reset()
}

// Counts returns the number of stored entities per entity label
func (r *Registry) Counts() map[string]int {
	return map[string]int{
		EntityUser:     r.Users.Count(),
		EntityStation:  r.Stations.Count(),
		EntityTrain:    r.Trains.Count(),
		EntityEconomy:  r.Economies.Count(),
		EntityAgeGroup: r.AgeGroups.Count(),
		EntityDiscount: r.Discounts.Count(),
		EntityTicket:   r.Tickets.Count(),
	}
}

// Lookups by id, used to resolve references

func (r *Registry) User(id int) (*domain.User, bool)         { return r.Users.FindByID(id) }
func (r *Registry) Station(id int) (*domain.Station, bool)   { return r.Stations.FindByID(id) }
func (r *Registry) Train(id int) (*domain.Train, bool)       { return r.Trains.FindByID(id) }
func (r *Registry) Economy(id int) (*domain.Economy, bool)   { return r.Economies.FindByID(id) }
func (r *Registry) AgeGroup(id int) (*domain.AgeGroup, bool) { return r.AgeGroups.FindByID(id) }
func (r *Registry) Discount(id int) (*domain.Discount, bool) { return r.Discounts.FindByID(id) }
func (r *Registry) Ticket(id int) (*domain.Ticket, bool)     { return r.Tickets.FindByID(id) }
