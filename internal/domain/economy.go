package domain

// Economy is a fare class
type Economy struct {
	ID        int
	FareClass string

	tickets orderedSet[*Ticket]
}

// NewEconomy creates a fare class
func NewEconomy(fareClass string) *Economy {
	return &Economy{FareClass: fareClass}
}

func (e *Economy) Identity() int         { return e.ID }
func (e *Economy) AssignIdentity(id int) { e.ID = id }

// Tickets returns the tickets sold in this fare class
func (e *Economy) Tickets() []*Ticket {
	return e.tickets.snapshot()
}

// SetTickets replaces the fare class's ticket set, detaching dropped tickets
func (e *Economy) SetTickets(tickets []*Ticket) {
	replaceTickets(&e.tickets, tickets, e.RemoveTicket, e.AddTicket)
}

func (e *Economy) AddTicket(t *Ticket) {
	if t != nil {
		t.SetEconomy(e)
	}
}

func (e *Economy) RemoveTicket(t *Ticket) {
	if t == nil {
		return
	}
	if t.economy == e {
		t.SetEconomy(nil)
	}
	e.tickets.remove(t)
}

// Detach releases every ticket of the fare class
func (e *Economy) Detach() {
	e.SetTickets(nil)
}

// Equal compares by id once both are persistent, by fields otherwise
func (e *Economy) Equal(o *Economy) bool {
	if e == nil || o == nil {
		return e == o
	}
	if persistent(e.ID, o.ID) {
		return e.ID == o.ID
	}
	return e.ID == o.ID && e.FareClass == o.FareClass
}
