package domain

// Train carries tickets
type Train struct {
	ID        int
	SeatCount int
	Model     string // optional

	tickets orderedSet[*Ticket]
}

// NewTrain creates a train with the given number of seats
func NewTrain(seatCount int) *Train {
	return &Train{SeatCount: seatCount}
}

func (tr *Train) Identity() int         { return tr.ID }
func (tr *Train) AssignIdentity(id int) { tr.ID = id }

// Tickets returns the tickets booked on the train
func (tr *Train) Tickets() []*Ticket {
	return tr.tickets.snapshot()
}

// SetTickets replaces the train's ticket set, detaching dropped tickets
func (tr *Train) SetTickets(tickets []*Ticket) {
	replaceTickets(&tr.tickets, tickets, tr.RemoveTicket, tr.AddTicket)
}

// AddTicket books t on the train
func (tr *Train) AddTicket(t *Ticket) {
	if t != nil {
		t.SetTrain(tr)
	}
}

// RemoveTicket unbooks t if it is on the train
func (tr *Train) RemoveTicket(t *Ticket) {
	if t == nil {
		return
	}
	if t.train == tr {
		t.SetTrain(nil)
	}
	tr.tickets.remove(t)
}

// FreeSeats returns the seats not taken by tickets, never below zero
func (tr *Train) FreeSeats() int {
	free := tr.SeatCount - tr.tickets.len()
	if free < 0 {
		return 0
	}
	return free
}

// Detach releases every ticket of the train
func (tr *Train) Detach() {
	tr.SetTickets(nil)
}

// Equal compares by id once both trains are persistent, by fields otherwise
func (tr *Train) Equal(o *Train) bool {
	if tr == nil || o == nil {
		return tr == o
	}
	if persistent(tr.ID, o.ID) {
		return tr.ID == o.ID
	}
	return tr.ID == o.ID && tr.SeatCount == o.SeatCount && tr.Model == o.Model
}
