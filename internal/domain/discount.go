package domain

import "time"

// Discount reduces a ticket price by Percent (0.4 = 40%) inside an optional
// validity window
type Discount struct {
	ID       int
	TypeName string
	Percent  float64
	StartAt  *time.Time // optional
	EndAt    *time.Time // optional

	tickets orderedSet[*Ticket]
}

// NewDiscount creates an open-ended discount
func NewDiscount(typeName string, percent float64) *Discount {
	return &Discount{TypeName: typeName, Percent: percent}
}

func (d *Discount) Identity() int         { return d.ID }
func (d *Discount) AssignIdentity(id int) { d.ID = id }

// Tickets returns the tickets the discount applies to
func (d *Discount) Tickets() []*Ticket {
	return d.tickets.snapshot()
}

// SetTickets replaces the discount's ticket set. Dropped tickets no longer
// list the discount, new ones do.
func (d *Discount) SetTickets(tickets []*Ticket) {
	replaceTickets(&d.tickets, tickets, d.RemoveTicket, d.AddTicket)
}

func (d *Discount) AddTicket(t *Ticket) {
	if t != nil {
		t.AddDiscount(d)
	}
}

func (d *Discount) RemoveTicket(t *Ticket) {
	if t != nil {
		t.RemoveDiscount(d)
	}
}

// Detach removes the discount from every ticket
func (d *Discount) Detach() {
	d.SetTickets(nil)
}

// ActiveOn reports whether day falls inside the validity window. Both
// bounds are inclusive; a missing bound is open.
func (d *Discount) ActiveOn(day time.Time) bool {
	day = Day(day)
	if d.StartAt != nil && day.Before(Day(*d.StartAt)) {
		return false
	}
	if d.EndAt != nil && day.After(Day(*d.EndAt)) {
		return false
	}
	return true
}

// Equal compares by id once both are persistent, by fields otherwise
func (d *Discount) Equal(o *Discount) bool {
	if d == nil || o == nil {
		return d == o
	}
	if persistent(d.ID, o.ID) {
		return d.ID == o.ID
	}
	return d.ID == o.ID &&
		d.TypeName == o.TypeName &&
		d.Percent == o.Percent &&
		sameOptionalDay(d.StartAt, o.StartAt) &&
		sameOptionalDay(d.EndAt, o.EndAt)
}
