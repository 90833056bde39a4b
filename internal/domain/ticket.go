package domain

import (
	"math"
	"time"
)

// Ticket is a booked journey and the hub of the booking graph
type Ticket struct {
	ID                     int
	Reference              string
	DepartDateBooking      time.Time
	ReturnDateBooking      *time.Time // optional
	RegistrationDateTicket time.Time
	ReturnDateTicket       *time.Time // optional
	Price                  float64

	user         *User
	startStation *Station
	endStation   *Station
	train        *Train
	economy      *Economy
	ageGroup     *AgeGroup
	discounts    orderedSet[*Discount]
}

// NewTicket creates an unassociated ticket
func NewTicket(departDate, registrationDate time.Time, price float64) *Ticket {
	return &Ticket{
		DepartDateBooking:      Day(departDate),
		RegistrationDateTicket: Day(registrationDate),
		Price:                  price,
	}
}

func (t *Ticket) Identity() int         { return t.ID }
func (t *Ticket) AssignIdentity(id int) { t.ID = id }

func (t *Ticket) User() *User                  { return t.user }
func (t *Ticket) StartStation() *Station       { return t.startStation }
func (t *Ticket) EndStation() *Station         { return t.endStation }
func (t *Ticket) Train() *Train                { return t.train }
func (t *Ticket) Economy() *Economy            { return t.economy }
func (t *Ticket) AgeGroup() *AgeGroup          { return t.ageGroup }
func (t *Ticket) Discounts() []*Discount       { return t.discounts.snapshot() }
func (t *Ticket) HasDiscount(d *Discount) bool { return t.discounts.contains(d) }

// HasStation reports whether s plays role on the ticket
func (t *Ticket) HasStation(s *Station, role StationRole) bool {
	if s == nil {
		return false
	}
	switch role {
	case StationRoleStart:
		return t.startStation == s
	case StationRoleEnd:
		return t.endStation == s
	}
	return false
}

// SetUser makes u the rider and the ticket u's ticket. The previous rider
// loses the ticket and u's previous ticket loses its rider.
func (t *Ticket) SetUser(u *User) {
	prev := t.user
	t.user = u
	if prev != nil && prev != u && prev.ticket == t {
		prev.ticket = nil
	}
	if u == nil {
		return
	}
	if old := u.ticket; old != nil && old != t && old.user == u {
		old.user = nil
	}
	u.ticket = t
}

// SetStartStation moves the ticket's departure to s
func (t *Ticket) SetStartStation(s *Station) {
	prev := t.startStation
	t.startStation = s
	t.releaseStation(prev, s)
	if s != nil {
		s.tickets.add(t)
	}
}

// SetEndStation moves the ticket's arrival to s
func (t *Ticket) SetEndStation(s *Station) {
	prev := t.endStation
	t.endStation = s
	t.releaseStation(prev, s)
	if s != nil {
		s.tickets.add(t)
	}
}

// releaseStation drops t from prev unless prev still plays a role on t
func (t *Ticket) releaseStation(prev, next *Station) {
	if prev == nil || prev == next {
		return
	}
	if t.startStation != prev && t.endStation != prev {
		prev.tickets.remove(t)
	}
}

// SetTrain moves the ticket to tr
func (t *Ticket) SetTrain(tr *Train) {
	if prev := t.train; prev != nil && prev != tr {
		prev.tickets.remove(t)
	}
	t.train = tr
	if tr != nil {
		tr.tickets.add(t)
	}
}

// SetEconomy moves the ticket to fare class e
func (t *Ticket) SetEconomy(e *Economy) {
	if prev := t.economy; prev != nil && prev != e {
		prev.tickets.remove(t)
	}
	t.economy = e
	if e != nil {
		e.tickets.add(t)
	}
}

// SetAgeGroup moves the ticket to age group g
func (t *Ticket) SetAgeGroup(g *AgeGroup) {
	if prev := t.ageGroup; prev != nil && prev != g {
		prev.tickets.remove(t)
	}
	t.ageGroup = g
	if g != nil {
		g.tickets.add(t)
	}
}

// SetDiscounts replaces the ticket's discounts. Discounts dropped from the
// set no longer list the ticket.
func (t *Ticket) SetDiscounts(discounts []*Discount) {
	keep := membership(discounts)
	for _, d := range t.discounts.snapshot() {
		if !keep[d] {
			t.RemoveDiscount(d)
		}
	}
	for _, d := range discounts {
		t.AddDiscount(d)
	}
	t.discounts.reorder(discounts)
}

func (t *Ticket) AddDiscount(d *Discount) {
	if d == nil {
		return
	}
	t.discounts.add(d)
	d.tickets.add(t)
}

func (t *Ticket) RemoveDiscount(d *Discount) {
	if d == nil {
		return
	}
	t.discounts.remove(d)
	d.tickets.remove(t)
}

// Detach clears every association of the ticket on both sides
func (t *Ticket) Detach() {
	t.SetUser(nil)
	t.SetStartStation(nil)
	t.SetEndStation(nil)
	t.SetTrain(nil)
	t.SetEconomy(nil)
	t.SetAgeGroup(nil)
	t.SetDiscounts(nil)
}

// DiscountedPrice applies every discount active on day, one after another,
// and rounds to cents
func (t *Ticket) DiscountedPrice(day time.Time) float64 {
	price := t.Price
	for _, d := range t.discounts.items {
		if d.ActiveOn(day) {
			price *= 1 - d.Percent
		}
	}
	if price < 0 {
		price = 0
	}
	return math.Round(price*100) / 100
}

// IsReturn reports whether the ticket books a return journey
func (t *Ticket) IsReturn() bool {
	return t.ReturnDateBooking != nil
}

// Equal compares by id once both tickets are persistent, by scalar fields
// otherwise
func (t *Ticket) Equal(o *Ticket) bool {
	if t == nil || o == nil {
		return t == o
	}
	if persistent(t.ID, o.ID) {
		return t.ID == o.ID
	}
	return t.ID == o.ID &&
		t.Reference == o.Reference &&
		sameDay(t.DepartDateBooking, o.DepartDateBooking) &&
		sameOptionalDay(t.ReturnDateBooking, o.ReturnDateBooking) &&
		sameDay(t.RegistrationDateTicket, o.RegistrationDateTicket) &&
		sameOptionalDay(t.ReturnDateTicket, o.ReturnDateTicket) &&
		t.Price == o.Price
}
