package domain

// StationRole is the part a station plays on a ticket
type StationRole string

const (
	StationRoleStart StationRole = "start"
	StationRoleEnd   StationRole = "end"
)

// Station is a departure or arrival point
type Station struct {
	ID      int
	Name    string
	Address string
	Phone   string // optional

	tickets orderedSet[*Ticket]
}

// NewStation creates a station with the mandatory fields set
func NewStation(name, address string) *Station {
	return &Station{Name: name, Address: address}
}

func (s *Station) Identity() int         { return s.ID }
func (s *Station) AssignIdentity(id int) { s.ID = id }

// Tickets returns every ticket starting or ending at the station
func (s *Station) Tickets() []*Ticket {
	return s.tickets.snapshot()
}

// Departures returns the tickets that start at the station
func (s *Station) Departures() []*Ticket {
	return s.ticketsIn(StationRoleStart)
}

// Arrivals returns the tickets that end at the station
func (s *Station) Arrivals() []*Ticket {
	return s.ticketsIn(StationRoleEnd)
}

func (s *Station) ticketsIn(role StationRole) []*Ticket {
	var out []*Ticket
	for _, t := range s.tickets.items {
		if t.HasStation(s, role) {
			out = append(out, t)
		}
	}
	return out
}

// SetTickets replaces the station's ticket set. Tickets dropped from the set
// lose their start and end references to s. Tickets already referencing s keep
// their role; new ones are attached through AddTicket.
func (s *Station) SetTickets(tickets []*Ticket) {
	replaceTickets(&s.tickets, tickets, s.RemoveTicket, s.AddTicket)
}

// AddTicket attaches t to the station. The station fills the first empty
// slot of t (start, then end); when both are taken it becomes t's start.
func (s *Station) AddTicket(t *Ticket) {
	if t == nil {
		return
	}
	switch {
	case t.startStation == s || t.endStation == s:
		s.tickets.add(t)
	case t.startStation == nil:
		t.SetStartStation(s)
	case t.endStation == nil:
		t.SetEndStation(s)
	default:
		t.SetStartStation(s)
	}
}

// RemoveTicket clears every reference t holds to the station
func (s *Station) RemoveTicket(t *Ticket) {
	if t == nil {
		return
	}
	if t.startStation == s {
		t.SetStartStation(nil)
	}
	if t.endStation == s {
		t.SetEndStation(nil)
	}
	s.tickets.remove(t)
}

// Detach releases every ticket of the station
func (s *Station) Detach() {
	s.SetTickets(nil)
}

// Equal compares by id once both stations are persistent, by fields otherwise
func (s *Station) Equal(o *Station) bool {
	if s == nil || o == nil {
		return s == o
	}
	if persistent(s.ID, o.ID) {
		return s.ID == o.ID
	}
	return s.ID == o.ID &&
		s.Name == o.Name &&
		s.Address == o.Address &&
		s.Phone == o.Phone
}
