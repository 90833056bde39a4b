package domain

// AgeGroup classifies riders by age for pricing
type AgeGroup struct {
	ID       int
	TypeName string

	tickets orderedSet[*Ticket]
}

// NewAgeGroup creates an age group
func NewAgeGroup(typeName string) *AgeGroup {
	return &AgeGroup{TypeName: typeName}
}

func (g *AgeGroup) Identity() int         { return g.ID }
func (g *AgeGroup) AssignIdentity(id int) { g.ID = id }

func (g *AgeGroup) Tickets() []*Ticket {
	return g.tickets.snapshot()
}

// SetTickets replaces the age group's ticket set, detaching dropped tickets
func (g *AgeGroup) SetTickets(tickets []*Ticket) {
	replaceTickets(&g.tickets, tickets, g.RemoveTicket, g.AddTicket)
}

func (g *AgeGroup) AddTicket(t *Ticket) {
	if t != nil {
		t.SetAgeGroup(g)
	}
}

func (g *AgeGroup) RemoveTicket(t *Ticket) {
	if t == nil {
		return
	}
	if t.ageGroup == g {
		t.SetAgeGroup(nil)
	}
	g.tickets.remove(t)
}

func (g *AgeGroup) Detach() {
	g.SetTickets(nil)
}

// Equal compares by id once both are persistent, by fields otherwise
func (g *AgeGroup) Equal(o *AgeGroup) bool {
	if g == nil || o == nil {
		return g == o
	}
	if persistent(g.ID, o.ID) {
		return g.ID == o.ID
	}
	return g.ID == o.ID && g.TypeName == o.TypeName
}
