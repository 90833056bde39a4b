package domain

import (
	"testing"
	"time"
)

func TestTicketSetUser(t *testing.T) {
	t.Run("links both sides", func(t *testing.T) {
		u := NewUser("Ivan", "Franko", Date(1990, time.August, 27), "ivan@example.com", "secret")
		ticket := newTestTicket(10)

		ticket.SetUser(u)

		if u.Ticket() != ticket {
			t.Error("expected user to own the ticket")
		}
		if ticket.User() != u {
			t.Error("expected ticket rider to be the user")
		}
	})

	t.Run("user setter links both sides", func(t *testing.T) {
		u := NewUser("Lesya", "Ukrainka", Date(1991, time.February, 25), "lesya@example.com", "secret")
		ticket := newTestTicket(10)

		u.SetTicket(ticket)

		if ticket.User() != u {
			t.Error("expected ticket rider to be the user")
		}
	})

	t.Run("new ticket releases the previous one", func(t *testing.T) {
		u := NewUser("Taras", "Shevchenko", Date(1994, time.March, 9), "taras@example.com", "secret")
		first, second := newTestTicket(10), newTestTicket(20)

		u.SetTicket(first)
		u.SetTicket(second)

		if first.User() != nil {
			t.Error("expected previous ticket to lose its rider")
		}
		if u.Ticket() != second {
			t.Error("expected user to own the new ticket")
		}
	})

	t.Run("new rider releases the previous one", func(t *testing.T) {
		a := NewUser("A", "A", Date(1990, time.January, 1), "a@example.com", "x")
		b := NewUser("B", "B", Date(1990, time.January, 1), "b@example.com", "x")
		ticket := newTestTicket(10)

		ticket.SetUser(a)
		ticket.SetUser(b)

		if a.Ticket() != nil {
			t.Error("expected previous rider to lose the ticket")
		}
		if b.Ticket() != ticket {
			t.Error("expected new rider to own the ticket")
		}
	})

	t.Run("nil detaches", func(t *testing.T) {
		u := NewUser("A", "A", Date(1990, time.January, 1), "a@example.com", "x")
		ticket := newTestTicket(10)
		u.SetTicket(ticket)

		u.SetTicket(nil)

		if ticket.User() != nil || u.Ticket() != nil {
			t.Error("expected both sides to be cleared")
		}
	})
}

func TestTicketSingleOwnerSetters(t *testing.T) {
	ticket := newTestTicket(10)
	first, second := NewTrain(100), NewTrain(200)

	ticket.SetTrain(first)
	ticket.SetTrain(second)

	if len(first.Tickets()) != 0 {
		t.Error("expected previous train to release the ticket")
	}
	if got := second.Tickets(); len(got) != 1 || got[0] != ticket {
		t.Error("expected new train to hold the ticket")
	}

	economy := NewEconomy("Second class")
	ticket.SetEconomy(economy)
	ticket.SetEconomy(economy)
	if got := len(economy.Tickets()); got != 1 {
		t.Errorf("expected 1 ticket in fare class, got %d", got)
	}

	group := NewAgeGroup("Adult")
	ticket.SetAgeGroup(group)
	ticket.SetAgeGroup(nil)
	if len(group.Tickets()) != 0 {
		t.Error("expected age group to release the ticket")
	}
}

func TestOwnerSetTickets(t *testing.T) {
	t.Run("train", func(t *testing.T) {
		tr := NewTrain(2)
		t1, t2, t3 := newTestTicket(1), newTestTicket(2), newTestTicket(3)
		tr.SetTickets([]*Ticket{t1, t2})

		tr.SetTickets([]*Ticket{t3, t2})

		if t1.Train() != nil {
			t.Error("expected dropped ticket to lose the train")
		}
		got := tr.Tickets()
		if len(got) != 2 || got[0] != t3 || got[1] != t2 {
			t.Errorf("expected tickets in input order, got %v", got)
		}
		if tr.FreeSeats() != 0 {
			t.Errorf("expected no free seats, got %d", tr.FreeSeats())
		}
	})

	t.Run("ticket taken from another owner", func(t *testing.T) {
		a, b := NewEconomy("First"), NewEconomy("Second")
		ticket := newTestTicket(1)
		a.AddTicket(ticket)

		b.SetTickets([]*Ticket{ticket})

		if len(a.Tickets()) != 0 {
			t.Error("expected previous fare class to release the ticket")
		}
		if ticket.Economy() != b {
			t.Error("expected ticket to move to the new fare class")
		}
	})

	t.Run("age group detach", func(t *testing.T) {
		g := NewAgeGroup("Child")
		ticket := newTestTicket(1)
		g.SetTickets([]*Ticket{ticket})

		g.Detach()

		if ticket.AgeGroup() != nil {
			t.Error("expected ticket to lose the age group")
		}
	})
}

func TestTicketDetach(t *testing.T) {
	u := NewUser("A", "A", Date(1990, time.January, 1), "a@example.com", "x")
	s1, s2 := NewStation("A", "a"), NewStation("B", "b")
	tr, e, g := NewTrain(10), NewEconomy("First"), NewAgeGroup("Adult")
	d := NewDiscount("Social", 0.4)

	ticket := newTestTicket(100)
	ticket.SetUser(u)
	ticket.SetStartStation(s1)
	ticket.SetEndStation(s2)
	ticket.SetTrain(tr)
	ticket.SetEconomy(e)
	ticket.SetAgeGroup(g)
	ticket.AddDiscount(d)

	ticket.Detach()

	if u.Ticket() != nil {
		t.Error("expected user to lose the ticket")
	}
	for name, n := range map[string]int{
		"start station": len(s1.Tickets()),
		"end station":   len(s2.Tickets()),
		"train":         len(tr.Tickets()),
		"economy":       len(e.Tickets()),
		"age group":     len(g.Tickets()),
		"discount":      len(d.Tickets()),
	} {
		if n != 0 {
			t.Errorf("expected %s to release the ticket, still holds %d", name, n)
		}
	}
}

func TestTicketDiscountedPrice(t *testing.T) {
	day := Date(2024, time.June, 1)
	ticket := NewTicket(day, day, 100)

	social := NewDiscount("Social", 0.5)
	ticket.AddDiscount(social)

	expired := NewDiscount("Spring", 0.2)
	end := Date(2024, time.May, 31)
	expired.EndAt = &end
	ticket.AddDiscount(expired)

	if got := ticket.DiscountedPrice(day); got != 50 {
		t.Errorf("expected 50, got %v", got)
	}
	if got := ticket.DiscountedPrice(end); got != 40 {
		t.Errorf("expected both discounts on %v, got %v", end, got)
	}
}

func TestTicketEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Ticket
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", newTestTicket(1), nil, false},
		{"transient same fields", newTestTicket(1), newTestTicket(1), true},
		{"transient different price", newTestTicket(1), newTestTicket(2), false},
		{"persistent same id", &Ticket{ID: 3, Price: 1}, &Ticket{ID: 3, Price: 2}, true},
		{"persistent different id", &Ticket{ID: 3}, &Ticket{ID: 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
