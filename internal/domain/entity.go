package domain

import "time"

// Identifiable is implemented by every entity a repository can store
type Identifiable interface {
	// Identity returns the repository-assigned id, 0 while transient
	Identity() int
	// AssignIdentity sets the id; only repositories call it
	AssignIdentity(id int)
}

// Detacher clears every association of an entity on both sides
type Detacher interface {
	Detach()
}

// Day normalizes t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayPtr is Day for optional dates
func DayPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := Day(*t)
	return &d
}

// Date builds a calendar day
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

func sameOptionalDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameDay(*a, *b)
}

// persistent reports whether both ids were assigned by a repository
func persistent(a, b int) bool {
	return a != 0 && b != 0
}
