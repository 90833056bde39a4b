package domain

import "time"

// User is a rider who may own one ticket
type User struct {
	ID          int
	FirstName   string
	MiddleName  string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	Email       string
	PhoneNumber string
	Password    string

	ticket *Ticket
}

// NewUser creates a user with the mandatory fields set
func NewUser(firstName, lastName string, dateOfBirth time.Time, email, password string) *User {
	return &User{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: Day(dateOfBirth),
		Email:       email,
		Password:    password,
	}
}

func (u *User) Identity() int         { return u.ID }
func (u *User) AssignIdentity(id int) { u.ID = id }

// Ticket returns the ticket owned by the user, nil if none
func (u *User) Ticket() *Ticket {
	return u.ticket
}

// SetTicket makes t the user's ticket and u its rider. The previous ticket
// loses its rider and t's previous rider loses t. nil detaches.
func (u *User) SetTicket(t *Ticket) {
	if t != nil {
		t.SetUser(u)
		return
	}
	if cur := u.ticket; cur != nil {
		if cur.user == u {
			cur.SetUser(nil)
		}
		u.ticket = nil
	}
}

// Detach clears the ticket link on both sides
func (u *User) Detach() {
	u.SetTicket(nil)
}

// FullName joins the name parts, skipping an empty middle name
func (u *User) FullName() string {
	if u.MiddleName == "" {
		return u.FirstName + " " + u.LastName
	}
	return u.FirstName + " " + u.MiddleName + " " + u.LastName
}

// Equal compares by id once both users are persistent, by fields otherwise
func (u *User) Equal(o *User) bool {
	if u == nil || o == nil {
		return u == o
	}
	if persistent(u.ID, o.ID) {
		return u.ID == o.ID
	}
	return u.ID == o.ID &&
		u.FirstName == o.FirstName &&
		u.MiddleName == o.MiddleName &&
		u.LastName == o.LastName &&
		sameDay(u.DateOfBirth, o.DateOfBirth) &&
		u.Gender == o.Gender &&
		u.Email == o.Email &&
		u.PhoneNumber == o.PhoneNumber &&
		u.Password == o.Password
}
