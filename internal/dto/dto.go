package dto

import "time"

// UserDTO is the boundary form of a user
type UserDTO struct {
	ID          int       `json:"id" yaml:"id"`
	FirstName   string    `json:"first_name" yaml:"first_name"`
	MiddleName  string    `json:"middle_name,omitempty" yaml:"middle_name,omitempty"`
	LastName    string    `json:"last_name" yaml:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth" yaml:"date_of_birth"`
	Gender      string    `json:"gender,omitempty" yaml:"gender,omitempty"`
	Email       string    `json:"email" yaml:"email"`
	PhoneNumber string    `json:"phone_number,omitempty" yaml:"phone_number,omitempty"`
	Password    string    `json:"password,omitempty" yaml:"password,omitempty"`
	TicketID    int       `json:"ticket_id,omitempty" yaml:"ticket_id,omitempty"`
}

// StationDTO is the boundary form of a station. Tickets are split by the
// role the station plays on them.
type StationDTO struct {
	ID                 int    `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	Address            string `json:"address" yaml:"address"`
	Phone              string `json:"phone,omitempty" yaml:"phone,omitempty"`
	DepartureTicketIDs []int  `json:"departure_ticket_ids,omitempty" yaml:"departure_ticket_ids,omitempty"`
	ArrivalTicketIDs   []int  `json:"arrival_ticket_ids,omitempty" yaml:"arrival_ticket_ids,omitempty"`
}

// TrainDTO is the boundary form of a train
type TrainDTO struct {
	ID        int    `json:"id" yaml:"id"`
	SeatCount int    `json:"seat_count" yaml:"seat_count"`
	Model     string `json:"model,omitempty" yaml:"model,omitempty"`
	TicketIDs []int  `json:"ticket_ids,omitempty" yaml:"ticket_ids,omitempty"`
}

// EconomyDTO is the boundary form of a fare class
type EconomyDTO struct {
	ID        int    `json:"id" yaml:"id"`
	FareClass string `json:"fare_class" yaml:"fare_class"`
	TicketIDs []int  `json:"ticket_ids,omitempty" yaml:"ticket_ids,omitempty"`
}

// AgeGroupDTO is the boundary form of an age group
type AgeGroupDTO struct {
	ID        int    `json:"id" yaml:"id"`
	TypeName  string `json:"type_name" yaml:"type_name"`
	TicketIDs []int  `json:"ticket_ids,omitempty" yaml:"ticket_ids,omitempty"`
}

// DiscountDTO is the boundary form of a discount
type DiscountDTO struct {
	ID        int        `json:"id" yaml:"id"`
	TypeName  string     `json:"type_name" yaml:"type_name"`
	Percent   float64    `json:"percent" yaml:"percent"`
	StartAt   *time.Time `json:"start_at,omitempty" yaml:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty" yaml:"end_at,omitempty"`
	TicketIDs []int      `json:"ticket_ids,omitempty" yaml:"ticket_ids,omitempty"`
}

// TicketDTO is the boundary form of a ticket. Associates are shallow: their
// own ticket references are always empty.
type TicketDTO struct {
	ID                     int        `json:"id" yaml:"id"`
	Reference              string     `json:"reference,omitempty" yaml:"reference,omitempty"`
	DepartDateBooking      time.Time  `json:"depart_date_booking" yaml:"depart_date_booking"`
	ReturnDateBooking      *time.Time `json:"return_date_booking,omitempty" yaml:"return_date_booking,omitempty"`
	RegistrationDateTicket time.Time  `json:"registration_date_ticket" yaml:"registration_date_ticket"`
	ReturnDateTicket       *time.Time `json:"return_date_ticket,omitempty" yaml:"return_date_ticket,omitempty"`
	Price                  float64    `json:"price" yaml:"price"`

	User         *UserDTO      `json:"user,omitempty" yaml:"user,omitempty"`
	StartStation *StationDTO   `json:"start_station,omitempty" yaml:"start_station,omitempty"`
	EndStation   *StationDTO   `json:"end_station,omitempty" yaml:"end_station,omitempty"`
	Train        *TrainDTO     `json:"train,omitempty" yaml:"train,omitempty"`
	Economy      *EconomyDTO   `json:"economy,omitempty" yaml:"economy,omitempty"`
	AgeGroup     *AgeGroupDTO  `json:"age_group,omitempty" yaml:"age_group,omitempty"`
	Discounts    []DiscountDTO `json:"discounts,omitempty" yaml:"discounts,omitempty"`
}

// Identity accessors used by generic code working over DTO pointers
func (d *UserDTO) Identity() int     { return d.ID }
func (d *StationDTO) Identity() int  { return d.ID }
func (d *TrainDTO) Identity() int    { return d.ID }
func (d *EconomyDTO) Identity() int  { return d.ID }
func (d *AgeGroupDTO) Identity() int { return d.ID }
func (d *DiscountDTO) Identity() int { return d.ID }
func (d *TicketDTO) Identity() int   { return d.ID }
