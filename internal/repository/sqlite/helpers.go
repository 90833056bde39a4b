package sqlite

import (
	"database/sql"
	"time"

	"railbook/internal/dto"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// timePtrToNull safely converts *time.Time to sql.NullTime
func timePtrToNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// timeToNull stores the zero time as NULL
func timeToNull(t time.Time) sql.NullTime {
	if t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

// idToNull stores absent ids as NULL
func idToNull(id int) sql.NullInt64 {
	if id <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(id), Valid: true}
}

// ============================================================================
// Row Write Helpers
// ============================================================================
//
// CRITICAL: Column order must match between the column constant and the
// args returned by its insert helper.

const userColumns = `id, first_name, middle_name, last_name, date_of_birth,
	gender, email, phone_number, password_hash`

// userInsertArgs prepares arguments for user INSERT
func userInsertArgs(u dto.UserDTO) []interface{} {
	return []interface{}{
		u.ID,                        // 1
		u.FirstName,                 // 2
		stringToNull(u.MiddleName),  // 3
		u.LastName,                  // 4
		timeToNull(u.DateOfBirth),   // 5
		stringToNull(u.Gender),      // 6
		u.Email,                     // 7
		stringToNull(u.PhoneNumber), // 8
		stringToNull(u.Password),    // 9
	}
}

const ticketColumns = `id, reference, depart_date_booking, return_date_booking,
	registration_date_ticket, return_date_ticket, price, user_id,
	start_station_id, end_station_id, train_id, economy_id, age_group_id`

// ticketInsertArgs prepares arguments for ticket INSERT. Associates are
// stored by id only.
func ticketInsertArgs(t dto.TicketDTO) []interface{} {
	return []interface{}{
		t.ID,                                  // 1
		stringToNull(t.Reference),             // 2
		timeToNull(t.DepartDateBooking),       // 3
		timePtrToNull(t.ReturnDateBooking),    // 4
		timeToNull(t.RegistrationDateTicket),  // 5
		timePtrToNull(t.ReturnDateTicket),     // 6
		t.Price,                               // 7
		idToNull(associateID(t.User)),         // 8
		idToNull(associateID(t.StartStation)), // 9
		idToNull(associateID(t.EndStation)),   // 10
		idToNull(associateID(t.Train)),        // 11
		idToNull(associateID(t.Economy)),      // 12
		idToNull(associateID(t.AgeGroup)),     // 13
	}
}

// associateID returns the id of a shallow associate, 0 when absent
func associateID[D any, P interface {
	*D
	Identity() int
}](d P) int {
	if d == nil {
		return 0
	}
	return d.Identity()
}
