// Package domain defines the core entities of the railbook ticket booking system.
//
// This package contains the entities that make up a booking graph: riders,
// stations, trains, fare classes, age groups, discounts and the tickets that
// tie them together.
//
// # Core Types
//
// Ticket is the hub of the graph. It holds forward references to its User,
// start and end Station, Train, Economy (fare class), AgeGroup and a set of
// Discounts.
//
// Station, Train, Economy, AgeGroup and Discount each keep the inverse side:
// the set of tickets that reference them. User keeps the single ticket it owns.
//
// # Association Rules
//
// Association fields are unexported. Every mutator that changes an
// association updates both sides and is idempotent:
//
//   - Ticket.SetTrain(t) removes the ticket from the previous train's set and
//     adds it to the new one (likewise for stations, fare class, age group).
//   - Train.SetTickets(ts) detaches members missing from ts and attaches the
//     rest, so afterwards the held set equals ts.
//   - User.SetTicket and Ticket.SetUser keep the one-to-one rider link.
//   - Ticket.SetDiscounts and Discount.SetTickets keep the many-to-many link.
//
// A nil argument is never dereferenced; passing nil to a singular setter
// detaches the association. Detach clears every association of an entity.
//
// # Identity
//
// Entities are transient until a repository assigns them an id (ID != 0).
// Equal compares persistent entities by id and transient ones by their
// scalar fields.
//
// # Design Principles
//
// - No storage or external dependencies
// - Bidirectional links are maintained by the entities, never by callers
// - Dates are calendar days (see Day)
package domain
