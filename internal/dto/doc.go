// Package dto defines the flat, cycle-free representations of the booking
// graph used at the system boundary.
//
// A TicketDTO embeds shallow copies of its associates (scalars only). Every
// other DTO refers to tickets by id, so a DTO graph never contains a cycle
// and can be encoded as JSON or YAML directly.
package dto
