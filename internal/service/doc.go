// Package service exposes the booking graph to the outside world as DTOs.
//
// Every service delegates identity and storage to a repository store and
// format conversion to a mapper; raw entities never leave this package.
//
// # Services
//
// Crud is the generic DTO-level CRUD service. StationService, TrainService,
// EconomyService, AgeGroupService and DiscountService are instantiations of
// it. UserService adds password hashing and Authenticate. TicketService adds
// booking references and fare quotes.
//
// Catalog bundles the seven services over one repository.Registry and
// moves whole graphs in and out as dto.Snapshot values.
//
// # Event System
//
// All writes publish an Event on the EventBus. Publishing never blocks: slow
// subscribers miss events.
//
// # Design Principles
//
// - Updates are rejected when the id or the replacement is absent
// - Removed and replaced entities are detached from the graph
// - Errors are wrapped with context and compared with errors.Is
package service
