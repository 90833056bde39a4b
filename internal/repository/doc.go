// Package repository provides the in-memory stores that own railbook entities.
//
// Each entity type gets its own Store: an id counter plus an id-to-entity map
// kept in insertion order. Stores assign identities on first save and never
// reuse an id while the store lives.
//
// # Repository Interface
//
// CrudRepository defines the contract every store satisfies: save, lookup by
// id, existence checks, id-preserving replace and deletion. Lookups of missing
// or absent (<= 0) ids return an absent result instead of failing.
//
// # Registry
//
// Registry bundles the seven stores of a booking graph and resolves entity
// references by id, so the mapper can link DTO references to the stored
// instances.
//
// # Concurrency
//
// A Store guards its counter and map with its own mutex. The entities it
// returns are shared pointers; mutating the entity graph concurrently is the
// caller's responsibility.
//
// # SQLite Archive
//
// The sqlite subpackage writes a snapshot of the graph into SQLite tables for
// offline inspection. It is export only; stores never load from it.
package repository
