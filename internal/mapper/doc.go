// Package mapper converts between booking graph entities and their DTOs.
//
// Entity to DTO conversion copies scalars and flattens associations: a
// ticket carries shallow DTOs of its associates, the other entities carry
// ticket ids. DTO to entity conversion links associations on both sides.
// With a Resolver, ids link the stored instance and unknown ids are
// dropped; without one, or for an id of 0, a reference entity is built from
// what the DTO carries.
//
// Nil inputs never propagate: a nil entity maps to a blank DTO and nil list
// elements are dropped.
package mapper
