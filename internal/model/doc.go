// Package model defines the animal records printed by zoo.
//
// This package contains the following main types:
//   - Animal: A single record with an id, a name, an age and a kind
//   - Kind / Category: Tags selecting the concrete kind and capability category
//   - Carnivore / Herbivore: Category-specific traits
//   - Cat / Dog / Cow: Kind-specific traits and actions
//   - IDGenerator: The sequence that hands out record ids
//
// Design decision: We model the hierarchy as a tagged record rather than as
// a set of embedded structs behind an interface. Every consumer (describing
// a call, writing a report) switches on Kind or Category explicitly, so the
// compiler-visible switch is the single place where a new kind must be wired.
//
// Ids come from an IDGenerator owned by the caller instead of package-level
// state, which keeps tests independent of each other.
package model
