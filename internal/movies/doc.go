// Package movies owns the in-memory movie collection.
//
// Store is the single source of truth for the catalogue: it is seeded once
// at start-up, grows only through Append, and hands out copies so callers
// never hold a mutable view of its state. Identifiers are assigned as the
// current maximum plus one and are never reused or reordered.
//
// Validation failures surface as ErrValidation (and a *ValidationError
// carrying the field and reason); lookups that miss report ErrNotFound where
// a caller asks for an error rather than an ok flag.
package movies
