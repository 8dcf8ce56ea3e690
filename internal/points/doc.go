// Package points implements the operations callers perform against the
// point set: add, delete, bulk import, list and square enumeration.
//
// Service sits between a transport (the CLI) and a store.Repository. It
// translates storage failures into the error taxonomy below and pulls a
// single snapshot for every square enumeration.
//
// Error codes:
//   - DUPLICATE_POINT: an insert collides with an existing coordinate
//   - NOT_FOUND: a delete names coordinates that are not stored
//   - INVALID_INPUT: an import payload is empty or malformed
//
// All three are caller-input problems; none are retried.
package points
