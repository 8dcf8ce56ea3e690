// Package store provides durable and in-memory storage for lattice points.
//
// Every implementation satisfies Repository and enforces a single
// consistency rule: no two stored points share the same (x, y).
//
// # Implementations
//
//   - Memory: reference implementation used by tests and ephemeral runs
//   - SQLite: file-backed implementation using mattn/go-sqlite3
//
// # Batch Atomicity
//
// AddBatch is all-or-nothing. Memory pre-validates the whole batch before
// touching state; SQLite inserts inside a transaction and rolls back on the
// first constraint violation. Either way a failed batch leaves the store
// unchanged.
//
// # Ordering
//
// ListAll returns points in insertion order. SQLite orders by the
// autoincrement seq column, never by the generated ID.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
