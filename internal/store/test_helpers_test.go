package store

import (
	"path/filepath"
	"testing"
)

// createTestSQLite creates a new file-backed store in a temp dir.
func createTestSQLite(t *testing.T, opts ...Option) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, opts...)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// repositories returns a fresh instance of every implementation.
func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	return map[string]Repository{
		"memory": NewMemory(WithIDGenerator(NewSequenceGenerator("m"))),
		"sqlite": createTestSQLite(t, WithIDGenerator(NewSequenceGenerator("s"))),
	}
}
