package cli

import (
	"bytes"
	"path/filepath"
	"testing"
)

// cliRun holds the captured result of one CLI invocation.
type cliRun struct {
	Stdout string
	Stderr string
	Code   int
}

// newTestDB returns a database path inside a fresh temp dir.
func newTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "squares.db")
}

// runCLI executes the CLI against db with the given args.
func runCLI(t *testing.T, db string, args ...string) cliRun {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Execute(append([]string{"--db", db}, args...), &stdout, &stderr)
	return cliRun{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

// mustRun executes the CLI and fails the test on a non-zero exit code.
func mustRun(t *testing.T, db string, args ...string) cliRun {
	t.Helper()
	r := runCLI(t, db, args...)
	if r.Code != ExitSuccess {
		t.Fatalf("%v exited %d\nstdout: %s\nstderr: %s", args, r.Code, r.Stdout, r.Stderr)
	}
	return r
}
