// Package integration provides CLI integration tests for organizer.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// organizerBin is the path to the built organizer binary.
	organizerBin string
	// buildErr captures any build error.
	buildErr error
)

// Result holds the outcome of one organizer invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// TestEnv isolates one test's config and data directories.
type TestEnv struct {
	t         *testing.T
	ConfigDir string
	DataDir   string
}

// NewTestEnv creates isolated temp directories for one test.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("organizer build failed: %v", buildErr)
	}
	return &TestEnv{
		t:         t,
		ConfigDir: t.TempDir(),
		DataDir:   t.TempDir(),
	}
}

// Run invokes the organizer binary with the environment pointed at the test's
// directories and returns the captured output and exit code.
func (e *TestEnv) Run(args ...string) Result {
	e.t.Helper()

	cmd := exec.Command(organizerBin, args...)
	cmd.Env = append(os.Environ(),
		"BLACKROAD_CONFIG_DIR="+e.ConfigDir,
		"BLACKROAD_DATA_DIR="+e.DataDir,
		"NO_COLOR=1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		e.t.Fatalf("running organizer %v: %v", args, err)
	}

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: code,
	}
}

// MustRun invokes organizer and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) Result {
	e.t.Helper()
	res := e.Run(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("organizer %v exited %d\nstdout: %s\nstderr: %s",
			args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// DBPath returns the expected database file path for this environment.
func (e *TestEnv) DBPath() string {
	return filepath.Join(e.DataDir, "community-organizer.db")
}

// findProjectRoot finds the project root by walking up looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
