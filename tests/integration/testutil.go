// Package integration runs the built housebuilder binary end to end.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// housebuilderBin is the path to the built housebuilder binary.
	housebuilderBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
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

// TestEnv provides an isolated config directory for one test.
type TestEnv struct {
	t      *testing.T
	Config string
}

// NewTestEnv creates a new isolated test environment with no config file.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build housebuilder: %v", buildErr)
	}
	if housebuilderBin == "" {
		t.Fatal("housebuilder binary not built (housebuilderBin is empty)")
	}

	return &TestEnv{
		t:      t,
		Config: filepath.Join(t.TempDir(), "config"),
	}
}

// WriteConfig writes content to config.yaml in the environment's config dir.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.MkdirAll(e.Config, 0o755); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Config, "config.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// CmdResult holds the result of a housebuilder command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes housebuilder with stdin fed from input.
func (e *TestEnv) Run(input string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--no-color"}, args...)
	cmd := exec.Command(housebuilderBin, allArgs...)
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run housebuilder: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRun executes housebuilder and fails the test if it returns non-zero.
func (e *TestEnv) MustRun(input string, args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(input, args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("housebuilder %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// BuildOutput mirrors the JSON printed by "build --json".
type BuildOutput struct {
	BuildID string `json:"build_id"`
	Builder string `json:"builder"`
	Plan    string `json:"plan"`
	House   struct {
		Walls     int  `json:"walls"`
		Doors     int  `json:"doors"`
		Windows   int  `json:"windows"`
		HasGarage bool `json:"has_garage"`
		HasGarden bool `json:"has_garden"`
	} `json:"house"`
	Description string `json:"description"`
}
