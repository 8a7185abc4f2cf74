package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/multistage/report"
)

func runArgs(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// ---------------------------------------------------------------------------
// single request
// ---------------------------------------------------------------------------

func TestRun_ClosDefault(t *testing.T) {
	code, stdout, stderr := runArgs("-family", "clos", "-size", "64", "-stages", "5")
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3) // header + two levels
	assert.Contains(t, lines[1], "4452.00")
	assert.Contains(t, lines[2], "80.00")
}

func TestRun_SlepianGraph(t *testing.T) {
	code, stdout, _ := runArgs("-family", "slepian", "-size", "12", "-fanout", "3", "-blocks", "4", "-graph")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "120.00")
	assert.Contains(t, stdout, "level 0: switches in=4 middle=3 (nested 0) out=4, links=24, crosspoints=120.00")
}

func TestRun_InvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"inconsistent", []string{"-size", "10", "-fanout", "3", "-blocks", "3"}},
		{"missing size", []string{"-size", ""}},
		{"even stages", []string{"-size", "8", "-stages", "4"}},
		{"non-numeric stages", []string{"-size", "8", "-stages", "three"}},
		{"unknown family", []string{"-family", "benes", "-size", "8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runArgs(tt.args...)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.True(t, strings.HasPrefix(stderr, "invalid parameters: "), stderr)
		})
	}
}

func TestRun_BlankDimensionsAreAbsent(t *testing.T) {
	// Non-numeric and non-positive text fields mean "derive this one".
	code, stdout, _ := runArgs("-size", "8", "-fanout", "abc", "-blocks", "-2")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "140.00")
}

func TestRun_Out(t *testing.T) {
	file := filepath.Join(t.TempDir(), "model.json")

	code, stdout, stderr := runArgs("-size", "100", "-stages", "7", "-out", file)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Wrote model to "+file)

	m, err := report.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, 100, m.NetworkSize)
	assert.Equal(t, 3, m.Depth())

	code, _, stderr = runArgs("-size", "8", "-out", filepath.Join(t.TempDir(), "model.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error writing to")
}

func TestRun_Batch(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "batch.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
requests:
  - name: ok
    family: clos
    size: 8
  - name: bad
    family: clos
    size: 10
    fan_out: 3
    blocks: 3
`), 0o644))

	code, stdout, _ := runArgs("-config", file)
	assert.Equal(t, 1, code, "one failing entry fails the batch")
	assert.Contains(t, stdout, "== ok (clos) ==")
	assert.Contains(t, stdout, "140.00")
	assert.Contains(t, stdout, "== bad (clos) ==\ninvalid parameters: ")

	code, _, stderr := runArgs("-config", filepath.Join(dir, "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error loading")

	out := filepath.Join(dir, "model.yaml")
	code, stdout, stderr = runArgs("-config", file, "-out", out)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot be combined with -config")
	assert.NoFileExists(t, out)
}

func TestRun_BadFlags(t *testing.T) {
	code, _, _ := runArgs("-nope")
	assert.Equal(t, 1, code)

	code, _, stderr := runArgs("-size", "8", "-log-level", "loud")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Invalid log level")
}

func TestRun_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "fabcalc.log")

	code, _, _ := runArgs("-size", "64", "-stages", "5", "-log-level", "error", "-log-file", logFile)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Empty(t, data, "debug records stay below the error threshold")
}

// ---------------------------------------------------------------------------
// parseLogLevel tests
// ---------------------------------------------------------------------------

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"Info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}
