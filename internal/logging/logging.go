// Package logging builds the structured logger used by the fabcalc CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Setup configures slog to write JSONL to stderr and, when logFile is
// non-empty, to that file as well. Returns a logger and a cleanup function
// that closes the file handle.
func Setup(logFile string, level slog.Level) (*slog.Logger, func(), error) {
	return setup(os.Stderr, logFile, level)
}

func setup(stderr io.Writer, logFile string, level slog.Level) (*slog.Logger, func(), error) {
	w := stderr
	cleanup := func() {}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(stderr, f)
		cleanup = func() {
			_ = f.Close()
		}
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(handler), cleanup, nil
}
