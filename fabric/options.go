// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// options.go — functional options and the resolved builder configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic.
//   • newConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • logger    = discard (the library is silent unless asked)
//   • maxStages = 0       (no limit)

package fabric

import (
	"io"
	"log/slog"
)

// Option customizes a build before any level is resolved.
type Option func(*config)

// config is passed by value down the recursion; it is never mutated after
// newConfig returns.
type config struct {
	logger    *slog.Logger
	maxStages int
}

// newConfig constructs a config with deterministic defaults and applies
// all options in order.
func newConfig(opts ...Option) config {
	cfg := config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxStages: 0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes per-level debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("fabric: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

// WithMaxStages rejects requests whose stage count exceeds k with
// ErrStageLimit. Panics if k < MinStages.
//
// Without a limit, deep Slepian requests still stop once r²·n^stages leaves
// float64 range (ErrCrosspointOverflow).
func WithMaxStages(k int) Option {
	if k < MinStages {
		panic("fabric: WithMaxStages(k<3)")
	}
	return func(c *config) {
		c.maxStages = k
	}
}
