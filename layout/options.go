// SPDX-License-Identifier: MIT
// Package: multistage/layout
//
// options.go — functional options and the resolved layout configuration.
//
// Contract:
//   • Options are functional (type Option func(*layoutConfig)).
//   • Option constructors PANIC on nil schemes; layout functions never panic.
//   • newLayoutConfig applies options in order (later overrides earlier),
//     then resolves empty prefixes to the defaults "I" / "M" / "O".

package layout

import "github.com/katalvlaran/multistage/wiring"

// Option customizes switch naming before a level is laid out.
type Option func(*layoutConfig)

// layoutConfig is passed by VALUE to constructors.
type layoutConfig struct {
	idFn     IDFn
	prefixes [3]string // indexed by wiring.Stage
}

const (
	defaultInputPrefix  = "I"
	defaultMiddlePrefix = "M"
	defaultOutputPrefix = "O"
)

func newLayoutConfig(opts ...Option) layoutConfig {
	cfg := layoutConfig{
		idFn:     DefaultIDFn,
		prefixes: [3]string{defaultInputPrefix, defaultMiddlePrefix, defaultOutputPrefix},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	defaults := [3]string{defaultInputPrefix, defaultMiddlePrefix, defaultOutputPrefix}
	for i := range cfg.prefixes {
		if cfg.prefixes[i] == "" {
			cfg.prefixes[i] = defaults[i]
		}
	}

	return cfg
}

// switchID composes "<prefix><idFn(idx)>" for a stage.
func (c layoutConfig) switchID(stage wiring.Stage, idx int) string {
	return c.prefixes[stage] + c.idFn(idx)
}

// WithIDScheme sets the per-stage index → ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("layout: WithIDScheme(nil)")
	}
	return func(c *layoutConfig) {
		c.idFn = fn
	}
}

// WithStagePrefixes sets the input/middle/output ID prefixes. Empty values
// mean "use the default" rather than an error.
func WithStagePrefixes(in, mid, out string) Option {
	return func(c *layoutConfig) {
		c.prefixes = [3]string{in, mid, out}
	}
}
