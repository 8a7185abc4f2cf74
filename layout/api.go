// SPDX-License-Identifier: MIT
// Package: multistage/layout
//
// api.go — public entry points for the layout package.
//
// Design contract:
//   - One orchestrator: Build(gopts, opts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Level/All are thin wrappers composing Column and FullMesh for a fabric.Model.
//   - Determinism: same model/options ⇒ identical switch IDs and link order.
//   - Safety: never panic; return sentinel errors.

package layout

import (
	"fmt"

	"github.com/katalvlaran/multistage/fabric"
	"github.com/katalvlaran/multistage/wiring"
)

// Constructor applies a deterministic graph mutation using the resolved
// layoutConfig. Constructors validate parameters early and return sentinel
// errors instead of panicking.
type Constructor func(g *wiring.Graph, cfg layoutConfig) error

// Build creates a new wiring.Graph with graph options gopts, resolves the
// layout configuration from opts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned
// immediately; the partial graph is discarded.
func Build(gopts []wiring.GraphOption, opts []Option, cons ...Constructor) (*wiring.Graph, error) {
	g := wiring.NewGraph(gopts...)
	cfg := newLayoutConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Level lays out the outermost level of m: k input switches of n×j, j middle
// switches of k×k (flagged Nested when m has a nested model), k output
// switches of j×n, and full meshes input→middle→output.
//
// Errors: ErrNilModel; fabric.ErrInvalidModel when m breaks its invariants.
// Complexity: O(k·j) links.
func Level(m *fabric.Model, opts ...Option) (*wiring.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("Level: %w", ErrNilModel)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("Level: %w", err)
	}

	k, j, n := m.InputPorts, m.MiddleStageSwitches, m.EdgeSwitchPorts()
	return Build(nil, opts,
		Column(wiring.StageInput, k, n, j, false),
		Column(wiring.StageMiddle, j, k, k, m.Nested != nil),
		Column(wiring.StageOutput, k, j, n, false),
		FullMesh(wiring.StageInput, wiring.StageMiddle),
		FullMesh(wiring.StageMiddle, wiring.StageOutput),
	)
}

// All lays out every level of the chain rooted at m, outermost first.
// Fails as a whole if any level fails.
func All(m *fabric.Model, opts ...Option) ([]*wiring.Graph, error) {
	if m == nil {
		return nil, fmt.Errorf("All: %w", ErrNilModel)
	}

	graphs := make([]*wiring.Graph, 0, m.Depth())
	for depth, level := range m.Levels() {
		g, err := Level(level, opts...)
		if err != nil {
			return nil, fmt.Errorf("All: level %d: %w", depth, err)
		}
		graphs = append(graphs, g)
	}

	return graphs, nil
}
