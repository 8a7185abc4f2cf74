// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summary of a wiring graph.
// Policy:
//   - No mutation here.
//   - Two-phase snapshot (switches, then links) to avoid holding both locks.

package wiring

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// Per-stage switch counts.
	InputSwitches  int
	MiddleSwitches int
	OutputSwitches int

	// NestedSwitches counts middle switches realised by a deeper fabric.
	NestedSwitches int

	// LinkCount is the number of inter-stage links.
	LinkCount int

	// Crosspoints is Σ Inputs×Outputs over all switches.
	Crosspoints float64
}

// Stats returns a snapshot of switch, link and crosspoint counts.
//
// Determinism:
//   - Deterministic for a fixed graph state; under concurrent mutation the
//     snapshot is consistent per phase (switches, then links).
//
// Complexity:
//   - Time O(S), Space O(1).
func (g *Graph) Stats() *GraphStats {
	var stats GraphStats

	g.muSwitch.RLock()
	total := 0
	for _, sw := range g.switches {
		switch sw.Stage {
		case StageInput:
			stats.InputSwitches++
		case StageMiddle:
			stats.MiddleSwitches++
			if sw.Nested {
				stats.NestedSwitches++
			}
		case StageOutput:
			stats.OutputSwitches++
		}
		total += sw.Crosspoints()
	}
	g.muSwitch.RUnlock()
	stats.Crosspoints = float64(total)

	g.muLink.RLock()
	stats.LinkCount = len(g.links)
	g.muLink.RUnlock()

	return &stats
}
