// File: methods_switches.go
// Role: Switch registration & queries.
//
// Determinism:
//   - Switches() returns switches ordered by (Stage, Index, ID).
//
// Concurrency:
//   - Switch catalog protected by muSwitch.
//   - Adjacency bootstrap under muLink.
package wiring

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
)

// AddSwitch registers sw. Unlike links, switches are never created
// implicitly: a duplicate ID is an error rather than a no-op, because the
// port counts of the two registrations could disagree.
//
// Errors: ErrEmptySwitchID, ErrBadPorts, ErrSwitchExists.
// Complexity: O(1) amortized.
func (g *Graph) AddSwitch(sw Switch) error {
	if sw.ID == "" {
		return ErrEmptySwitchID
	}
	if sw.Inputs < 1 || sw.Outputs < 1 {
		return fmt.Errorf("AddSwitch(%s): %d×%d: %w", sw.ID, sw.Inputs, sw.Outputs, ErrBadPorts)
	}

	g.muSwitch.Lock()
	defer g.muSwitch.Unlock()

	if _, exists := g.switches[sw.ID]; exists {
		return fmt.Errorf("AddSwitch(%s): %w", sw.ID, ErrSwitchExists)
	}
	stored := sw
	g.switches[sw.ID] = &stored

	// Bootstrap the adjacency bucket so link code can rely on it.
	g.muLink.Lock()
	if g.adjacency[sw.ID] == nil {
		g.adjacency[sw.ID] = make(map[string]map[string]struct{})
	}
	g.muLink.Unlock()

	return nil
}

// HasSwitch reports whether the switch ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasSwitch(id string) bool {
	if id == "" {
		return false
	}
	g.muSwitch.RLock()
	defer g.muSwitch.RUnlock()

	_, ok := g.switches[id]
	return ok
}

// Switch returns a copy of the switch with the given ID.
// Errors: ErrSwitchNotFound.
func (g *Graph) Switch(id string) (Switch, error) {
	g.muSwitch.RLock()
	defer g.muSwitch.RUnlock()

	sw, ok := g.switches[id]
	if !ok {
		return Switch{}, fmt.Errorf("Switch(%s): %w", id, ErrSwitchNotFound)
	}
	return *sw, nil
}

// Switches returns copies of all switches ordered by (Stage, Index, ID).
// Complexity: O(S log S).
func (g *Graph) Switches() []Switch {
	g.muSwitch.RLock()
	out := make([]Switch, 0, len(g.switches))
	for _, sw := range g.switches {
		out = append(out, *sw)
	}
	g.muSwitch.RUnlock()

	slices.SortFunc(out, compareSwitches)
	return out
}

// StageSwitches returns the switches of one stage ordered by Index.
func (g *Graph) StageSwitches(stage Stage) []Switch {
	all := g.Switches()
	out := all[:0]
	for _, sw := range all {
		if sw.Stage == stage {
			out = append(out, sw)
		}
	}
	return out
}

// SwitchCount returns the number of registered switches.
// Complexity: O(1).
func (g *Graph) SwitchCount() int {
	g.muSwitch.RLock()
	defer g.muSwitch.RUnlock()

	return len(g.switches)
}

// Crosspoints returns Σ Inputs×Outputs over every switch: the crosspoint
// count of the materialised level.
// Complexity: O(S).
func (g *Graph) Crosspoints() float64 {
	g.muSwitch.RLock()
	defer g.muSwitch.RUnlock()

	total := 0
	for _, sw := range g.switches {
		total += sw.Crosspoints()
	}
	return float64(total)
}

func compareSwitches(a, b Switch) int {
	if c := cmp.Compare(a.Stage, b.Stage); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Index, b.Index); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}
