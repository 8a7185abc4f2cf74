// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// model.go — read-only helpers over a Model chain.
//
// None of these methods mutate the receiver; Clone is the only way to obtain
// a writable copy.

package fabric

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

// Depth returns the number of levels in the chain rooted at m, which is
// (Stages−1)/2 for any model produced by this package. A nil model has depth 0.
func (m *Model) Depth() int {
	depth := 0
	for cur := m; cur != nil; cur = cur.Nested {
		depth++
	}
	return depth
}

// Levels returns the chain as a slice, outermost level first.
func (m *Model) Levels() []*Model {
	levels := make([]*Model, 0, m.Depth())
	for cur := m; cur != nil; cur = cur.Nested {
		levels = append(levels, cur)
	}
	return levels
}

// Walk calls fn for every level, outermost first, with its zero-based nesting
// depth. Returning false from fn stops the walk.
func (m *Model) Walk(fn func(depth int, level *Model) bool) {
	depth := 0
	for cur := m; cur != nil; cur = cur.Nested {
		if !fn(depth, cur) {
			return
		}
		depth++
	}
}

// Deepest returns the innermost (3-stage) level of the chain.
func (m *Model) Deepest() *Model {
	if m == nil {
		return nil
	}
	cur := m
	for cur.Nested != nil {
		cur = cur.Nested
	}
	return cur
}

// EdgeSwitchPorts returns the external port count of one edge switch:
// n = (mid+1)/2 for Clos and n = mid for Slepian.
func (m *Model) EdgeSwitchPorts() int {
	if m.Family == Clos {
		return m.MiddleStageSwitches/2 + 1
	}
	return m.MiddleStageSwitches
}

// RoundedCrosspoints returns Crosspoints rounded to CrosspointPrecision
// decimal places, the precision used for display.
func (m *Model) RoundedCrosspoints() float64 {
	return scalar.Round(m.Crosspoints, CrosspointPrecision)
}

// Clone returns a deep copy of the chain rooted at m.
func (m *Model) Clone() *Model {
	if m == nil {
		return nil
	}
	cp := *m
	cp.Nested = m.Nested.Clone()
	return &cp
}

// String renders the chain on one line per level.
func (m *Model) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	m.Walk(func(depth int, l *Model) bool {
		if depth > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s%s N=%d stages=%d ports=%d middle=%d crosspoints=%.2f",
			strings.Repeat("  ", depth), l.Family, l.NetworkSize, l.Stages,
			l.InputPorts, l.MiddleStageSwitches, l.Crosspoints)
		return true
	})
	return b.String()
}

// Validate re-checks the structural invariants of the chain: every level has
// a supported family, an odd stage count ≥ MinStages, positive dimensions,
// equal input/output port counts and a finite non-negative cost; Nested is
// present iff Stages > MinStages, shares the family and is exactly
// StageStep stages shorter. Used on trees decoded from files.
func (m *Model) Validate() error {
	if m == nil {
		return fabricErrorf(MethodValidate, ErrInvalidModel, "nil model")
	}

	var err error
	m.Walk(func(depth int, l *Model) bool {
		err = validateLevel(depth, l)
		return err == nil
	})
	return err
}

func validateLevel(depth int, l *Model) error {
	fail := func(format string, args ...interface{}) error {
		return fabricErrorf(MethodValidate, ErrInvalidModel, "level %d: "+format, append([]interface{}{depth}, args...)...)
	}

	switch {
	case !l.Family.Valid():
		return fail("family=%d", int(l.Family))
	case l.Stages < MinStages || l.Stages%2 == 0:
		return fail("stages=%d", l.Stages)
	case l.NetworkSize <= 0 || l.InputPorts <= 0 || l.MiddleStageSwitches <= 0:
		return fail("non-positive dimension (size=%d ports=%d middle=%d)",
			l.NetworkSize, l.InputPorts, l.MiddleStageSwitches)
	case l.InputPorts != l.OutputPorts:
		return fail("input ports %d != output ports %d", l.InputPorts, l.OutputPorts)
	case l.Family == Clos && l.MiddleStageSwitches%2 == 0:
		return fail("clos middle switch count %d is not 2n-1", l.MiddleStageSwitches)
	case math.IsNaN(l.Crosspoints) || math.IsInf(l.Crosspoints, 0) || l.Crosspoints < 0:
		return fail("crosspoints=%v", l.Crosspoints)
	}

	if l.Params != (Params{}) {
		product, ok := 0, l.Params.FanOut > 0 && l.Params.Blocks > 0
		if ok {
			product, ok = mulInt(l.Params.FanOut, l.Params.Blocks)
		}
		if !ok || l.Params.Size != product || l.Params.Size < l.NetworkSize {
			return fail("params %+v do not cover size %d", l.Params, l.NetworkSize)
		}
	}

	switch {
	case l.Stages == MinStages && l.Nested != nil:
		return fail("3-stage level carries a nested model")
	case l.Stages > MinStages && l.Nested == nil:
		return fail("stages=%d without nested model", l.Stages)
	case l.Nested != nil && l.Nested.Stages != l.Stages-StageStep:
		return fail("nested stages=%d, want %d", l.Nested.Stages, l.Stages-StageStep)
	case l.Nested != nil && l.Nested.Family != l.Family:
		return fail("nested family %s != %s", l.Nested.Family, l.Family)
	}

	return nil
}
