// SPDX-License-Identifier: MIT
// Package: multistage/layout
//
// impl_column.go — implementation of the Column(stage, count, inputs, outputs, nested) constructor.
//
// Contract:
//   • count ≥ 1, inputs ≥ 1, outputs ≥ 1 (else ErrTooFewSwitches).
//   • Adds switches "<prefix><idFn(i)>" for i = 0..count-1 in ascending order.
//   • Every switch in the column has the same inputs×outputs crossbar.
//
// Complexity:
//   • Time: O(count). Space: O(1) extra.

package layout

import (
	"fmt"

	"github.com/katalvlaran/multistage/wiring"
)

const (
	methodColumn   = "Column"
	minColumnWidth = 1
	minSwitchPorts = 1
)

// Column returns a Constructor adding one stage column of identical switches.
func Column(stage wiring.Stage, count, inputs, outputs int, nested bool) Constructor {
	return func(g *wiring.Graph, cfg layoutConfig) error {
		if count < minColumnWidth {
			return fmt.Errorf("%s(%s): count=%d < min=%d: %w", methodColumn, stage, count, minColumnWidth, ErrTooFewSwitches)
		}
		if inputs < minSwitchPorts || outputs < minSwitchPorts {
			return fmt.Errorf("%s(%s): switch %d×%d: %w", methodColumn, stage, inputs, outputs, ErrTooFewSwitches)
		}

		for i := 0; i < count; i++ {
			sw := wiring.Switch{
				ID:      cfg.switchID(stage, i),
				Stage:   stage,
				Index:   i,
				Inputs:  inputs,
				Outputs: outputs,
				Nested:  nested,
			}
			if err := g.AddSwitch(sw); err != nil {
				return fmt.Errorf("%s(%s): %w", methodColumn, stage, err)
			}
		}

		return nil
	}
}
