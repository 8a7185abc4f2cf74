// SPDX-License-Identifier: MIT
// Package: multistage/layout
//
// impl_mesh.go — implementation of the FullMesh(from, to) constructor.
//
// Contract:
//   • Both stage columns must already hold at least one switch
//     (else ErrConstructFailed).
//   • Emits every cross-pair from_i → to_j, i asc over the source column,
//     inner j asc over the target column.
//
// Complexity:
//   • Time: O(|from|·|to|) links. Space: O(|from|+|to|) for the column snapshots.

package layout

import (
	"fmt"

	"github.com/katalvlaran/multistage/wiring"
)

const methodFullMesh = "FullMesh"

// FullMesh returns a Constructor linking every switch of stage from to every
// switch of stage to.
func FullMesh(from, to wiring.Stage) Constructor {
	return func(g *wiring.Graph, _ layoutConfig) error {
		src, dst := g.StageSwitches(from), g.StageSwitches(to)
		if len(src) == 0 || len(dst) == 0 {
			return fmt.Errorf("%s(%s→%s): %d×%d switches: %w",
				methodFullMesh, from, to, len(src), len(dst), ErrConstructFailed)
		}

		for _, u := range src {
			for _, v := range dst {
				if _, err := g.AddLink(u.ID, v.ID); err != nil {
					return fmt.Errorf("%s: AddLink(%s→%s): %w", methodFullMesh, u.ID, v.ID, err)
				}
			}
		}

		return nil
	}
}
