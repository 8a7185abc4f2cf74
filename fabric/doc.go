// Package fabric derives the structural parameters and crosspoint cost of
// multistage interconnection networks (Clos and Slepian families).
//
// Given a partial description of a fabric - total size N, per-switch fan-out
// and switch-block count, any of which may be absent - the package completes
// the missing dimension, expands the middle stage into nested sub-networks
// for stage counts above three, and accumulates the total crosspoint count.
//
// The package offers the following key components:
//
//   - Parameter resolution:
//     – Resolve:           completes (N, a, b) when one of a/b is missing,
//     rounding N up to the smallest covering size.
//   - Topology builders:
//     – BuildClos:         odd stage counts ≥ 3, recursion on N' = m.
//     – BuildSlepian:      stage counts ≥ 3, recursion on the same N.
//     – Build:             family-tagged entry point over Request.
//   - Model:
//     – Model:             one level of the fabric plus its owned Nested chain.
//     – Depth/Levels/Walk: read-only traversal helpers.
//     – Validate:          re-checks the chain invariants (odd, ≥3, step 2).
//   - Raw input:
//     – ParseDimension:    text → *int, empty or non-numeric → nil (absent).
//
// Guarantees:
//
//   - Pure functions: no shared state, safe for concurrent callers.
//   - All-or-nothing: a failure at any recursion level returns (nil, err);
//     partially built trees are never returned.
//   - Structured errors: sentinels (ErrMissingNetworkSize, ErrInvalidStageCount,
//     ErrInconsistentDimensions, ErrNestedConstructionFailed, ...) wrapped with
//     the method context; branch with errors.Is.
//   - Option constructors panic on meaningless values; builders never panic.
//
// Example (Clos, N=8, 3 stages, defaults):
//
//	m, err := fabric.BuildClos(fabric.Int(8), nil, nil, 3)
//	// m.InputPorts == 2, m.MiddleStageSwitches == 7, m.Crosspoints == 140
package fabric
