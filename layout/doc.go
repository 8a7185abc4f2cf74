// Package layout materialises one level of a fabric.Model as a wiring.Graph:
// the switch columns and inter-stage links a fabric diagram draws.
//
// The package offers the following key components:
//
//   - Entry points:
//     – Level:            lay out one model level (I/M/O columns + full meshes).
//     – All:              one graph per nesting level, outermost first.
//     – Build:            compose Constructors over a fresh wiring.Graph.
//   - Constructors:
//     – Column:           add `count` switches of one stage with a fixed size.
//     – FullMesh:         link every switch of one stage to every switch of the next.
//   - Switch-ID schemes (IDFn implementations):
//     – DefaultIDFn:      one-based decimal ("1","2",…) → "I1","M3","O2".
//     – ZeroBasedIDFn:    zero-based decimal ("0","1",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – HexIDFn:          lowercase hexadecimal ("0","a","ff",…).
//   - Options:
//     – WithIDScheme, WithStagePrefixes, WithExcelColumnIDs, WithZeroBasedIDs, WithHexIDs.
//
// Shape of a level with k edge switches, j middle switches and n external
// ports per edge switch (n = (j+1)/2 for Clos, n = j for Slepian):
//
//	input  k × (n×j)   ─┐ k·j links
//	middle j × (k×k)   ─┤
//	output k × (j×n)   ─┘ j·k links
//
// so the graph's crosspoint count is 2·k·n·j + j·k², the 3-stage cost of
// both families.
//
// Guarantees:
//
//   - Deterministic IDs and link order for equal inputs and options.
//   - Option constructors panic on nil/meaningless input; Level/All/Build never panic.
//   - Sentinel errors (ErrNilModel, ErrTooFewSwitches, ErrConstructFailed) wrapped with %w;
//     invalid models surface fabric.ErrInvalidModel.
package layout
