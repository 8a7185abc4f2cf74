// Package multistage sizes multistage switching fabrics: Clos networks with
// 2n−1 middle switches and the Slepian alternative, recursively nested to any
// odd number of stages.
//
// Under the hood, everything is organized under these subpackages:
//
//	fabric/  — parameter resolution, the Clos and Slepian builders, the Model tree
//	wiring/  — thread-safe switch/link graph
//	layout/  — materialises one Model level as input/middle/output columns
//	report/  — level tables and YAML/JSON export
//	config/  — batch request files
//
// Quick example:
//
//	m, err := fabric.BuildClos(fabric.Int(64), nil, nil, 5)
//	// m.Crosspoints == 4452, m.Nested.Crosspoints == 80
//
// The fabcalc command in cmd/fabcalc exposes the same operations from a shell.
package multistage
