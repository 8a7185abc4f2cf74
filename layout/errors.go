// SPDX-License-Identifier: MIT
// Package: multistage/layout
//
// errors.go — sentinel errors for the layout package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.

package layout

import "errors"

// ErrNilModel indicates that Level/All received a nil model.
var ErrNilModel = errors.New("layout: model is nil")

// ErrTooFewSwitches indicates a column with fewer than one switch or a
// switch with fewer than one port.
var ErrTooFewSwitches = errors.New("layout: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete, e.g. a
// nil constructor passed to Build or a mesh between empty columns.
var ErrConstructFailed = errors.New("layout: construction failed")
