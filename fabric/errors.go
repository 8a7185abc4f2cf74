// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// errors.go — sentinel errors for the fabric package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w` ("BuildClos: stages=4: ...").
//   • Builders never panic; validation panics are confined to WithX options.

package fabric

import (
	"errors"
	"fmt"
)

// ErrMissingNetworkSize indicates that the total network size N was absent.
var ErrMissingNetworkSize = errors.New("fabric: network size is required")

// ErrInvalidStageCount indicates a stage count below MinStages, or an even
// stage count for the Clos family.
var ErrInvalidStageCount = errors.New("fabric: invalid stage count")

// ErrInconsistentDimensions indicates that both fan-out and block count were
// supplied but their product differs from the requested size.
var ErrInconsistentDimensions = errors.New("fabric: size does not equal fan-out × block count")

// ErrNestedConstructionFailed wraps a failure raised while building the
// nested sub-network of a deeper stage.
var ErrNestedConstructionFailed = errors.New("fabric: nested construction failed")

// ErrInvalidDimension indicates a supplied size, fan-out or block count that
// is not a positive integer, or a derived dimension that overflows int.
var ErrInvalidDimension = errors.New("fabric: dimension must be positive")

// ErrUnknownFamily indicates a Family tag outside {Clos, Slepian}.
var ErrUnknownFamily = errors.New("fabric: unknown network family")

// ErrStageLimit indicates a stage count above the limit set by WithMaxStages.
var ErrStageLimit = errors.New("fabric: stage count exceeds configured limit")

// ErrUnresolvedPair is returned by Resolve when neither fan-out nor block
// count is present; builders substitute the default-sizing pair instead.
var ErrUnresolvedPair = errors.New("fabric: fan-out and block count both absent")

// ErrCrosspointOverflow indicates a crosspoint count beyond float64 range,
// typically r²·n^stages of a deep Slepian fabric.
var ErrCrosspointOverflow = errors.New("fabric: crosspoint count overflows float64")

// ErrInvalidModel indicates a Model tree that breaks the chain invariants
// (see Model.Validate).
var ErrInvalidModel = errors.New("fabric: invalid model")

// fabricErrorf prefixes a formatted message with the method name and wraps
// the sentinel so errors.Is keeps working.
func fabricErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
