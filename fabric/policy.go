// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// policy.go — the per-family strategy consumed by the generic build loop.
//
// The two families share the resolution pipeline and the Model shape; they
// differ only in:
//   • stage-count rule      (Clos requires odd counts),
//   • default sizing        (which side of the split is the estimate),
//   • cost formulas         (base, resolved and multi-stage),
//   • recursion target      (Clos shrinks to m, Slepian keeps N),
//   • level shape           (edge-switch count and middle-switch count).

package fabric

import "math"

// familyPolicy captures every family-specific decision of a build.
type familyPolicy interface {
	// method is the error/log context name of the builder.
	method() string
	// family is the tag stamped on every produced level.
	family() Family
	// checkStages validates the stage count beyond the shared minimum.
	checkStages(stages int) error
	// defaultPair picks the size-optimal (fan-out, blocks) pair for size.
	defaultPair(size int) (Params, error)
	// checkPair rejects a resolved pair whose level shape does not fit in int.
	checkPair(p Params) error
	// defaultCost is the level cost when the default pair was used.
	defaultCost(p Params, size int) float64
	// resolvedCost is the level cost when Resolve completed the triple.
	resolvedCost(p Params, size int) float64
	// nestedSize is the network size of the nested sub-problem.
	nestedSize(p Params, size int) int
	// combine is the total cost of a level with more than MinStages stages.
	combine(p Params, stages int, nested *Model) float64
	// shape returns (edge-switch count, middle-switch count) of the level.
	shape(p Params) (ports, middle int)
}

// policyFor maps a Family tag to its strategy.
func policyFor(f Family) (familyPolicy, error) {
	switch f {
	case Clos:
		return closPolicy{}, nil
	case Slepian:
		return slepianPolicy{}, nil
	default:
		return nil, fabricErrorf(MethodBuild, ErrUnknownFamily, "family=%d", int(f))
	}
}

// defaultSplit returns the standard square-root split of size: an estimate
// est = max(1, round(√(size/2))) and the smallest other with est·other ≥ size.
// It fails with ErrInvalidDimension when est·other does not fit in int.
func defaultSplit(method string, size int) (est, other, covered int, err error) {
	est = max(1, int(math.Round(math.Sqrt(float64(size)/2.0))))
	other = ceilDiv(size, est)

	covered, ok := mulInt(est, other)
	if !ok {
		return 0, 0, 0, fabricErrorf(method, ErrInvalidDimension,
			"size=%d: default split %d × %d overflows int", size, est, other)
	}

	return est, other, covered, nil
}
