// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// clos.go — Clos family: m edge switches of n inputs, 2n−1 middle switches
// of size m×m.
//
// Contract:
//   • stages odd and ≥ MinStages (else ErrInvalidStageCount).
//   • Default pair: m = max(1, round(√(N/2))), n = ⌈N/m⌉ (+1 until m·n ≥ N).
//   • Level cost: 2·m·n·mid + mid·m², mid = 2n−1.
//   • stages > 3: nested Clos on N' = m with stages−2; the middle-switch
//     term is replaced by mid · nested.Crosspoints.
//   • InputPorts = OutputPorts = m; MiddleStageSwitches = mid;
//     NetworkSize = the requested N (not the rounded-up resolved size).

package fabric

import "math"

// closPolicy implements familyPolicy for Clos networks.
// Params mapping: FanOut = n, Blocks = m.
type closPolicy struct{}

func (closPolicy) method() string { return MethodBuildClos }

func (closPolicy) family() Family { return Clos }

func (closPolicy) checkStages(stages int) error {
	if stages%2 == 0 {
		return fabricErrorf(MethodBuildClos, ErrInvalidStageCount, "stages=%d must be odd", stages)
	}
	return nil
}

func (closPolicy) defaultPair(size int) (Params, error) {
	m, n, covered, err := defaultSplit(MethodBuildClos, size)
	if err != nil {
		return Params{}, err
	}
	return Params{Size: covered, FanOut: n, Blocks: m}, nil
}

// checkPair rejects fan-outs whose middle-switch count 2n−1 overflows int.
func (closPolicy) checkPair(params Params) error {
	if params.FanOut > math.MaxInt/2+1 {
		return fabricErrorf(MethodBuildClos, ErrInvalidDimension,
			"fan-out=%d: middle-switch count 2n−1 overflows int", params.FanOut)
	}
	return nil
}

func (p closPolicy) defaultCost(params Params, size int) float64 {
	return p.resolvedCost(params, size)
}

func (closPolicy) resolvedCost(params Params, _ int) float64 {
	m, n := float64(params.Blocks), float64(params.FanOut)
	mid := float64(closMiddle(params.FanOut))
	return closEdgeCost(m, n, mid) + mid*m*m
}

func (closPolicy) nestedSize(params Params, _ int) int {
	return params.Blocks
}

func (closPolicy) combine(params Params, _ int, nested *Model) float64 {
	m, n := float64(params.Blocks), float64(params.FanOut)
	mid := float64(closMiddle(params.FanOut))
	return closEdgeCost(m, n, mid) + mid*nested.Crosspoints
}

func (closPolicy) shape(params Params) (ports, middle int) {
	return params.Blocks, closMiddle(params.FanOut)
}

// closMiddle is the middle-switch count 2n−1 of a Clos level.
func closMiddle(n int) int {
	return 2*n - 1
}

// closEdgeCost is the crosspoint count of the first and last stages:
// m switches of n×mid on each side.
func closEdgeCost(m, n, mid float64) float64 {
	return 2.0 * m * n * mid
}

// BuildClos resolves a Clos fabric of the given size. n is the number of
// inputs per first-stage switch, m the number of first-stage switches; either
// or both may be nil. See the file contract for the cost model.
//
// Errors: ErrMissingNetworkSize, ErrInvalidStageCount, ErrInvalidDimension,
// ErrInconsistentDimensions, ErrStageLimit, ErrNestedConstructionFailed.
func BuildClos(size, n, m *int, stages int, opts ...Option) (*Model, error) {
	return build(closPolicy{}, newConfig(opts...), size, n, m, stages)
}
