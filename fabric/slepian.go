// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// slepian.go — Slepian family: r edge switches of size n×n, n middle
// switches of size r×r.
//
// Contract:
//   • stages ≥ MinStages; no parity rule at this level. An even count still
//     fails one level down, because the nested call reaches stages < 3.
//     No level is returned with its nested topology missing: the whole
//     build fails with ErrNestedConstructionFailed.
//   • Default pair: n = max(1, round(√(N/2))), r = ⌈N/n⌉ (+1 until n·r ≥ N);
//     cost is the closed form 2·√2·N^1.5, independent of (n, r).
//   • Resolved pair: cost N·(2n + r) with N the requested size.
//   • stages > 3: nested Slepian on the SAME N with stages−2; the level total
//     is r²·n^stages and does not fold in the nested cost. A total beyond
//     float64 range fails with ErrCrosspointOverflow.
//   • InputPorts = OutputPorts = r; MiddleStageSwitches = n.

package fabric

import "math"

// slepianPolicy implements familyPolicy for Slepian networks.
// Params mapping: FanOut = n, Blocks = r.
type slepianPolicy struct{}

func (slepianPolicy) method() string { return MethodBuildSlepian }

func (slepianPolicy) family() Family { return Slepian }

func (slepianPolicy) checkStages(int) error { return nil }

func (slepianPolicy) defaultPair(size int) (Params, error) {
	n, r, covered, err := defaultSplit(MethodBuildSlepian, size)
	if err != nil {
		return Params{}, err
	}
	return Params{Size: covered, FanOut: n, Blocks: r}, nil
}

// checkPair accepts every resolved pair: the level shape is (r, n) itself.
func (slepianPolicy) checkPair(Params) error { return nil }

func (slepianPolicy) defaultCost(_ Params, size int) float64 {
	return 2 * math.Sqrt2 * math.Pow(float64(size), 1.5)
}

func (slepianPolicy) resolvedCost(params Params, size int) float64 {
	return float64(size) * (2.0*float64(params.FanOut) + float64(params.Blocks))
}

func (slepianPolicy) nestedSize(_ Params, size int) int {
	return size
}

// combine ignores nested: the multi-stage total is a closed form over this
// level's own (r, n, stages).
func (slepianPolicy) combine(params Params, stages int, _ *Model) float64 {
	return math.Pow(float64(params.Blocks), 2) * math.Pow(float64(params.FanOut), float64(stages))
}

func (slepianPolicy) shape(params Params) (ports, middle int) {
	return params.Blocks, params.FanOut
}

// BuildSlepian resolves a Slepian fabric of the given size. n is the middle
// switch count (and edge-switch dimension), r the edge-switch count; either
// or both may be nil. See the file contract for the cost model.
//
// Errors: ErrMissingNetworkSize, ErrInvalidStageCount, ErrInvalidDimension,
// ErrInconsistentDimensions, ErrStageLimit, ErrNestedConstructionFailed.
func BuildSlepian(size, n, r *int, stages int, opts ...Option) (*Model, error) {
	return build(slepianPolicy{}, newConfig(opts...), size, n, r, stages)
}
