// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// resolver.go — completion of a partial (size, fan-out, block count) triple.
//
// Contract:
//   • size absent                  → ErrMissingNetworkSize.
//   • any supplied value ≤ 0       → ErrInvalidDimension.
//   • fan-out and blocks both set  → size must equal their product
//     (else ErrInconsistentDimensions).
//   • exactly one of them set      → the other is ceil(size/known), at least 1,
//     and size grows to known × derived (smallest covering fabric).
//   • neither set                  → ErrUnresolvedPair; the owning builder
//     substitutes its default-sizing pair instead.
//   • a product that does not fit in int → ErrInvalidDimension.
//
// Complexity: O(1).

package fabric

import "math"

// Resolve completes a partial triple. The returned Params always satisfy
// Size == FanOut × Blocks and Size ≥ *size.
func Resolve(size, fanOut, blocks *int) (Params, error) {
	return resolve(MethodResolve, size, fanOut, blocks)
}

func resolve(method string, size, fanOut, blocks *int) (Params, error) {
	if size == nil {
		return Params{}, fabricErrorf(method, ErrMissingNetworkSize, "size=<absent>")
	}
	if err := validateDimensions(method, size, fanOut, blocks); err != nil {
		return Params{}, err
	}
	n := *size

	switch {
	case fanOut == nil && blocks == nil:
		return Params{}, fabricErrorf(method, ErrUnresolvedPair, "size=%d", n)

	case fanOut != nil && blocks != nil:
		product, ok := mulInt(*fanOut, *blocks)
		if !ok {
			return Params{}, fabricErrorf(method, ErrInvalidDimension,
				"fan-out=%d × blocks=%d overflows int", *fanOut, *blocks)
		}
		if n != product {
			return Params{}, fabricErrorf(method, ErrInconsistentDimensions,
				"size=%d, fan-out=%d, blocks=%d (product %d)", n, *fanOut, *blocks, product)
		}
		return Params{Size: n, FanOut: *fanOut, Blocks: *blocks}, nil

	case fanOut != nil:
		derived := max(1, ceilDiv(n, *fanOut))
		covered, ok := mulInt(*fanOut, derived)
		if !ok {
			return Params{}, fabricErrorf(method, ErrInvalidDimension,
				"size=%d rounded up to fan-out=%d × blocks=%d overflows int", n, *fanOut, derived)
		}
		return Params{Size: covered, FanOut: *fanOut, Blocks: derived}, nil

	default:
		derived := max(1, ceilDiv(n, *blocks))
		covered, ok := mulInt(derived, *blocks)
		if !ok {
			return Params{}, fabricErrorf(method, ErrInvalidDimension,
				"size=%d rounded up to fan-out=%d × blocks=%d overflows int", n, derived, *blocks)
		}
		return Params{Size: covered, FanOut: derived, Blocks: *blocks}, nil
	}
}

// validateDimensions rejects any supplied value that is not positive.
func validateDimensions(method string, size, fanOut, blocks *int) error {
	for _, d := range []struct {
		name string
		v    *int
	}{{"size", size}, {"fan-out", fanOut}, {"blocks", blocks}} {
		if d.v != nil && *d.v <= 0 {
			return fabricErrorf(method, ErrInvalidDimension, "%s=%d", d.name, *d.v)
		}
	}

	return nil
}

// ceilDiv returns ⌈a/b⌉ for positive a and b without going through floats.
func ceilDiv(a, b int) int {
	return 1 + (a-1)/b
}

// mulInt multiplies two positive ints, reporting false when a·b > math.MaxInt.
func mulInt(a, b int) (int, bool) {
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}
