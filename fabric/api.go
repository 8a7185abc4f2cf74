// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// api.go — the family-tagged entry point and the shared recursive build loop.
//
// Design contract:
//   • One loop (build) drives both families through familyPolicy.
//   • Level k resolves its pair, costs itself, and recurses to k−2 while
//     k > MinStages; recursion depth is exactly (stages−1)/2.
//   • All-or-nothing: any failure returns (nil, err); no partial trees.
//   • Every returned level has a finite crosspoint count (else
//     ErrCrosspointOverflow).
//   • Pure: the only side effect is optional debug logging via WithLogger.

package fabric

import (
	"fmt"
	"math"
)

// Build resolves a fabric of the given family from a partial Request.
// It is equivalent to BuildClos / BuildSlepian with the request's fields.
func Build(family Family, req Request, opts ...Option) (*Model, error) {
	pol, err := policyFor(family)
	if err != nil {
		return nil, err
	}

	return build(pol, newConfig(opts...), req.Size, req.FanOut, req.Blocks, req.Stages)
}

// build resolves one level and, while stages remain, the nested chain below it.
func build(pol familyPolicy, cfg config, size, fanOut, blocks *int, stages int) (*Model, error) {
	method := pol.method()

	// Preconditions in the order the error taxonomy lists them.
	if size == nil {
		return nil, fabricErrorf(method, ErrMissingNetworkSize, "size=<absent>")
	}
	if stages < MinStages {
		return nil, fabricErrorf(method, ErrInvalidStageCount, "stages=%d < min=%d", stages, MinStages)
	}
	if err := pol.checkStages(stages); err != nil {
		return nil, err
	}
	if cfg.maxStages > 0 && stages > cfg.maxStages {
		return nil, fabricErrorf(method, ErrStageLimit, "stages=%d > max=%d", stages, cfg.maxStages)
	}
	if err := validateDimensions(method, size, fanOut, blocks); err != nil {
		return nil, err
	}
	requested := *size

	// Resolve this level's pair: default sizing when both are absent.
	var (
		params Params
		cost   float64
	)
	if fanOut == nil && blocks == nil {
		var err error
		if params, err = pol.defaultPair(requested); err != nil {
			return nil, err
		}
		cost = pol.defaultCost(params, requested)
	} else {
		var err error
		if params, err = resolve(method, size, fanOut, blocks); err != nil {
			return nil, err
		}
		cost = pol.resolvedCost(params, requested)
	}
	if err := pol.checkPair(params); err != nil {
		return nil, err
	}
	ports, middle := pol.shape(params)

	// Expand the middle stage into a nested fabric two stages shorter.
	var nested *Model
	if stages > MinStages {
		var err error
		nested, err = build(pol, cfg, Int(pol.nestedSize(params, requested)), nil, nil, stages-StageStep)
		if err != nil {
			return nil, fmt.Errorf("%s: stages=%d: %w: %w", method, stages, ErrNestedConstructionFailed, err)
		}
		cost = pol.combine(params, stages, nested)
	}
	if math.IsInf(cost, 0) || math.IsNaN(cost) {
		return nil, fabricErrorf(method, ErrCrosspointOverflow,
			"stages=%d, fan-out=%d, blocks=%d", stages, params.FanOut, params.Blocks)
	}

	cfg.logger.Debug("fabric level resolved",
		"family", pol.family().String(),
		"stages", stages,
		"size", requested,
		"resolved_size", params.Size,
		"fan_out", params.FanOut,
		"blocks", params.Blocks,
		"crosspoints", cost,
	)

	return &Model{
		Family:              pol.family(),
		NetworkSize:         requested,
		Stages:              stages,
		InputPorts:          ports,
		OutputPorts:         ports,
		MiddleStageSwitches: middle,
		Crosspoints:         cost,
		Params:              params,
		Nested:              nested,
	}, nil
}
