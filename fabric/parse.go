package fabric

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDimension turns raw text-field input into an optional dimension.
// Empty, non-numeric and non-positive input is absent (nil), never zero.
func ParseDimension(text string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || v <= 0 {
		return nil
	}
	return &v
}

// ParseStages parses a stage count. Range rules are left to the builders;
// only non-numeric input is rejected here.
func ParseStages(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("ParseStages: %q: %w", text, ErrInvalidStageCount)
	}
	return v, nil
}

// ParseRequest assembles a Request from the four raw input fields.
func ParseRequest(size, fanOut, blocks, stages string) (Request, error) {
	k, err := ParseStages(stages)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Size:   ParseDimension(size),
		FanOut: ParseDimension(fanOut),
		Blocks: ParseDimension(blocks),
		Stages: k,
	}, nil
}
