// SPDX-License-Identifier: MIT
// Package: multistage/fabric
//
// types.go — Family tag, Request, Params and the Model tree.
//
// Ownership:
//   • Model.Nested is exclusively owned by its parent; the tree is acyclic
//     because every link lowers Stages by StageStep.
//   • Models are immutable once returned; Clone gives callers a private copy.

package fabric

import (
	"fmt"
	"strings"
)

// Family selects the multistage network family.
type Family int

const (
	// Clos is the classic 3-or-more-stage fabric with 2n−1 middle switches.
	Clos Family = iota + 1
	// Slepian is the alternative family with n middle switches of size r×r.
	Slepian
)

// String renders the family as its lower-case name ("clos", "slepian").
func (f Family) String() string {
	switch f {
	case Clos:
		return "clos"
	case Slepian:
		return "slepian"
	default:
		return fmt.Sprintf("family(%d)", int(f))
	}
}

// Valid reports whether f is one of the supported families.
func (f Family) Valid() bool {
	return f == Clos || f == Slepian
}

// ParseFamily maps a case-insensitive name to a Family.
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clos":
		return Clos, nil
	case "slepian":
		return Slepian, nil
	default:
		return 0, fmt.Errorf("ParseFamily: %q: %w", s, ErrUnknownFamily)
	}
}

// MarshalText implements encoding.TextMarshaler (used by JSON and YAML).
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(f), ErrUnknownFamily)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Request is the partial description of a fabric: each dimension is either
// a positive integer or absent (nil).
//
// FanOut is n for both families. Blocks is m (edge-switch count) for Clos and
// r for Slepian.
type Request struct {
	Size   *int
	FanOut *int
	Blocks *int
	Stages int
}

// Params is a fully resolved (size, fan-out, block count) triple.
// Size always equals FanOut × Blocks and is never below the requested size.
type Params struct {
	Size   int `json:"size" yaml:"size"`
	FanOut int `json:"fan_out" yaml:"fan_out"`
	Blocks int `json:"blocks" yaml:"blocks"`
}

// Model is one level of a multistage fabric. Levels deeper than three stages
// own a Nested model realising their middle stage.
type Model struct {
	// Family is the network family this level was built for.
	Family Family `json:"family" yaml:"family"`

	// NetworkSize is the total size requested for this level (not rounded up).
	NetworkSize int `json:"network_size" yaml:"network_size"`

	// Stages is the number of stages this level represents when fully expanded.
	Stages int `json:"stages" yaml:"stages"`

	// InputPorts and OutputPorts are the edge-stage switch counts.
	InputPorts  int `json:"input_ports" yaml:"input_ports"`
	OutputPorts int `json:"output_ports" yaml:"output_ports"`

	// MiddleStageSwitches is 2n−1 for Clos and n for Slepian.
	MiddleStageSwitches int `json:"middle_stage_switches" yaml:"middle_stage_switches"`

	// Crosspoints is the total wiring-element count attributed to this level.
	Crosspoints float64 `json:"crosspoints" yaml:"crosspoints"`

	// Params is the resolved triple used to cost this level.
	Params Params `json:"params" yaml:"params"`

	// Nested is present iff Stages > MinStages.
	Nested *Model `json:"nested,omitempty" yaml:"nested,omitempty"`
}

// Int returns a pointer to v; a convenience for building Requests.
func Int(v int) *int {
	return &v
}
