// Package wiring defines the Graph, Switch and Link types of a materialised
// switch fabric, and provides thread-safe primitives for building and
// querying it.
//
// All wiring APIs use separate sync.RWMutex locks internally (muSwitch for the
// switch catalog, muLink for links and adjacency), so graphs can be built and
// read across goroutines with minimal contention.
//
// Errors:
//
//	ErrEmptySwitchID   - switch ID is the empty string.
//	ErrSwitchExists    - a switch with the same ID is already registered.
//	ErrSwitchNotFound  - requested switch does not exist.
//	ErrBadPorts        - a switch declares fewer than one input or output.
//	ErrSelfLink        - a link from a switch to itself.
//	ErrLinkExists      - a parallel link when parallel links are disabled.
package wiring

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for wiring graph operations.
var (
	// ErrEmptySwitchID indicates that the provided Switch has an empty ID.
	ErrEmptySwitchID = errors.New("wiring: switch ID is empty")

	// ErrSwitchExists indicates a duplicate switch registration.
	ErrSwitchExists = errors.New("wiring: switch already exists")

	// ErrSwitchNotFound indicates an operation referenced a non-existent switch.
	ErrSwitchNotFound = errors.New("wiring: switch not found")

	// ErrBadPorts indicates a switch with a non-positive port count.
	ErrBadPorts = errors.New("wiring: switch ports must be positive")

	// ErrSelfLink indicates a link whose endpoints are the same switch.
	ErrSelfLink = errors.New("wiring: self-link not allowed")

	// ErrLinkExists indicates a parallel link when parallel links are disabled.
	ErrLinkExists = errors.New("wiring: link already exists")
)

// Stage is the column a switch sits in.
type Stage int

const (
	// StageInput is the first (ingress) stage.
	StageInput Stage = iota
	// StageMiddle is the middle stage; its switches may be realised by a
	// nested fabric.
	StageMiddle
	// StageOutput is the last (egress) stage.
	StageOutput
)

// String returns "input", "middle" or "output".
func (s Stage) String() string {
	switch s {
	case StageInput:
		return "input"
	case StageMiddle:
		return "middle"
	case StageOutput:
		return "output"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Switch is one crossbar in the fabric.
type Switch struct {
	// ID uniquely identifies the switch within its Graph.
	ID string

	// Stage and Index locate the switch: Index is zero-based within Stage.
	Stage Stage
	Index int

	// Inputs × Outputs is the crossbar size, hence its crosspoint count.
	Inputs  int
	Outputs int

	// Nested marks a middle switch realised by a deeper fabric.
	Nested bool
}

// Crosspoints is the number of crosspoints inside the switch.
func (s Switch) Crosspoints() int {
	return s.Inputs * s.Outputs
}

// Link is a directed inter-stage connection From → To.
type Link struct {
	// ID is "l" + decimal sequence number, unique within the Graph.
	ID string

	From string
	To   string

	seq uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithParallelLinks permits more than one link between the same switches.
func WithParallelLinks() GraphOption {
	return func(g *Graph) { g.allowParallel = true }
}

// Graph is the in-memory wiring of one fabric level.
//
// muSwitch protects the switch catalog; muLink protects links and adjacency.
// Lock order is muSwitch -> muLink.
type Graph struct {
	muSwitch sync.RWMutex
	muLink   sync.RWMutex

	allowParallel bool

	// Storage
	nextLinkID uint64             // atomic link ID generator
	switches   map[string]*Switch // switch ID → Switch
	links      map[string]*Link   // link ID → Link

	// adjacency[from][to][linkID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default parallel links are rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		switches:  make(map[string]*Switch),
		links:     make(map[string]*Link),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
