// Package config loads batches of fabric requests from YAML or JSON files and
// runs them through fabric.Build.
//
// A batch file lists requests; absent dimensions are simply omitted:
//
//	requests:
//	  - name: edge
//	    family: clos
//	    size: 64
//	    stages: 5
//	  - family: slepian
//	    size: 12
//	    fan_out: 3
//	    blocks: 4
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/multistage/fabric"
	"github.com/katalvlaran/multistage/report"
)

// ErrEmptyBatch indicates a batch file with no requests.
var ErrEmptyBatch = errors.New("config: batch has no requests")

// Entry is one request of a batch. Stages defaults to fabric.MinStages when
// omitted.
type Entry struct {
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Family fabric.Family `json:"family" yaml:"family"`
	Size   *int          `json:"size,omitempty" yaml:"size,omitempty"`
	FanOut *int          `json:"fan_out,omitempty" yaml:"fan_out,omitempty"`
	Blocks *int          `json:"blocks,omitempty" yaml:"blocks,omitempty"`
	Stages int           `json:"stages,omitempty" yaml:"stages,omitempty"`
}

// Batch is the decoded form of a batch file.
type Batch struct {
	Requests []Entry `json:"requests" yaml:"requests"`
}

// Result pairs an entry with its built model or the error that stopped it.
type Result struct {
	Entry Entry
	Model *fabric.Model
	Err   error
}

// Request converts e to a fabric.Request.
func (e Entry) Request() fabric.Request {
	stages := e.Stages
	if stages == 0 {
		stages = fabric.MinStages
	}

	return fabric.Request{Size: e.Size, FanOut: e.FanOut, Blocks: e.Blocks, Stages: stages}
}

// Label names the entry in reports: its Name, or family and size.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	if e.Size == nil {
		return e.Family.String()
	}
	return fmt.Sprintf("%s-%d", e.Family, *e.Size)
}

// Load reads a batch file; .yaml/.yml select YAML, .json selects JSON and
// any other extension fails with report.ErrUnknownFormat.
func Load(filename string) (*Batch, error) {
	format, err := report.FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	batch, err := Parse(data, format == report.YAML)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", filename, err)
	}

	return batch, nil
}

// Parse decodes a batch from data.
func Parse(data []byte, useYAML bool) (*Batch, error) {
	batch := new(Batch)

	var err error
	if useYAML {
		err = yaml.Unmarshal(data, batch)
	} else {
		err = json.Unmarshal(data, batch)
	}
	if err != nil {
		return nil, err
	}
	if len(batch.Requests) == 0 {
		return nil, ErrEmptyBatch
	}

	return batch, nil
}

// Run builds every entry in order. A failing entry does not stop the batch;
// its Result carries the error and a nil Model.
func Run(batch *Batch, opts ...fabric.Option) []Result {
	if batch == nil {
		return nil
	}

	results := make([]Result, len(batch.Requests))
	for i, e := range batch.Requests {
		m, err := fabric.Build(e.Family, e.Request(), opts...)
		results[i] = Result{Entry: e, Model: m, Err: err}
	}

	return results
}

// Failed counts results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
