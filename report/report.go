// Package report presents and serialises fabric.Model trees: a per-level
// table with crosspoints rounded for display, and YAML/JSON encodings of the
// whole chain selected by file extension.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/multistage/fabric"
)

// Row is the display form of one model level.
type Row struct {
	Depth               int           `json:"depth" yaml:"depth"`
	Family              fabric.Family `json:"family" yaml:"family"`
	NetworkSize         int           `json:"network_size" yaml:"network_size"`
	ResolvedSize        int           `json:"resolved_size" yaml:"resolved_size"`
	Stages              int           `json:"stages" yaml:"stages"`
	EdgeSwitches        int           `json:"edge_switches" yaml:"edge_switches"`
	EdgeSwitchPorts     int           `json:"edge_switch_ports" yaml:"edge_switch_ports"`
	MiddleStageSwitches int           `json:"middle_stage_switches" yaml:"middle_stage_switches"`
	Crosspoints         float64       `json:"crosspoints" yaml:"crosspoints"`
}

// Rows flattens the chain rooted at m into one Row per level, outermost
// first. Crosspoints are rounded to fabric.CrosspointPrecision places.
func Rows(m *fabric.Model) []Row {
	rows := make([]Row, 0, m.Depth())
	m.Walk(func(depth int, l *fabric.Model) bool {
		rows = append(rows, Row{
			Depth:               depth,
			Family:              l.Family,
			NetworkSize:         l.NetworkSize,
			ResolvedSize:        l.Params.Size,
			Stages:              l.Stages,
			EdgeSwitches:        l.InputPorts,
			EdgeSwitchPorts:     l.EdgeSwitchPorts(),
			MiddleStageSwitches: l.MiddleStageSwitches,
			Crosspoints:         l.RoundedCrosspoints(),
		})
		return true
	})
	return rows
}

// WriteTable renders Rows(m) as an aligned text table.
func WriteTable(w io.Writer, m *fabric.Model) error {
	if m == nil {
		return fmt.Errorf("WriteTable: %w", fabric.ErrInvalidModel)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tFAMILY\tN\tRESOLVED\tSTAGES\tEDGE SWITCHES\tPORTS/SWITCH\tMIDDLE\tCROSSPOINTS")
	for _, r := range Rows(m) {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.2f\n",
			r.Depth, r.Family, r.NetworkSize, r.ResolvedSize, r.Stages,
			r.EdgeSwitches, r.EdgeSwitchPorts, r.MiddleStageSwitches, r.Crosspoints)
	}

	return tw.Flush()
}
