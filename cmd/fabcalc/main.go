// Command fabcalc sizes Clos and Slepian switching fabrics and prints the
// per-level breakdown.
//
//	fabcalc -family clos -size 64 -stages 5
//	fabcalc -family slepian -size 12 -fanout 3 -blocks 4 -graph
//	fabcalc -config batch.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/multistage/config"
	"github.com/katalvlaran/multistage/fabric"
	"github.com/katalvlaran/multistage/internal/logging"
	"github.com/katalvlaran/multistage/layout"
	"github.com/katalvlaran/multistage/report"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fabcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	familyFlag := fs.String("family", "clos", "network family (clos, slepian)")
	size := fs.String("size", "", "network size N (required)")
	fanOut := fs.String("fanout", "", "ports per edge switch n (empty = derive)")
	blocks := fs.String("blocks", "", "edge-switch count: m for clos, r for slepian (empty = derive)")
	stages := fs.String("stages", "3", "odd stage count >= 3")
	configFile := fs.String("config", "", "YAML or JSON batch of requests (overrides the single-request flags)")
	out := fs.String("out", "", "write the model chain to a .yaml/.yml/.json file")
	graph := fs.Bool("graph", false, "print the switch/link summary of every level")
	logFile := fs.String("log-file", "", "also append JSON logs to this file")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *configFile != "" && *out != "" {
		fmt.Fprintln(stderr, "Error: -out writes a single model and cannot be combined with -config")
		return 1
	}

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid log level %q: %v\n", *logLevel, err)
		return 1
	}
	logger, logCleanup, err := logging.Setup(*logFile, level)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to setup logging: %v\n", err)
		return 1
	}
	defer logCleanup()

	opts := []fabric.Option{fabric.WithLogger(logger)}

	if *configFile != "" {
		return runBatch(*configFile, opts, *graph, stdout, stderr, logger)
	}

	family, err := fabric.ParseFamily(*familyFlag)
	if err != nil {
		fmt.Fprintf(stderr, "invalid parameters: %v\n", err)
		return 1
	}
	req, err := fabric.ParseRequest(*size, *fanOut, *blocks, *stages)
	if err != nil {
		fmt.Fprintf(stderr, "invalid parameters: %v\n", err)
		return 1
	}

	m, err := fabric.Build(family, req, opts...)
	if err != nil {
		logger.Info("build rejected", "family", family, "error", err)
		fmt.Fprintf(stderr, "invalid parameters: %v\n", err)
		return 1
	}

	if err := printModel(stdout, m, *graph); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *out != "" {
		if err := report.WriteToFile(m, *out); err != nil {
			logger.Error("failed to write output file", "file", *out, "error", err)
			fmt.Fprintf(stderr, "Error writing to %s: %v\n", *out, err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote model to %s\n", *out)
	}

	return 0
}

// runBatch builds every entry of a batch file. The exit code is 1 when any
// entry failed.
func runBatch(file string, opts []fabric.Option, graph bool, stdout, stderr io.Writer, logger *slog.Logger) int {
	batch, err := config.Load(file)
	if err != nil {
		logger.Error("failed to load batch", "file", file, "error", err)
		fmt.Fprintf(stderr, "Error loading %s: %v\n", file, err)
		return 1
	}

	results := config.Run(batch, opts...)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		fmt.Fprintf(stdout, "== %s (%s) ==\n", r.Entry.Label(), r.Entry.Family)
		if r.Err != nil {
			fmt.Fprintf(stdout, "invalid parameters: %v\n", r.Err)
			continue
		}
		if err := printModel(stdout, r.Model, graph); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if failed := config.Failed(results); failed > 0 {
		logger.Warn("batch finished with failures", "failed", failed, "total", len(results))
		return 1
	}
	return 0
}

func printModel(w io.Writer, m *fabric.Model, graph bool) error {
	if err := report.WriteTable(w, m); err != nil {
		return err
	}
	if !graph {
		return nil
	}

	graphs, err := layout.All(m)
	if err != nil {
		return err
	}
	for depth, g := range graphs {
		st := g.Stats()
		fmt.Fprintf(w, "level %d: switches in=%d middle=%d (nested %d) out=%d, links=%d, crosspoints=%.2f\n",
			depth, st.InputSwitches, st.MiddleSwitches, st.NestedSwitches, st.OutputSwitches,
			st.LinkCount, st.Crosspoints)
	}

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s (valid: debug, info, warn, error)", s)
	}
}
