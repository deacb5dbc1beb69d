package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/edgelist"
	"github.com/katalvlaran/minpath/internal/config"
	"github.com/katalvlaran/minpath/internal/logging"
	"github.com/katalvlaran/minpath/internal/metrics"
)

// consolePrompt is shown before reading edges interactively.
const consolePrompt = "Enter edges as <from> <to> <cost>, one per line. Edges are directed. Enter '%s' when finished.\n"

// errNoEdges: the input produced zero usable edges.
var errNoEdges = errors.New("no valid edges were read; no graph generated")

// globalFlags mirrors the persistent flags; empty means "not set".
type globalFlags struct {
	configPath  string
	graph       string
	json        bool
	noColor     bool
	logLevel    string
	logFormat   string
	metricsFile string
}

// app is the state shared by all commands of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	flags   globalFlags
	find    findFlags
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
}

// setup layers config file, environment and flags, then builds the logger and metrics.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	f := cmd.Flags()
	if f.Changed("graph") {
		cfg.Graph.Path = a.flags.graph
	}
	if f.Changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if f.Changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
	if f.Changed("metrics-file") {
		cfg.Metrics.Textfile = a.flags.metricsFile
	}
	if err := applyFindFlags(cmd, &cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(a.stderr, cfg.Logging)
	a.metrics = metrics.New()
	a.log.Debug("configuration loaded",
		"graph", cfg.Graph.Path,
		"frontier", cfg.Search.Frontier,
		"config_file", a.flags.configPath,
	)

	return nil
}

// loadEdges parses the configured graph source. Zero usable edges is an error:
// the path finder is never built for an empty graph.
func (a *app) loadEdges(log *slog.Logger) ([]core.Edge, error) {
	opts := append(a.cfg.ParseOptions(), edgelist.WithLogger(log))

	var (
		edges []core.Edge
		rep   edgelist.Report
		err   error
	)
	if a.cfg.Graph.Path == "-" {
		if !a.flags.json {
			fmt.Fprintf(a.stderr, consolePrompt, a.cfg.Graph.Terminator)
		}
		edges, rep, err = edgelist.Parse(a.stdin, opts...)
	} else {
		edges, rep, err = edgelist.ParseFile(a.cfg.Graph.Path, opts...)
	}
	if err != nil {
		return nil, err
	}
	a.metrics.ObserveParse(rep)
	log.Info("edge list parsed",
		"source", a.cfg.Graph.Path,
		"accepted", rep.Accepted,
		"skipped", len(rep.Skipped),
	)
	if len(edges) == 0 {
		return nil, &exitError{code: ExitFailure, err: errNoEdges}
	}

	return edges, nil
}

// flushMetrics writes the textfile if one is configured.
func (a *app) flushMetrics() {
	if a.metrics == nil || a.cfg.Metrics.Textfile == "" {
		return
	}
	if err := a.metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		a.log.Error("writing metrics textfile failed", "path", a.cfg.Metrics.Textfile, "err", err)
	}
}

// paint returns a color for this invocation; --no-color and --json turn it off
// without touching color.NoColor.
func (a *app) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.flags.noColor || a.flags.json {
		c.DisableColor()
	}

	return c
}

// heading prints a colored section title for human-readable output.
func (a *app) heading(format string, args ...any) {
	a.paint(color.FgCyan, color.Bold).Fprintf(a.stdout, format+"\n", args...)
}
