package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
	"github.com/katalvlaran/minpath/internal/config"
	"github.com/katalvlaran/minpath/internal/metrics"
	"github.com/katalvlaran/minpath/internal/watch"
)

type findFlags struct {
	from, to     int
	frontier     string
	maxDistance  int64
	infThreshold int64
	strict       bool
	printGraph   bool
	watch        bool
}

// routeJSON is the --json shape of a resolved query.
type routeJSON struct {
	QueryID     string `json:"query_id"`
	From        int    `json:"from"`
	To          int    `json:"to"`
	Path        []int  `json:"path"`
	Cost        int64  `json:"cost"`
	Settled     int    `json:"settled"`
	Relaxations int    `json:"relaxations"`
}

func newFindCommand(a *app) *cobra.Command {
	ff := &a.find
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find the minimum-cost path between two nodes",
		Long: `Find prints the node ids of a minimum-cost path, one per line, start first.

Exit codes: 0 when a path was found, 2 when the end is unreachable,
1 for any other failure (unknown node, no usable edges, bad input).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !ff.watch {
				return a.findOnce(*ff)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.findWatch(ctx, *ff)
		},
	}

	f := cmd.Flags()
	f.IntVar(&ff.from, "from", 0, "start node id")
	f.IntVar(&ff.to, "to", 0, "end node id")
	f.StringVar(&ff.frontier, "frontier", "", "frontier strategy: linear|heap")
	f.Int64Var(&ff.maxDistance, "max-distance", 0, "ignore paths costlier than this")
	f.Int64Var(&ff.infThreshold, "inf-threshold", 0, "treat edges with cost >= this as absent")
	f.BoolVar(&ff.strict, "strict", false, "reject negative edge costs")
	f.BoolVar(&ff.printGraph, "print-graph", false, "print the parsed edge list before the path")
	f.BoolVarP(&ff.watch, "watch", "w", false, "re-run whenever the graph file changes")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// applyFindFlags copies explicitly set search flags into cfg. Commands
// without those flags are left untouched.
func applyFindFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Lookup("frontier") == nil {
		return nil
	}
	if f.Changed("frontier") {
		v, _ := f.GetString("frontier")
		cfg.Search.Frontier = v
	}
	if f.Changed("max-distance") {
		v, err := f.GetInt64("max-distance")
		if err != nil {
			return err
		}
		cfg.Search.MaxDistance = &v
	}
	if f.Changed("inf-threshold") {
		v, err := f.GetInt64("inf-threshold")
		if err != nil {
			return err
		}
		cfg.Search.InfEdgeThreshold = &v
	}
	if f.Changed("strict") {
		v, _ := f.GetBool("strict")
		cfg.Search.StrictWeights = v
	}

	return nil
}

// findWatch runs the query once and again after every change of the graph file.
// Failures of individual runs are reported but do not stop the watch.
func (a *app) findWatch(ctx context.Context, ff findFlags) error {
	if a.cfg.Graph.Path == "-" {
		return errorf(ExitFailure, "--watch needs a graph file, not stdin")
	}
	a.reportRun(a.findOnce(ff))

	return watch.File(ctx, a.cfg.Graph.Path, watch.DefaultSettle, func() {
		a.log.Info("graph file changed, re-running", "path", a.cfg.Graph.Path)
		a.reportRun(a.findOnce(ff))
	})
}

func (a *app) reportRun(err error) {
	if err != nil {
		a.paint(color.FgRed).Fprintf(a.stderr, "error: %v\n", err)
	}
}

// findOnce parses the graph, builds a path finder and answers one query.
func (a *app) findOnce(ff findFlags) error {
	queryID := uuid.NewString()
	log := a.log.With("query_id", queryID)

	edges, err := a.loadEdges(log)
	if err != nil {
		return err
	}
	opts, err := a.cfg.SearchOptions()
	if err != nil {
		return err
	}
	pf, err := dijkstra.New(edges, opts...)
	if err != nil {
		return err
	}
	stats := pf.Graph().Stats()
	a.metrics.GraphNodes.Set(float64(stats.NodeCount))
	log.Info("graph built", "stats", stats.String())

	if ff.printGraph && !a.flags.json {
		a.heading("graph (%s):", stats)
		if err := pf.WriteGraph(a.stdout); err != nil {
			return err
		}
		fmt.Fprintln(a.stdout)
	}

	start := time.Now()
	r, err := pf.Route(ff.from, ff.to)
	took := time.Since(start)
	if err != nil {
		a.metrics.ObserveQuery(classify(err), 0, took)
		log.Warn("query failed", "from", ff.from, "to", ff.to, "err", err)

		return queryError(ff, err)
	}
	a.metrics.ObserveQuery(metrics.ResultFound, r.Settled, took)
	log.Info("path found",
		"from", r.From,
		"to", r.To,
		"cost", r.Cost,
		"hops", len(r.Path)-1,
		"settled", r.Settled,
		"took", took,
	)

	return a.printRoute(queryID, r, log)
}

func (a *app) printRoute(queryID string, r *dijkstra.Route, log *slog.Logger) error {
	if a.flags.json {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(routeJSON{
			QueryID:     queryID,
			From:        r.From,
			To:          r.To,
			Path:        r.Path,
			Cost:        r.Cost,
			Settled:     r.Settled,
			Relaxations: r.Relaxations,
		})
	}

	for _, id := range r.Path {
		fmt.Fprintln(a.stdout, id)
	}
	a.paint(color.FgGreen).Fprintf(a.stderr, "cost %d, %d hop(s), %d node(s) settled\n",
		r.Cost, len(r.Path)-1, r.Settled)
	log.Debug("route printed", "path", r.Path)

	return nil
}

func classify(err error) string {
	switch {
	case errors.Is(err, dijkstra.ErrNoPath):
		return metrics.ResultNoPath
	case errors.Is(err, core.ErrNodeNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// queryError maps search errors onto exit codes.
func queryError(ff findFlags, err error) error {
	if errors.Is(err, dijkstra.ErrNoPath) {
		return &exitError{code: ExitNoPath, err: fmt.Errorf("no path from %d to %d: %w", ff.from, ff.to, err)}
	}

	return &exitError{code: ExitFailure, err: err}
}
