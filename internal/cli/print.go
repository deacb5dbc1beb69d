package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minpath/core"
)

// edgeJSON is the --json shape of one edge.
type edgeJSON struct {
	From int   `json:"from"`
	To   int   `json:"to"`
	Cost int64 `json:"cost"`
}

func newPrintCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the parsed graph as an edge list",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			log := a.log.With("query_id", uuid.NewString())
			edges, err := a.loadEdges(log)
			if err != nil {
				return err
			}
			g, err := core.FromEdges(edges)
			if err != nil {
				return err
			}

			return a.printGraph(g)
		},
	}
}

func (a *app) printGraph(g *core.Graph) error {
	edges := g.Edges()
	if a.flags.json {
		out := make([]edgeJSON, len(edges))
		for i, e := range edges {
			out[i] = edgeJSON{From: e.From, To: e.To, Cost: e.Cost}
		}
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	}

	a.heading("graph (%s):", g.Stats())
	for _, e := range edges {
		if _, err := fmt.Fprintf(a.stdout, "%d %d %d\n", e.From, e.To, e.Cost); err != nil {
			return err
		}
	}

	return nil
}
