package dijkstra

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/minpath/core"
)

// PathFinder answers minimum-cost path queries over one graph.
//
// The graph is built once and never mutated afterwards; every query keeps its
// own search state, so a PathFinder is safe for concurrent use.
type PathFinder struct {
	g        *core.Graph
	defaults []Option
}

// Route is a resolved query: the path, its total cost and search statistics.
type Route struct {
	From        int
	To          int
	Path        []int
	Cost        int64
	Settled     int
	Relaxations int
}

// New builds a PathFinder from a list of (from, to, cost) edges.
// opts become the defaults of every query; per-query options are applied after them.
//
// Returns ErrEmptyEdgeList when edges is empty.
func New(edges []core.Edge, opts ...Option) (*PathFinder, error) {
	g, err := core.FromEdges(edges)
	if err != nil {
		return nil, err
	}

	return &PathFinder{g: g, defaults: opts}, nil
}

// NewFromGraph wraps an already built graph. The caller must not add edges to
// g once queries are running.
func NewFromGraph(g *core.Graph, opts ...Option) (*PathFinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &PathFinder{g: g, defaults: opts}, nil
}

// Graph exposes the underlying graph store.
func (pf *PathFinder) Graph() *core.Graph { return pf.g }

// FindPath returns the node identifiers of a minimum-cost path from start to
// end, start first. FindPath(s, s) returns [s].
//
// Errors: ErrNodeNotFound for unknown identifiers, ErrNoPath when end is unreachable.
func (pf *PathFinder) FindPath(start, end int, opts ...Option) ([]int, error) {
	r, err := pf.Route(start, end, opts...)
	if err != nil {
		return nil, err
	}

	return r.Path, nil
}

// Route is FindPath plus the path's total cost and search statistics.
func (pf *PathFinder) Route(start, end int, opts ...Option) (*Route, error) {
	// Fail on an unknown end before spending a search on it.
	if !pf.g.HasNode(end) {
		return nil, fmt.Errorf("dijkstra: end: %w: %d", ErrNodeNotFound, end)
	}
	t, err := pf.ShortestPaths(start, opts...)
	if err != nil {
		return nil, err
	}
	path, err := t.PathTo(end)
	if err != nil {
		return nil, err
	}
	cost, _ := t.Cost(end)

	return &Route{
		From:        start,
		To:          end,
		Path:        path,
		Cost:        cost,
		Settled:     t.Settled,
		Relaxations: t.Relaxations,
	}, nil
}

// ShortestPaths runs a full single-source search from start.
func (pf *PathFinder) ShortestPaths(start int, opts ...Option) (*Tree, error) {
	all := make([]Option, 0, len(pf.defaults)+len(opts))
	all = append(all, pf.defaults...)
	all = append(all, opts...)

	return ShortestPaths(pf.g, start, all...)
}

// WriteGraph writes one "<from> <to> <cost>" line per edge, in node
// enumeration order and then arc order.
func (pf *PathFinder) WriteGraph(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range pf.g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From, e.To, e.Cost); err != nil {
			return err
		}
	}

	return bw.Flush()
}
