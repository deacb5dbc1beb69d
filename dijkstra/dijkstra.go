// Package dijkstra implements single-source shortest paths over a core.Graph.
//
// The search keeps all mutable state (cost, parent, frontier membership) in a
// runner that lives for exactly one query; the graph itself is only read.
// Slices are indexed by the graph's arena slots.
//
// Loop (per query):
//
//  1. cost[start] = 0; start joins the frontier.
//  2. While the frontier is non-empty:
//     a) select the frontier node with minimum cost (ties: first discovered);
//     b) remove it (it is now settled);
//     c) for each outgoing arc (target, w): a target seen for the first time
//     joins the frontier; if cost[curr]+w < cost[target], relax it.
//
// Notes on implementation choices:
//
//   - Each node joins the frontier at most once, so the loop settles at most V
//     nodes and scans every arc at most once: O(V² + E) linear, O((V+E) log V) heap.
//   - Cost addition saturates at Inf instead of wrapping.
//   - Arcs with cost ≥ InfEdgeThreshold, and arcs leading beyond MaxDistance,
//     are ignored entirely (the target is not discovered through them).
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/minpath/core"
)

// ShortestPaths runs the search from the node identified by source and returns
// the resulting shortest-path tree.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrNodeNotFound).
//  3. With StrictWeights, no arc may have a negative cost (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² + E) with FrontierLinear, O((V + E) log V) with FrontierHeap.
//   - Space: O(V).
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Tree, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := g.Slot(source)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: start: %w", err)
	}
	if cfg.StrictWeights {
		if e, found := g.NegativeCost(); found {
			return nil, fmt.Errorf("%w: edge %d→%d cost=%d", ErrNegativeWeight, e.From, e.To, e.Cost)
		}
	}

	// 3) Run
	r := newRunner(g, cfg)
	r.init(src)
	r.process()

	return &Tree{
		g:           g,
		source:      src,
		cost:        r.cost,
		parent:      r.parent,
		Settled:     r.settled,
		Relaxations: r.relaxations,
	}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g          *core.Graph // read-only within a search
	options    Options
	cost       []int64 // slot → best-known cost from the source
	parent     []int   // slot → predecessor slot, core.NoSlot if none
	discovered []bool  // slot → has joined the frontier at some point
	frontier   frontier

	settled     int
	relaxations int
}

func newRunner(g *core.Graph, cfg Options) *runner {
	n := g.NodeCount()
	r := &runner{
		g:          g,
		options:    cfg,
		cost:       make([]int64, n),
		parent:     make([]int, n),
		discovered: make([]bool, n),
	}
	if cfg.Frontier == FrontierHeap {
		r.frontier = newHeapFrontier(r.cost, n)
	} else {
		r.frontier = newLinearFrontier(r.cost)
	}

	return r
}

// init marks every node unreached and seeds the frontier with the source.
func (r *runner) init(src int) {
	for v := range r.cost {
		r.cost[v] = Inf
		r.parent[v] = core.NoSlot
	}
	r.cost[src] = 0
	r.discovered[src] = true
	r.frontier.push(src)
}

// process drains the frontier, settling one node per iteration.
func (r *runner) process() {
	for r.frontier.len() > 0 {
		u := r.frontier.pop()
		r.settled++
		r.relax(u)
	}
}

// relax scans the outgoing arcs of u, whose cost is final when called.
func (r *runner) relax(u int) {
	du := r.cost[u]
	for _, a := range r.g.Arcs(u) {
		if a.Cost >= r.options.InfEdgeThreshold {
			continue
		}
		nd := addCost(du, a.Cost)
		if nd == Inf || nd > r.options.MaxDistance {
			continue
		}

		v := a.To
		firstSeen := !r.discovered[v]
		improved := nd < r.cost[v]
		if improved {
			r.cost[v] = nd
			r.parent[v] = u
			r.relaxations++
		}

		switch {
		case firstSeen:
			r.discovered[v] = true
			r.frontier.push(v)
		case improved:
			r.frontier.decrease(v)
		}
	}
}

// addCost returns a+b, saturating at Inf on overflow.
func addCost(a, b int64) int64 {
	if b > 0 && a > Inf-b {
		return Inf
	}

	return a + b
}
