// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: bulk construction from an edge list and read-only summaries.
// Policy:
//   - No algorithms here.
//   - Every exported function documents complexity and locking strategy.

package core

import "fmt"

// FromEdges builds a Graph from a flat list of (from, to, cost) triples.
//
// Implementation:
//   - Stage 1: Reject an empty list with ErrEmptyEdgeList.
//   - Stage 2: For each triple, in order, call AddEdge (which ensures both endpoints).
//
// Behavior highlights:
//   - Exactly one node per distinct identifier, whether it appears as source or target.
//   - Duplicate (from,to) pairs are all retained, in input order.
//   - Costs are stored as given; sign is not validated.
//
// Complexity:
//   - Time O(E), Space O(V+E).
func FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyEdgeList
	}
	if len(opts) == 0 {
		// Upper bound on distinct nodes; avoids rehashing on large inputs.
		opts = []GraphOption{WithCapacity(min(2*len(edges), 1<<16))}
	}
	g := NewGraph(opts...)
	for _, e := range edges {
		g.AddEdge(e.From, e.To, e.Cost)
	}

	return g, nil
}

// GraphStats is a read-only snapshot of catalog sizes.
type GraphStats struct {
	NodeCount    int
	EdgeCount    int
	MaxOutDegree int
	SinkCount    int // nodes with no outgoing arcs
}

// String renders the snapshot on one line for logs.
func (s GraphStats) String() string {
	return fmt.Sprintf("nodes=%d edges=%d max_out=%d sinks=%d",
		s.NodeCount, s.EdgeCount, s.MaxOutDegree, s.SinkCount)
}

// Stats produces a snapshot of the graph's size and degree profile.
//
// Complexity: O(V). Concurrency: single read lock.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{NodeCount: len(g.nodes), EdgeCount: g.edgeCount}
	for _, n := range g.nodes {
		d := len(n.Out)
		if d == 0 {
			stats.SinkCount++
		}
		if d > stats.MaxOutDegree {
			stats.MaxOutDegree = d
		}
	}

	return stats
}
