// Package core: Graph method implementations.
//
// Nodes are appended to the arena the first time their identifier is seen and
// are never removed. Arcs are appended to their source node and never removed.

package core

import (
	"fmt"
	"slices"
)

// EnsureNode returns the slot of the node with the given id, creating and
// registering a fresh node (no outgoing arcs) if it does not exist yet.
// Idempotent. Complexity: O(1) amortized.
func (g *Graph) EnsureNode(id int) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureLocked(id)
}

// ensureLocked is EnsureNode without locking; caller holds g.mu for writing.
func (g *Graph) ensureLocked(id int) int {
	if slot, ok := g.index[id]; ok {
		return slot
	}
	slot := len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id, Slot: slot})
	g.index[id] = slot

	return slot
}

// AddEdge resolves both endpoints via EnsureNode and appends the arc
// (to, cost) to the source node's outgoing sequence.
//
// Duplicate edges are retained; self-loops are allowed and harmless to search.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, cost int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	src := g.ensureLocked(from)
	dst := g.ensureLocked(to)
	n := g.nodes[src]
	n.Out = append(n.Out, Arc{To: dst, Cost: cost})
	g.edgeCount++
}

// HasNode reports whether a node with the given id exists.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Slot returns the arena slot of id, or ErrNodeNotFound.
func (g *Graph) Slot(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.index[id]
	if !ok {
		return NoSlot, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return slot, nil
}

// Node returns a snapshot of the node registered under id, or ErrNodeNotFound.
// The snapshot owns its Out slice; changing it does not affect the graph.
func (g *Graph) Node(id int) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[slot].clone(), nil
}

// IDOf maps an arena slot back to its node identifier.
// It panics if slot is out of range, like a slice index.
func (g *Graph) IDOf(slot int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[slot].ID
}

// Arcs returns the outgoing arcs of the node at slot.
// The slice is shared with the graph and must not be modified.
func (g *Graph) Arcs(slot int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[slot].Out
}

// Nodes returns snapshots of every node in first-seen order, as Node does.
// Complexity: O(V+E).
func (g *Graph) Nodes() []*Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Node, len(g.nodes))
	for i, n := range g.nodes {
		out[i] = n.clone()
	}

	return out
}

func (n *Node) clone() *Node {
	return &Node{ID: n.ID, Slot: n.Slot, Out: slices.Clone(n.Out)}
}

// Edges flattens the graph back into triples: node enumeration order first,
// then arc order within each node. Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, n := range g.nodes {
		for _, a := range n.Out {
			out = append(out, Edge{From: n.ID, To: g.nodes[a.To].ID, Cost: a.Cost})
		}
	}

	return out
}

// NegativeCost returns the first edge (in Edges order) whose cost is negative.
// Complexity: O(V+E).
func (g *Graph) NegativeCost() (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, n := range g.nodes {
		for _, a := range n.Out {
			if a.Cost < 0 {
				return Edge{From: n.ID, To: g.nodes[a.To].ID, Cost: a.Cost}, true
			}
		}
	}

	return Edge{}, false
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|, duplicates included.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
