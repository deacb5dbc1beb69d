package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/minpath/core"
)

// Tree is the result of one ShortestPaths run: best-known costs and parent
// links for every node of the graph, relative to a single source.
//
// A Tree is immutable and safe for concurrent use.
type Tree struct {
	g      *core.Graph
	source int     // slot
	cost   []int64 // slot → cost, Inf if unreachable
	parent []int   // slot → parent slot, core.NoSlot if none

	// Settled is the number of nodes removed from the frontier.
	Settled int
	// Relaxations is the number of successful cost improvements.
	Relaxations int
}

// Source returns the identifier the search started from.
func (t *Tree) Source() int { return t.g.IDOf(t.source) }

// Cost returns the minimum cost from the source to id, or Inf if unreachable.
func (t *Tree) Cost(id int) (int64, error) {
	v, err := t.g.Slot(id)
	if err != nil {
		return Inf, err
	}

	return t.cost[v], nil
}

// Reachable reports whether id exists and was reached from the source.
func (t *Tree) Reachable(id int) bool {
	v, err := t.g.Slot(id)

	return err == nil && t.cost[v] != Inf
}

// Parent returns the predecessor of id on its shortest path.
// ok is false for the source and for unreachable nodes.
func (t *Tree) Parent(id int) (parent int, ok bool, err error) {
	v, err := t.g.Slot(id)
	if err != nil {
		return 0, false, err
	}
	p := t.parent[v]
	if p == core.NoSlot {
		return 0, false, nil
	}

	return t.g.IDOf(p), true, nil
}

// PathTo reconstructs the path from the source to id as node identifiers,
// source first. It walks parent links backwards onto a stack and then
// unwinds the stack.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
//   - ErrNoPath if id was not reached; no degenerate single-node path is returned.
//   - ErrNegativeWeight if the parent links form a cycle (only possible with negative costs).
func (t *Tree) PathTo(id int) ([]int, error) {
	end, err := t.g.Slot(id)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: end: %w", err)
	}
	if t.cost[end] == Inf {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, t.Source(), id)
	}

	stack := make([]int, 0, 8)
	for v := end; v != core.NoSlot; v = t.parent[v] {
		if len(stack) == len(t.parent) {
			return nil, fmt.Errorf("%w: parent links cycle at node %d", ErrNegativeWeight, t.g.IDOf(v))
		}
		stack = append(stack, v)
	}
	if stack[len(stack)-1] != t.source {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, t.Source(), id)
	}

	path := make([]int, len(stack))
	for i := range path {
		path[i] = t.g.IDOf(stack[len(stack)-1-i])
	}

	return path, nil
}
