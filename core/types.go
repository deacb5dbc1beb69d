// SPDX-License-Identifier: MIT
//
// Package core defines the Graph, Node, Arc and Edge types, the sentinel
// errors of the graph store and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound   - requested node identifier does not exist.
//	ErrEmptyEdgeList  - FromEdges was called with no edges.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEmptyEdgeList indicates that a graph was requested from an empty edge list.
	ErrEmptyEdgeList = errors.New("core: edge list is empty")
)

// NoSlot marks the absence of a slot, e.g. a node without a parent.
const NoSlot = -1

// Edge is a directed (From → To) connection with an integer Cost, exactly as
// it appears in an input edge list. Edges are not symmetric.
type Edge struct {
	From int
	To   int
	Cost int64
}

// Arc is an outgoing edge stored on its source node.
// To is the arena slot of the target node.
type Arc struct {
	To   int
	Cost int64
}

// Node is a graph vertex identified by a unique integer.
//
// ID is the caller-facing identifier; Slot is the node's arena position.
// Out holds outgoing arcs in insertion order. Nodes handed out by Graph are
// snapshots; the graph keeps its own copy.
type Node struct {
	ID   int
	Slot int
	Out  []Arc
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity presizes the arena for n nodes.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the arena-backed directed graph.
//
// mu protects nodes, index and edgeCount.
type Graph struct {
	mu sync.RWMutex

	capacity  int
	nodes     []*Node     // slot → Node
	index     map[int]int // node ID → slot
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(capacity).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.nodes = make([]*Node, 0, g.capacity)
	g.index = make(map[int]int, g.capacity)

	return g
}
