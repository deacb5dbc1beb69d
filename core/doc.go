// Package core provides the in-memory Graph Store used by minpath: a directed,
// weighted graph over integer node identifiers, built once from an edge list
// and then shared read-only by any number of path queries.
//
// The Graph G = (V,E) is laid out as an arena:
//
//   - Nodes live in a slice; a node's position in that slice is its slot.
//   - An index map translates the caller's integer identifier to its slot.
//   - Outgoing arcs reference their target by slot, never by pointer, so the
//     structure carries no cyclic ownership and can be copied or scanned cheaply.
//
// Why an arena?
//
//   - Search algorithms keep their per-query state (cost, parent) in flat slices
//     indexed by slot, completely separate from the adjacency data.
//   - Parents are recorded as slots, so path reconstruction is an index walk.
//   - Enumeration is deterministic: nodes come back in first-seen order and
//     arcs in insertion order.
//
// Construction:
//
//	FromEdges(edges []Edge, opts ...GraphOption) (*Graph, error) // ErrEmptyEdgeList on empty input
//	NewGraph(opts ...GraphOption) *Graph
//	EnsureNode(id int) int                 // O(1) amortized, idempotent
//	AddEdge(from, to int, cost int64)      // O(1) amortized, duplicates retained
//
// Queries:
//
//	Node(id int) (*Node, error)            // ErrNodeNotFound when absent
//	Slot(id int) (int, error)              // ErrNodeNotFound when absent
//	HasNode(id int) bool
//	IDOf(slot int) int
//	Arcs(slot int) []Arc
//	Nodes() []*Node                        // first-seen order
//	Edges() []Edge                         // node order, then arc order
//	NodeCount() int, EdgeCount() int
//	NegativeCost() (Edge, bool)            // first edge with a negative cost, if any
//
// Costs:
//
// The store performs no validation of cost sign. Shortest-path search assumes
// non-negative costs; negative costs yield undefined results unless the caller
// opts into strict checking (see dijkstra.WithStrictWeights).
//
// Concurrency:
//
// A sync.RWMutex guards the arena. Mutation is expected only while the graph is
// being built; afterwards every method is a read and may run concurrently.
package core
