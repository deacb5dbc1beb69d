// Package dijkstra computes minimum-cost paths between two nodes of a directed
// core.Graph whose edge costs are non-negative integers.
//
// Overview:
//
//   - A PathFinder is built once from an edge list (New) and answers any number
//     of FindPath / Route queries. ShortestPaths exposes the full single-source
//     result as a Tree.
//   - The search is Dijkstra-style relaxation: repeatedly settle the frontier
//     node with the smallest known cost and relax its outgoing arcs.
//   - Paths are rebuilt by following parent links from the end node back to the
//     start and reversing them.
//
// Frontier strategies:
//
//   - FrontierLinear (default): a linear scan over the frontier in discovery
//     order. Simple and fast for small graphs.
//   - FrontierHeap: a container/heap min-heap keyed by (cost, discovery order)
//     with lazy decrease-key. Better asymptotics on large sparse graphs.
//
// Both strategies break cost ties in favour of the node discovered first, so
// the chosen path is identical whichever one is used.
//
// Unreachable nodes:
//
// When the end node cannot be reached from the start node, FindPath and Route
// fail with ErrNoPath. They never return a one-node "path" consisting of the
// end node alone.
//
// Negative costs:
//
// The algorithm assumes costs ≥ 0 and does not check them by default; negative
// costs give undefined (but terminating) results. WithStrictWeights turns on an
// O(E) pre-scan that fails with ErrNegativeWeight instead.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptyEdgeList: invalid construction input.
//   - ErrNodeNotFound: start or end is not in the graph.
//   - ErrNoPath: end is unreachable from start.
//   - ErrNegativeWeight: strict mode found a negative cost.
//   - ErrBadMaxDistance, ErrBadInfThreshold, ErrBadFrontier: invalid options (panic).
//
// Returned errors wrap the sentinels with context; test with errors.Is.
//
// Thread safety:
//
//   - Every query allocates its own cost/parent/frontier state; the graph is
//     only read. Concurrent queries on one PathFinder are safe.
//
// Complexity:
//
//   - Time:  O(V² + E) linear frontier, O((V + E) log V) heap frontier.
//   - Space: O(V) per query.
package dijkstra
