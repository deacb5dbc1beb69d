// Package minpath finds minimum-cost paths in directed, weighted graphs whose
// nodes are plain integer identifiers.
//
// 🚀 What is minpath?
//
//	A small toolkit that takes a list of (from, to, cost) edges and answers
//	"what is the cheapest way from A to B?":
//		• Graph store: arena-indexed nodes, insertion-ordered adjacency
//		• Path finder: Dijkstra with a linear or a binary-heap frontier
//		• Edge lists: text lines or YAML, malformed records skipped and reported
//		• CLI: find / print / version, JSON output, file watching, metrics
//
// Packages:
//
//	core/      - Graph, Node, Edge and the thread-safe graph store
//	dijkstra/  - PathFinder, ShortestPaths, frontier strategies
//	edgelist/  - edge list parsers (text and YAML)
//	builder/   - deterministic edge list generators
//	internal/  - config, logging, metrics, watch and the cobra command tree
//	cmd/       - the minpath binary
//
// Quick example:
//
//	pf, _ := dijkstra.New([]core.Edge{
//		{From: 1, To: 2, Cost: 5},
//		{From: 1, To: 3, Cost: 20},
//		{From: 2, To: 3, Cost: 5},
//	})
//	path, _ := pf.FindPath(1, 3) // [1 2 3], cost 10
//
// Unreachable ends are reported as dijkstra.ErrNoPath; unknown identifiers as
// core.ErrNodeNotFound.
package minpath
