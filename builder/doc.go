// SPDX-License-Identifier: MIT

// Package builder generates deterministic edge lists for minpath: chains,
// rings, stars, complete digraphs, grids and random sparse graphs.
//
// Constructors are composed with BuildEdges and share one resolved
// configuration (RNG, cost function, identifier base), so the same options
// and constructor order always yield the same edges:
//
//	edges, err := builder.BuildEdges(
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithCostFn(builder.UniformCostFn(1, 9))},
//		builder.Grid(4, 4),
//		builder.RandomSparse(16, 0.1),
//	)
//
// Identifiers are base+i for the i-th generated node (base defaults to 0),
// so several constructors overlay onto the same node set. An edge list cannot
// carry isolated nodes; a constructor that emits no edges leaves no trace.
package builder
