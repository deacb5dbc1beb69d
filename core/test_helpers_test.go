// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/core"
)

// Common node identifiers used across core tests.
const (
	Node1 = 1
	Node2 = 2
	Node3 = 3
	Node4 = 4
	Node9 = 9

	NodeMissing = 42
)

// Common costs (avoid magic numbers in test bodies).
const (
	Cost0  = 0
	Cost1  = 1
	Cost3  = 3
	Cost5  = 5
	Cost20 = 20
)

// Concurrency sizes.
const (
	NReaders = 50
	NRounds  = 100
)

// triangleEdges is the canonical three-node fixture:
// 1→2 (5), 2→3 (5), 1→3 (20).
func triangleEdges() []core.Edge {
	return []core.Edge{
		{From: Node1, To: Node2, Cost: Cost5},
		{From: Node2, To: Node3, Cost: Cost5},
		{From: Node1, To: Node3, Cost: Cost20},
	}
}

// mustGraph builds a graph from edges and fails the test on error.
func mustGraph(t *testing.T, edges []core.Edge) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(edges)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

// nodeIDs projects nodes onto their identifiers, preserving order.
func nodeIDs(ns []*core.Node) []int {
	out := make([]int, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}

	return out
}
