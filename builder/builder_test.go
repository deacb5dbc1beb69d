// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/builder"
	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
)

func TestPath(t *testing.T) {
	edges, err := builder.BuildEdges(nil, builder.Path(4))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 2, Cost: 1}, {From: 2, To: 3, Cost: 1}}, edges)
}

func TestCycle_BaseAndConstantCost(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithBaseID(10), builder.WithCostFn(builder.ConstantCostFn(7))}
	edges, err := builder.BuildEdges(opts, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 10, To: 11, Cost: 7}, {From: 11, To: 12, Cost: 7}, {From: 12, To: 10, Cost: 7}}, edges)
}

func TestStar_Bidirectional(t *testing.T) {
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithBidirectional()}, builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Cost: 1}, {From: 1, To: 0, Cost: 1}, {From: 0, To: 2, Cost: 1}, {From: 2, To: 0, Cost: 1}}, edges)
}

func TestComplete(t *testing.T) {
	edges, err := builder.BuildEdges(nil, builder.Complete(4))
	require.NoError(t, err)
	assert.Len(t, edges, 12)

	edges, err = builder.BuildEdges([]builder.BuilderOption{builder.WithSelfLoops()}, builder.Complete(4))
	require.NoError(t, err)
	assert.Len(t, edges, 16)
}

func TestGrid_ShortestPathIsManhattan(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.NodeCount())
	assert.Equal(t, 3*3+2*4, g.EdgeCount())

	pf, err := dijkstra.NewFromGraph(g)
	require.NoError(t, err)
	r, err := pf.Route(0, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(2+3), r.Cost)

	_, err = pf.FindPath(11, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath, "grid arcs only point right and down")
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithCostFn(builder.UniformCostFn(1, 9))}
	}
	a, err := builder.BuildEdges(opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildEdges(opts(), builder.RandomSparse(20, 0.2))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
	for _, e := range a {
		assert.NotEqual(t, e.From, e.To)
		assert.GreaterOrEqual(t, e.Cost, int64(1))
		assert.LessOrEqual(t, e.Cost, int64(9))
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	edges, err := builder.BuildEdges(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Empty(t, edges)

	edges, err = builder.BuildEdges(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Len(t, edges, 20)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		want error
	}{
		{"PathTooShort", builder.Path(1), builder.ErrTooFewNodes},
		{"CycleTooShort", builder.Cycle(1), builder.ErrTooFewNodes},
		{"StarTooSmall", builder.Star(1), builder.ErrTooFewNodes},
		{"CompleteTooSmall", builder.Complete(0), builder.ErrTooFewNodes},
		{"GridEmpty", builder.Grid(0, 3), builder.ErrTooFewNodes},
		{"SparseProbability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"SparseNeedsRNG", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"NilConstructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildEdges(nil, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuildGraph_Empty(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.RandomSparse(3, 0))
	assert.ErrorIs(t, err, core.ErrEmptyEdgeList)
}

func TestUniformCostFn(t *testing.T) {
	assert.Panics(t, func() { builder.UniformCostFn(5, 1) })
	assert.Equal(t, int64(3), builder.UniformCostFn(3, 8)(nil))
}
