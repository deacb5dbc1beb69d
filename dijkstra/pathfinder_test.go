package dijkstra_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
)

func TestPathFinder_WriteGraph(t *testing.T) {
	pf := mustFinder(t, []core.Edge{{From: 1, To: 2, Cost: 5}, {From: 2, To: 3, Cost: 5}, {From: 1, To: 3, Cost: 20}})

	var buf bytes.Buffer
	require.NoError(t, pf.WriteGraph(&buf))
	assert.Equal(t, "1 2 5\n1 3 20\n2 3 5\n", buf.String())

	boom := errors.New("boom")
	assert.ErrorIs(t, pf.WriteGraph(failingWriter{err: boom}), boom)
}

func TestPathFinder_NewFromGraph(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(10, 20, 2)
	g.AddEdge(20, 30, 2)

	pf, err := dijkstra.NewFromGraph(g, dijkstra.WithFrontier(dijkstra.FrontierHeap))
	require.NoError(t, err)
	assert.Same(t, g, pf.Graph())

	p, err := pf.FindPath(10, 30)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, p)
}

func TestTree_Accessors(t *testing.T) {
	pf := mustFinder(t, []core.Edge{{From: 1, To: 2, Cost: 5}, {From: 2, To: 3, Cost: 5}, {From: 1, To: 3, Cost: 20}, {From: 4, To: 1, Cost: 1}})

	tree, err := pf.ShortestPaths(1)
	require.NoError(t, err)
	assert.Equal(t, 1, tree.Source())
	assert.Equal(t, 3, tree.Settled)

	c, err := tree.Cost(3)
	require.NoError(t, err)
	assert.Equal(t, int64(10), c)

	c, err = tree.Cost(4)
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Inf, c)
	assert.False(t, tree.Reachable(4))
	assert.False(t, tree.Reachable(99))
	assert.True(t, tree.Reachable(1))

	_, err = tree.Cost(99)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	p, ok, err := tree.Parent(3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, p)

	_, ok, err = tree.Parent(1)
	require.NoError(t, err)
	assert.False(t, ok, "source has no parent")

	_, _, err = tree.Parent(99)
	assert.ErrorIs(t, err, dijkstra.ErrNodeNotFound)

	_, err = tree.PathTo(4)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestRoute_Statistics(t *testing.T) {
	pf := mustFinder(t, []core.Edge{{From: 1, To: 2, Cost: 5}, {From: 2, To: 3, Cost: 5}, {From: 1, To: 3, Cost: 20}})

	r, err := pf.Route(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, r.From)
	assert.Equal(t, 3, r.To)
	assert.Equal(t, 3, r.Settled)
	// 1→2, 1→3 (20), then 2→3 improves 3 to 10.
	assert.Equal(t, 3, r.Relaxations)
}

// TestPathFinder_ConcurrentQueries runs identical queries from many goroutines
// against one PathFinder; each must see the same answer.
func TestPathFinder_ConcurrentQueries(t *testing.T) {
	pf := mustFinder(t, []core.Edge{
		{From: 1, To: 2, Cost: 5}, {From: 2, To: 3, Cost: 5}, {From: 1, To: 3, Cost: 20},
		{From: 3, To: 4, Cost: 1}, {From: 2, To: 4, Cost: 12},
	})

	const workers = 32
	paths := make([][]int, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()
			mode := frontiers[idx%len(frontiers)]
			paths[idx], errs[idx] = pf.FindPath(1, 4, dijkstra.WithFrontier(mode))
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []int{1, 2, 3, 4}, paths[i])
	}
}
