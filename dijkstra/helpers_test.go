package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/builder"
	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/dijkstra"
)

// frontiers lists every strategy; table tests run once per entry.
var frontiers = []dijkstra.FrontierMode{dijkstra.FrontierLinear, dijkstra.FrontierHeap}

// mustFinder builds a PathFinder and fails the test on error.
func mustFinder(t testing.TB, edges []core.Edge, opts ...dijkstra.Option) *dijkstra.PathFinder {
	t.Helper()
	pf, err := dijkstra.New(edges, opts...)
	require.NoError(t, err)

	return pf
}

// pathCost sums the cheapest arc between each consecutive pair of ids.
// It returns ok=false if some hop has no arc at all.
func pathCost(edges []core.Edge, path []int) (int64, bool) {
	var total int64
	for i := 1; i < len(path); i++ {
		best, found := int64(0), false
		for _, e := range edges {
			if e.From == path[i-1] && e.To == path[i] && (!found || e.Cost < best) {
				best, found = e.Cost, true
			}
		}
		if !found {
			return 0, false
		}
		total += best
	}

	return total, true
}

// bruteForceCost enumerates every simple path from s to e and returns the
// cheapest total, or ok=false if e is unreachable. Only for tiny graphs.
func bruteForceCost(edges []core.Edge, s, e int) (int64, bool) {
	adj := make(map[int][]core.Edge)
	for _, ed := range edges {
		adj[ed.From] = append(adj[ed.From], ed)
	}

	var (
		best  int64
		found bool
		onWay = map[int]bool{s: true}
	)
	var walk func(v int, acc int64)
	walk = func(v int, acc int64) {
		if v == e {
			if !found || acc < best {
				best, found = acc, true
			}
			return
		}
		for _, ed := range adj[v] {
			if onWay[ed.To] {
				continue
			}
			onWay[ed.To] = true
			walk(ed.To, acc+ed.Cost)
			onWay[ed.To] = false
		}
	}
	walk(s, 0)

	return best, found
}

// randomEdges samples a directed graph over ids 0..n-1: each ordered pair gets
// an edge with probability p and a cost in [0, maxCost].
func randomEdges(rng *rand.Rand, n int, p float64, maxCost int64) []core.Edge {
	edges, err := builder.BuildEdges([]builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithSelfLoops(),
		builder.WithCostFn(builder.UniformCostFn(0, maxCost)),
	}, builder.RandomSparse(n, p))
	if err != nil {
		panic(err)
	}

	return edges
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }
