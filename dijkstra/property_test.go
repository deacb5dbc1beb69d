package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/dijkstra"
)

const (
	propertySeed   = 20240607
	propertyRounds = 200
	propertyNodes  = 6
)

// TestFindPath_MatchesBruteForce cross-checks every (s, e) pair of many small
// random graphs against exhaustive simple-path enumeration.
func TestFindPath_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed))

	for round := 0; round < propertyRounds; round++ {
		edges := randomEdges(rng, propertyNodes, 0.35, 9)
		if len(edges) == 0 {
			continue
		}
		pf := mustFinder(t, edges)

		for _, s := range pf.Graph().Nodes() {
			for _, e := range pf.Graph().Nodes() {
				want, reachable := bruteForceCost(edges, s.ID, e.ID)
				for _, mode := range frontiers {
					r, err := pf.Route(s.ID, e.ID, dijkstra.WithFrontier(mode))
					if !reachable {
						require.ErrorIs(t, err, dijkstra.ErrNoPath, "round %d %d→%d %s", round, s.ID, e.ID, mode)
						continue
					}
					require.NoError(t, err, "round %d %d→%d %s", round, s.ID, e.ID, mode)
					require.Equal(t, s.ID, r.Path[0])
					require.Equal(t, e.ID, r.Path[len(r.Path)-1])

					got, ok := pathCost(edges, r.Path)
					require.True(t, ok, "path %v uses a missing edge", r.Path)
					require.Equal(t, want, got, "round %d %d→%d %s path %v", round, s.ID, e.ID, mode, r.Path)
					require.Equal(t, want, r.Cost)
				}
			}
		}
	}
}

// TestFrontiers_IdenticalOnTies uses costs in {0,1} so that nearly every
// selection is a tie; both strategies must still agree on every path.
func TestFrontiers_IdenticalOnTies(t *testing.T) {
	rng := rand.New(rand.NewSource(propertySeed + 1))

	for round := 0; round < propertyRounds; round++ {
		edges := randomEdges(rng, 12, 0.25, 1)
		if len(edges) == 0 {
			continue
		}
		pf := mustFinder(t, edges)
		src := edges[0].From

		linear, err := pf.ShortestPaths(src, dijkstra.WithFrontier(dijkstra.FrontierLinear))
		require.NoError(t, err)
		heap, err := pf.ShortestPaths(src, dijkstra.WithFrontier(dijkstra.FrontierHeap))
		require.NoError(t, err)

		assert.Equal(t, linear.Settled, heap.Settled)
		assert.Equal(t, linear.Relaxations, heap.Relaxations)
		for _, n := range pf.Graph().Nodes() {
			lp, lerr := linear.PathTo(n.ID)
			hp, herr := heap.PathTo(n.ID)
			assert.Equal(t, lerr == nil, herr == nil)
			assert.Equal(t, lp, hp, "round %d node %d", round, n.ID)
		}
	}
}
