package cco_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/cco"
	"github.com/parasols-go/maxclique/colourise"
	"github.com/parasols-go/maxclique/graph"
	"github.com/parasols-go/maxclique/incumbent"
)

func solve(t *testing.T, g *graph.Graph, params cco.Params) (int, []int) {
	t.Helper()

	bg, err := bitgraph.New(g, nil)
	require.NoError(t, err)

	inc := incumbent.New(0, nil)
	searcher := cco.NewSearcher(bg, params, inc, &atomic.Bool{}, nil)
	searcher.Expand(nil, bg.Full())

	return inc.Get(), inc.Members()
}

func isClique(g *graph.Graph, members []int) bool {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !g.Adjacent(members[i], members[j]) {
				return false
			}
		}
	}

	return true
}

func k5() *graph.Graph {
	g := graph.New(5, false)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_ = g.AddEdge(i, j)
		}
	}

	return g
}

func cycle(n int) *graph.Graph {
	g := graph.New(n, false)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n)
	}

	return g
}

func twoDisjointTriangles() *graph.Graph {
	g := graph.New(6, false)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 5}, {3, 5}} {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}

func petersen() *graph.Graph {
	g := graph.New(10, false)
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}

func TestK5FindsAFiveClique(t *testing.T) {
	g := k5()
	size, members := solve(t, g, cco.DefaultParams())

	require.Equal(t, 5, size)
	require.Len(t, members, 5)
	require.True(t, isClique(g, members))
}

func TestC5MaxCliqueIsTwo(t *testing.T) {
	g := cycle(5)
	size, members := solve(t, g, cco.DefaultParams())

	require.Equal(t, 2, size)
	require.True(t, isClique(g, members))
}

func TestTwoDisjointTrianglesMaxCliqueIsThree(t *testing.T) {
	g := twoDisjointTriangles()
	size, members := solve(t, g, cco.DefaultParams())

	require.Equal(t, 3, size)
	require.True(t, isClique(g, members))
}

func TestPetersenMaxCliqueIsTwo(t *testing.T) {
	// The Petersen graph is triangle-free; its clique number is 2.
	g := petersen()
	size, members := solve(t, g, cco.DefaultParams())

	require.Equal(t, 2, size)
	require.True(t, isClique(g, members))
}

// TestMatchesNaiveOracle checks the colour-bounded search agrees with the
// unoptimised reference search across every permutation/inference
// combination on small graphs, per the correctness-oracle invariant.
func TestMatchesNaiveOracle(t *testing.T) {
	graphs := []*graph.Graph{k5(), cycle(5), cycle(7), twoDisjointTriangles(), petersen()}

	for _, g := range graphs {
		wantSize, _ := cco.Naive(g)

		for _, perm := range []colourise.Permutation{
			colourise.None, colourise.Defer1, colourise.RepairAll,
			colourise.RepairAllDefer1, colourise.RepairSelected, colourise.RepairSelectedDefer1,
		} {
			for _, inf := range []cco.Inference{cco.NoInference, cco.LazyGlobalDomination} {
				size, members := solve(t, g, cco.Params{Permutation: perm, Inference: inf})
				require.Equal(t, wantSize, size)
				require.True(t, isClique(g, members))
			}
		}
	}
}

func TestStopAfterFindingHaltsEarly(t *testing.T) {
	g := k5()
	size, _ := solve(t, g, cco.Params{StopAfterFinding: 3})
	require.GreaterOrEqual(t, size, 3)
}

func TestAbortFlagStopsExpansionWithoutCrashing(t *testing.T) {
	g := petersen()
	bg, err := bitgraph.New(g, nil)
	require.NoError(t, err)

	inc := incumbent.New(0, nil)
	abort := &atomic.Bool{}
	abort.Store(true)

	searcher := cco.NewSearcher(bg, cco.DefaultParams(), inc, abort, nil)
	searcher.Expand(nil, bg.Full())

	require.Equal(t, 0, inc.Get(), "an already-aborted search must not find anything")
}
