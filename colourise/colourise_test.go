package colourise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/colourise"
	"github.com/parasols-go/maxclique/graph"
)

func k5() *graph.Graph {
	g := graph.New(5, false)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			_ = g.AddEdge(i, j)
		}
	}

	return g
}

func independentSet(n int) *graph.Graph {
	return graph.New(n, false)
}

func TestColouriseK5NeedsFiveColours(t *testing.T) {
	bg, err := bitgraph.New(k5(), nil)
	require.NoError(t, err)

	res := colourise.Colourise(bg, bg.Full(), colourise.None)
	require.Len(t, res.POrder, 5)
	// A complete graph needs one colour per vertex; the bound at the last
	// position (the whole set) must equal the clique number, 5.
	require.Equal(t, 5, res.Colours[len(res.Colours)-1])
}

func TestColouriseIndependentSetUsesOneColour(t *testing.T) {
	bg, err := bitgraph.New(independentSet(6), nil)
	require.NoError(t, err)

	res := colourise.Colourise(bg, bg.Full(), colourise.None)
	for _, c := range res.Colours {
		require.Equal(t, 1, c)
	}
}

func TestColoursAreNonDecreasing(t *testing.T) {
	// Petersen graph: 3-regular, triangle-free, needs only 3 colours.
	g := graph.New(10, false)
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
	}
	for _, e := range edges {
		_ = g.AddEdge(e[0], e[1])
	}

	bg, err := bitgraph.New(g, nil)
	require.NoError(t, err)

	for _, perm := range []colourise.Permutation{
		colourise.None, colourise.Defer1,
		colourise.RepairAll, colourise.RepairAllDefer1,
		colourise.RepairSelected, colourise.RepairSelectedDefer1,
	} {
		res := colourise.Colourise(bg, bg.Full(), perm)
		require.Len(t, res.POrder, 10)

		seen := make([]bool, 10)
		prev := 0
		for i, v := range res.POrder {
			require.False(t, seen[v])
			seen[v] = true
			require.GreaterOrEqual(t, res.Colours[i], prev)
			prev = res.Colours[i]
		}
	}
}
