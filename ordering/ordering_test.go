package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/graph"
	"github.com/parasols-go/maxclique/ordering"
)

// isPermutation checks that p is a bijection on [0, n).
func isPermutation(t *testing.T, p []int, n int) {
	t.Helper()
	require.Len(t, p, n)
	seen := make([]bool, n)
	for _, v := range p {
		require.False(t, seen[v], "vertex %d appears twice", v)
		seen[v] = true
	}
}

func pathGraph(n int) *graph.Graph {
	g := graph.New(n, false)
	for i := 0; i+1 < n; i++ {
		_ = g.AddEdge(i, i+1)
	}

	return g
}

func TestEveryOrderingIsAPermutation(t *testing.T) {
	g := pathGraph(6)
	for _, fn := range []ordering.Function{
		ordering.Degree, ordering.DegreeReverse,
		ordering.ExDegree, ordering.ExDegreeReverse,
		ordering.DynExDegree,
		ordering.MinWidth, ordering.MinWidthReverse,
		ordering.MinWidthSI, ordering.MinWidthSSI,
		ordering.None, ordering.NoneReverse,
	} {
		p := ordering.Order(g, fn)
		isPermutation(t, p, g.Size())
	}
}

func TestNoneIsIdentityAndNoneReverseIsReversed(t *testing.T) {
	g := pathGraph(5)

	require.Equal(t, []int{0, 1, 2, 3, 4}, ordering.Order(g, ordering.None))
	require.Equal(t, []int{4, 3, 2, 1, 0}, ordering.Order(g, ordering.NoneReverse))
}

func TestDegreeSortAscendingWithVertexNumberTiebreak(t *testing.T) {
	// A star: vertex 0 has degree 3, leaves 1,2,3 have degree 1.
	g := graph.New(4, false)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 2)
	_ = g.AddEdge(0, 3)

	p := ordering.Order(g, ordering.Degree)
	// Ties among degree-1 leaves break with higher vertex number first.
	require.Equal(t, []int{3, 2, 1, 0}, p)
}

func TestMinWidthDegeneracyOrderOnPath(t *testing.T) {
	// A path has degeneracy 1; min-width repeatedly strips a degree-<=1
	// endpoint, so the result is a valid degeneracy ordering (a
	// permutation where every vertex has at most one later neighbour).
	g := pathGraph(5)
	p := ordering.Order(g, ordering.MinWidth)
	isPermutation(t, p, g.Size())

	position := make([]int, g.Size())
	for i, v := range p {
		position[v] = i
	}
	for v := 0; v < g.Size(); v++ {
		laterNeighbours := 0
		for _, u := range g.Neighbours(v) {
			if position[u] > position[v] {
				laterNeighbours++
			}
		}
		require.LessOrEqual(t, laterNeighbours, 1)
	}
}
