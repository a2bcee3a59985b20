package runner_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/graph"
	"github.com/parasols-go/maxclique/ordering"
	"github.com/parasols-go/maxclique/runner"
)

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

func TestRunSingleThreadedFindsK5(t *testing.T) {
	g := k5()
	params := runner.DefaultParams()

	result, err := runner.Run(context.Background(), g, params)
	require.NoError(t, err)
	require.Equal(t, 5, result.Size)
	require.True(t, isClique(g, result.Members))
	require.False(t, result.Aborted)
	require.NotEmpty(t, result.Times)
}

func TestRunMultiThreadedWithDonationAgreesWithSingleThreaded(t *testing.T) {
	g := k5()

	single := runner.DefaultParams()
	single.NThreads = 1

	multi := runner.DefaultParams()
	multi.NThreads = 4
	multi.WorkDonation = true

	singleResult, err := runner.Run(context.Background(), g, single)
	require.NoError(t, err)

	multiResult, err := runner.Run(context.Background(), g, multi)
	require.NoError(t, err)

	require.Equal(t, singleResult.Size, multiResult.Size)
	require.True(t, isClique(g, multiResult.Members))
}

func TestRunOnEmptyGraphFindsASingleton(t *testing.T) {
	g := graph.New(4, false)
	params := runner.DefaultParams()

	result, err := runner.Run(context.Background(), g, params)
	require.NoError(t, err)
	require.Equal(t, 1, result.Size)
	require.Len(t, result.Members, 1)
}

func TestRunOnZeroVertexGraph(t *testing.T) {
	g := graph.New(0, false)
	params := runner.DefaultParams()

	result, err := runner.Run(context.Background(), g, params)
	require.NoError(t, err)
	require.Equal(t, 0, result.Size)
	require.Empty(t, result.Members)
}

// TestTimeoutAbortsAndReturnsAValidBestSoFar runs a search with a
// one-nanosecond timeout, then checks the solve still returns without
// error and with a valid clique (so no larger than the true optimum).
// Whether the timer fires before this small search completes depends on
// goroutine scheduling, so the Aborted flag itself is not asserted.
func TestTimeoutAbortsAndReturnsAValidBestSoFar(t *testing.T) {
	const n = 40
	g := graph.New(n, false)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if (i*7+j*13)%5 != 0 {
				_ = g.AddEdge(i, j)
			}
		}
	}

	params := runner.DefaultParams()
	params.Timeout = time.Nanosecond
	params.OrderFunc = ordering.None

	result, err := runner.Run(context.Background(), g, params)
	require.NoError(t, err)
	require.True(t, isClique(g, result.Members))
}
