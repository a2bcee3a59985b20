package incumbent_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/incumbent"
)

func TestUpdateOnlyInstallsStrictImprovements(t *testing.T) {
	inc := incumbent.New(2, []int{0, 1})

	require.False(t, inc.Update(2, []int{3, 4}), "equal size must not win")
	require.Equal(t, []int{0, 1}, inc.Members())

	require.True(t, inc.Update(3, []int{0, 1, 2}))
	require.Equal(t, 3, inc.Get())
	require.Equal(t, []int{0, 1, 2}, inc.Members())

	require.False(t, inc.Update(1, []int{5}), "smaller size must not win")
	require.Equal(t, 3, inc.Get())
}

func TestMembersIsAnIndependentCopy(t *testing.T) {
	inc := incumbent.New(1, []int{7})
	members := inc.Members()
	members[0] = 99

	require.Equal(t, []int{7}, inc.Members())
}

// TestConcurrentUpdatesConvergeOnTheLargestClique launches many goroutines
// racing to install improving incumbents of strictly increasing size; the
// final state must reflect the single largest update, with a consistent
// size/members pairing.
func TestConcurrentUpdatesConvergeOnTheLargestClique(t *testing.T) {
	inc := incumbent.New(0, nil)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(n)

	for i := 1; i <= n; i++ {
		go func(size int) {
			defer wg.Done()
			members := make([]int, size)
			for j := range members {
				members[j] = j
			}
			inc.Update(size, members)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, inc.Get())
	require.Len(t, inc.Members(), n)
}
