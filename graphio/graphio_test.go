package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/parasols-go/maxclique/graphio"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestReadDimacsTriangle(t *testing.T) {
	path := writeTemp(t, "triangle.clq", "c a comment\np edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")

	g, err := graphio.ReadDimacs(path, graphio.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
	require.True(t, g.Adjacent(0, 2))
}

func TestReadDimacsRejectsOutOfBoundsEdge(t *testing.T) {
	path := writeTemp(t, "bad.clq", "p edge 2 1\ne 1 9\n")

	_, err := graphio.ReadDimacs(path, graphio.Options{})
	require.Error(t, err)
}

func TestReadPairsZeroIndexed(t *testing.T) {
	path := writeTemp(t, "pairs.txt", "3 2\n0 1\n1 2\n")

	g, err := graphio.ReadPairs(path, false, graphio.Options{})
	require.NoError(t, err)
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
}

func TestReadPairsOneIndexed(t *testing.T) {
	path := writeTemp(t, "pairs1.txt", "3 2\n1 2\n2 3\n")

	g, err := graphio.ReadPairs(path, true, graphio.Options{})
	require.NoError(t, err)
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
}

func TestReadNet(t *testing.T) {
	content := "*Vertices 3\n1 \"a\"\n2 \"b\"\n3 \"c\"\n*Edgeslist\n1 2 3\n2 3\n"
	path := writeTemp(t, "graph.net", content)

	g, err := graphio.ReadNet(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(0, 2))
	require.True(t, g.Adjacent(1, 2))
}

func TestReadMetis(t *testing.T) {
	// 3 vertices, 2 edges, unweighted: vertex 1 -- 2, vertex 2 -- 3.
	content := "3 2\n2\n1 3\n2\n"
	path := writeTemp(t, "graph.metis", content)

	g, err := graphio.ReadMetis(path, graphio.Options{})
	require.NoError(t, err)
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
}

func TestReadAdj(t *testing.T) {
	content := "[ [ 0, 1, 0 ], [ 1, 0, 1 ], [ 0, 1, 0 ] ]"
	path := writeTemp(t, "graph.adj", content)

	g, err := graphio.ReadAdj(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())
	require.True(t, g.Adjacent(0, 1))
	require.True(t, g.Adjacent(1, 2))
	require.False(t, g.Adjacent(0, 2))
}

func TestReadDispatchesByFormat(t *testing.T) {
	path := writeTemp(t, "triangle.clq", "p edge 3 3\ne 1 2\ne 2 3\ne 1 3\n")

	g, err := graphio.Read(graphio.Dimacs, path, graphio.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, g.Size())

	_, err = graphio.Read(graphio.Format("bogus"), path, graphio.Options{})
	require.Error(t, err)
}
