package graphio

import (
	"bufio"
	"os"

	"github.com/parasols-go/maxclique/graph"
)

// ReadLad reads the LAD subgraph-isomorphism format: a vertex count, then
// per vertex a 0-indexed out-degree followed by that many neighbour ids,
// all whitespace-separated text integers.
func ReadLad(filename string, opts Options) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	readInt := func() (int, bool) {
		if !scanner.Scan() {
			return 0, false
		}
		v := 0
		for _, c := range scanner.Bytes() {
			if c < '0' || c > '9' {
				return 0, false
			}
			v = v*10 + int(c-'0')
		}

		return v, true
	}

	n, ok := readInt()
	if !ok {
		return nil, fileErr(filename, "error reading size")
	}
	g := graph.New(n, false)

	for row := 0; row < g.Size(); row++ {
		count, ok := readInt()
		if !ok {
			return nil, fileErr(filename, "error reading edges count")
		}

		for c := 0; c < count; c++ {
			e, ok := readInt()
			if !ok {
				return nil, fileErr(filename, "error reading edges count")
			}
			if e < 0 || e >= g.Size() {
				return nil, fileErr(filename, "edge index out of bounds")
			}
			if row == e && !opts.AllowLoops {
				return nil, fileErr(filename, "loop on vertex %d", row)
			}
			g.AddEdge(row, e)
		}
	}

	if scanner.Scan() {
		return nil, fileErr(filename, "EOF not reached, next text is %q", scanner.Text())
	}

	return g, nil
}
