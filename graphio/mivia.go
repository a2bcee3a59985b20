package graphio

import (
	"bufio"
	"io"
	"os"

	"github.com/parasols-go/maxclique/graph"
)

func readMiviaWord(r *bufio.Reader) (int, error) {
	a, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	return int(a) | (int(b) << 8), nil
}

// ReadMivia reads the MIVIA binary graph format used by the VFLib/RI
// subgraph-isomorphism corpora: a little-endian 16-bit vertex count,
// followed by, per vertex, a 16-bit out-degree and that many 16-bit
// 0-indexed neighbour ids.
func ReadMivia(filename string, opts Options) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	r := bufio.NewReader(f)

	n, err := readMiviaWord(r)
	if err != nil {
		return nil, fileErr(filename, "error reading size")
	}
	g := graph.New(n, false)

	for row := 0; row < g.Size(); row++ {
		count, err := readMiviaWord(r)
		if err != nil {
			return nil, fileErr(filename, "error reading edges count")
		}

		for c := 0; c < count; c++ {
			e, err := readMiviaWord(r)
			if err != nil {
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

	if _, err := r.ReadByte(); err != io.EOF {
		return nil, fileErr(filename, "EOF not reached")
	}

	return g, nil
}
