package graphio

import (
	"bufio"
	"fmt"
	"os"

	"github.com/parasols-go/maxclique/graph"
)

// LVError reports a malformed LV-format file, kept distinct from
// FileError because the source's LV reader throws its own exception type
// rather than the shared graph-file error.
type LVError struct {
	Filename string
	Message  string
}

func (e *LVError) Error() string {
	return fmt.Sprintf("error reading LV file %q: %s", e.Filename, e.Message)
}

func lvErr(filename, format string, args ...interface{}) error {
	return &LVError{Filename: filename, Message: fmt.Sprintf(format, args...)}
}

// ReadLV reads the LV format: identical layout to LAD (vertex count, then
// per-vertex degree and neighbour list), but loops are never tolerated
// and trailing whitespace-only output must be empty.
func ReadLV(filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, lvErr(filename, "unable to open file")
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
		return nil, lvErr(filename, "error reading size")
	}
	g := graph.New(n, false)

	for row := 0; row < g.Size(); row++ {
		count, ok := readInt()
		if !ok {
			return nil, lvErr(filename, "error reading edges count")
		}

		for c := 0; c < count; c++ {
			e, ok := readInt()
			if !ok {
				return nil, lvErr(filename, "error reading edges count")
			}
			if e < 0 || e >= g.Size() {
				return nil, lvErr(filename, "edge index out of bounds")
			}
			if row == e {
				return nil, lvErr(filename, "contains a loop")
			}
			g.AddEdge(row, e)
		}
	}

	if scanner.Scan() {
		return nil, lvErr(filename, "EOF not reached")
	}

	return g, nil
}
