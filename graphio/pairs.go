package graphio

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/parasols-go/maxclique/graph"
)

var (
	pairsHeaderRe = regexp.MustCompile(`^(\d+)\s+(\d+)\s*(\d+)?$`)
	pairsEdgeRe   = regexp.MustCompile(`^(\d+)(?:,|\s+)(\d+)\s*$`)
)

// ReadPairs reads a size-then-edge-list format: a first line giving the
// vertex count (optionally followed by an edge count and a third number
// on the same line, both ignored), then one "a b" or "a,b" edge per line.
// When oneIndexed is true, vertex numbers in the file start at 1.
func ReadPairs(filename string, oneIndexed bool, opts Options) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return nil, fileErr(filename, "cannot parse number of vertices")
	}
	line := scanner.Text()

	var size int
	if m := pairsHeaderRe.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
		size, _ = strconv.Atoi(m[1])
	} else {
		size, err = strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fileErr(filename, "cannot parse number of vertices")
		}
		scanner.Scan() // discard the following line, as the source does
	}

	g := graph.New(size, oneIndexed)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		m := pairsEdgeRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fileErr(filename, "cannot parse line %q", line)
		}

		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		if oneIndexed {
			a--
			b--
		}

		if a < 0 || b < 0 || a >= g.Size() || b >= g.Size() {
			return nil, fileErr(filename, "line %q edge index out of bounds", line)
		}
		if a == b && !opts.AllowLoops {
			return nil, fileErr(filename, "line %q contains a loop on vertex %d", line, a)
		}
		g.AddEdge(a, b)
	}

	if err := scanner.Err(); err != nil {
		return nil, fileErr(filename, "error reading file: %v", err)
	}

	return g, nil
}
