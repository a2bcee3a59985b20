package graphio

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/parasols-go/maxclique/graph"
)

// ReadDimacs reads the standard DIMACS clique-benchmark format: comment
// lines start with 'c', a single problem line "p edge N M" gives the
// vertex count, and each "e a b" line is a 1-indexed edge.
func ReadDimacs(filename string, opts Options) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	var g *graph.Graph
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "c":
			continue
		case "p":
			if g != nil {
				return nil, fileErr(filename, "multiple problem lines")
			}
			if len(fields) < 3 {
				return nil, fileErr(filename, "malformed problem line %q", line)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fileErr(filename, "malformed vertex count %q", fields[2])
			}
			g = graph.New(n, true)
		case "e":
			if g == nil {
				return nil, fileErr(filename, "edge line before problem line")
			}
			if len(fields) < 3 {
				return nil, fileErr(filename, "malformed edge line %q", line)
			}
			a, errA := strconv.Atoi(fields[1])
			b, errB := strconv.Atoi(fields[2])
			if errA != nil || errB != nil {
				return nil, fileErr(filename, "malformed edge line %q", line)
			}
			a--
			b--
			if a < 0 || b < 0 || a >= g.Size() || b >= g.Size() {
				return nil, fileErr(filename, "edge %q out of bounds", line)
			}
			if a == b && !opts.AllowLoops {
				return nil, fileErr(filename, "line %q contains a loop on vertex %d", line, a)
			}
			g.AddEdge(a, b)
		default:
			return nil, fileErr(filename, "cannot parse line %q", line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fileErr(filename, "error reading file: %v", err)
	}
	if g == nil {
		return nil, fileErr(filename, "no problem line found")
	}

	return g, nil
}
