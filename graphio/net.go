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
	netCommentRe     = regexp.MustCompile(`^(%.*)?$`)
	netProblemRe     = regexp.MustCompile(`^\*\s*Vertices\s+(\d+)`)
	netDescriptionRe = regexp.MustCompile(`^\d+\s+".*"$`)
	netArcsRe        = regexp.MustCompile(`^\*\s*Arcslist`)
	netEdgeStartRe   = regexp.MustCompile(`^\*\s*Edgeslist`)
)

// ReadNet reads the Pajek .net format: a "*Vertices N" header (comments
// and vertex-description lines may appear around it), followed by an
// "*Edgeslist" section, or an "*Arcslist" section read the same way, of
// "from to1 to2 ..." adjacency lines. Vertex numbers are 1-indexed in the
// file.
func ReadNet(filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	var g *graph.Graph
	scanner := bufio.NewScanner(f)

header:
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		switch {
		case netCommentRe.MatchString(line):
			continue
		case netDescriptionRe.MatchString(line):
			continue
		case netProblemRe.MatchString(line):
			if g != nil {
				return nil, fileErr(filename, "multiple '*Vertices' lines encountered")
			}
			m := netProblemRe.FindStringSubmatch(line)
			n, _ := strconv.Atoi(m[1])
			g = graph.New(n, true)
		case netEdgeStartRe.MatchString(line) || netArcsRe.MatchString(line):
			break header
		default:
			return nil, fileErr(filename, "cannot parse line %q", line)
		}
	}

	if g == nil {
		g = graph.New(0, true)
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		f0, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fileErr(filename, "cannot parse edge line %q", line)
		}
		f0--
		if f0 < 0 || f0 >= g.Size() {
			return nil, fileErr(filename, "invalid f value")
		}

		for _, tok := range fields[1:] {
			t, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fileErr(filename, "cannot parse edge line %q", line)
			}
			t--
			if t < 0 || t >= g.Size() || t == f0 {
				return nil, fileErr(filename, "invalid t value %d (%d, %d)", t, f0, g.Size())
			}
			g.AddEdge(f0, t)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fileErr(filename, "error reading file: %v", err)
	}

	return g, nil
}
