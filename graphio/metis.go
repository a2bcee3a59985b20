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
	metisCommentRe = regexp.MustCompile(`^%.*$`)
	metisProblemRe = regexp.MustCompile(`^(\d+)\s+(\d+)(?:\s+(\d+)(?:\s+(\d+))?)?$`)
)

// ReadMetis reads the METIS graph format: comment lines start with '%',
// a problem line gives "N M [fmt [ncon]]" (only fmt 0/1 and ncon 0 are
// supported), and each of the following N lines lists the 1-indexed
// neighbours of that row's vertex (weighted-edge format interleaves a
// weight after each neighbour, which is skipped).
func ReadMetis(filename string, opts Options) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	var g *graph.Graph
	weighted := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if metisCommentRe.MatchString(line) {
			continue
		}

		m := metisProblemRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fileErr(filename, "could not parse first line")
		}
		n, _ := strconv.Atoi(m[1])
		g = graph.New(n, true)

		if m[3] != "" {
			switch m[3] {
			case "1":
				weighted = true
			case "0":
			default:
				return nil, fileErr(filename, "unsupported fmt %s is not 0 or 1", m[3])
			}
		}
		if m[4] != "" && m[4] != "0" {
			return nil, fileErr(filename, "unsupported ncon %s is not 0", m[4])
		}
		break
	}
	if g == nil {
		return nil, fileErr(filename, "no problem line found")
	}

	row := 0
	for scanner.Scan() {
		line := scanner.Text()
		if metisCommentRe.MatchString(strings.TrimSpace(line)) {
			continue
		}

		row++
		fields := strings.Fields(line)
		for i := 0; i < len(fields); i++ {
			e, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fileErr(filename, "bad edges line")
			}
			if e > g.Size() || e < 1 {
				return nil, fileErr(filename, "bad edge destination")
			}
			if e == row && !opts.AllowLoops {
				return nil, fileErr(filename, "loop detected")
			}
			g.AddEdge(row-1, e-1)
			if weighted {
				i++
			}
		}

		if row == g.Size() {
			break
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !metisCommentRe.MatchString(line) {
			return nil, fileErr(filename, "trailing non-empty lines")
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fileErr(filename, "error reading file: %v", err)
	}
	if row != g.Size() {
		return nil, fileErr(filename, "not enough lines read")
	}

	return g, nil
}
