package graphio

import (
	"bufio"
	"os"
	"strings"

	"github.com/parasols-go/maxclique/graph"
)

// ReadAdj reads a bracketed 0/1 adjacency-matrix format, e.g.
// "[ [ 0, 1, 0 ], [ 1, 0, 1 ], [ 0, 1, 0 ] ]": tokens are whitespace-
// separated (a bracket must stand apart from the cells beside it), each
// inner bracketed list is one row of the matrix, one token per column, and
// the matrix must be square with no diagonal entry set.
func ReadAdj(filename string) (*graph.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fileErr(filename, "unable to open file")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)

	var g *graph.Graph
	depth := 0
	row := 0
	var rowValues []int

	for scanner.Scan() {
		word := scanner.Text()

		switch {
		case word == "[":
			depth++
		case word == "]" || word == "],":
			depth--
			if depth < 0 {
				return nil, fileErr(filename, "too many close brackets")
			}

			if row == 0 && g == nil {
				g = graph.New(len(rowValues), true)
			}

			if depth == 1 {
				if g == nil || len(rowValues) != g.Size() {
					return nil, fileErr(filename, "bad row length")
				}
				for i := 0; i < g.Size(); i++ {
					if rowValues[i] != 0 {
						if i == row {
							return nil, fileErr(filename, "loop detected")
						}
						g.AddEdge(row, i)
					}
				}
				rowValues = nil
				row++
			}
		default:
			token := strings.TrimSuffix(word, ",")
			switch token {
			case "0":
				rowValues = append(rowValues, 0)
			case "1":
				rowValues = append(rowValues, 1)
			case "":
			default:
				return nil, fileErr(filename, "unexpected token %q", token)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fileErr(filename, "error reading file: %v", err)
	}
	if g == nil {
		return nil, fileErr(filename, "couldn't finish reading file")
	}
	if depth != 0 || row != g.Size() || len(rowValues) != 0 {
		return nil, fileErr(filename, "couldn't finish reading file")
	}

	return g, nil
}
