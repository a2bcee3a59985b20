// Package bitgraph implements BitGraph: a fixed-width bitset adjacency
// matrix used as the solver's internal graph representation.
//
// A BitGraph is built once from a graph.Graph (after reordering) and never
// mutated again. Its defining operation is word-parallel row intersection
// (IntersectWithRow, and IntersectWithComplementOfRow for colouring). The
// branch-and-bound recursion and the greedy colouring use only these; the
// colour-repair permutation policies additionally test single edges with
// Adjacent.
package bitgraph

import (
	"errors"

	"github.com/parasols-go/maxclique/bitset"
	"github.com/parasols-go/maxclique/graph"
)

// MaxVertices is the largest graph size this module will transcode. The
// source selects a compile-time bitset width from a template ladder
// capped at 1024 words; a runtime-width bitset has no such hard ceiling,
// but an explicit cap keeps GraphTooBig meaningful and bounds memory for
// pathological inputs.
const MaxVertices = 1024 * 64

// ErrGraphTooBig is returned when a graph exceeds MaxVertices.
var ErrGraphTooBig = errors.New("bitgraph: graph too big")

// BitGraph is an n-vertex graph stored as n rows of bitset.BitSet, one per
// vertex's neighbourhood. Adjacency is symmetric; the diagonal is always
// zero (no self-loops).
type BitGraph struct {
	n    int
	rows []*bitset.BitSet
}

// New builds a BitGraph from g, using the vertex order induced by perm: row
// i of the result is the neighbourhood of original vertex perm[i],
// relabelled into 0..n-1 under perm's inverse. If perm is nil, the
// identity order is used.
func New(g *graph.Graph, perm []int) (*BitGraph, error) {
	n := g.Size()
	if n > MaxVertices {
		return nil, ErrGraphTooBig
	}
	if perm == nil {
		perm = identity(n)
	}

	inv := make([]int, n)
	for newIdx, origIdx := range perm {
		inv[origIdx] = newIdx
	}

	bg := &BitGraph{n: n, rows: make([]*bitset.BitSet, n)}
	for i := range bg.rows {
		bg.rows[i] = bitset.New(n)
	}
	for newI, origI := range perm {
		for _, origJ := range g.Neighbours(origI) {
			newJ := inv[origJ]
			bg.rows[newI].Set(newJ)
		}
	}

	return bg, nil
}

func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// Size returns the number of vertices.
func (bg *BitGraph) Size() int {
	return bg.n
}

// Row returns the (shared, read-only) neighbourhood bitset of vertex v.
// Callers must not mutate the returned set.
func (bg *BitGraph) Row(v int) *bitset.BitSet {
	return bg.rows[v]
}

// Adjacent reports whether a and b are adjacent.
func (bg *BitGraph) Adjacent(a, b int) bool {
	return bg.rows[a].Test(b)
}

// Degree returns the degree of vertex v in the bitgraph's own order.
func (bg *BitGraph) Degree(v int) int {
	return bg.rows[v].PopCount()
}

// IntersectWithRow replaces bs with bs ∩ neighbourhood(v), in place,
// word-parallel. This is the single adjacency primitive the CCO expansion
// uses to compute new candidate sets.
func (bg *BitGraph) IntersectWithRow(v int, bs *bitset.BitSet) {
	bs.IntersectWith(bg.rows[v])
}

// IntersectWithComplementOfRow replaces bs with bs ∩ ¬neighbourhood(v), in
// place, word-parallel. Used by colourise to build each colour class.
func (bg *BitGraph) IntersectWithComplementOfRow(v int, bs *bitset.BitSet) {
	bs.IntersectWithComplement(bg.rows[v])
}

// Full returns a BitSet containing every vertex 0..n-1.
func (bg *BitGraph) Full() *bitset.BitSet {
	bs := bitset.New(bg.n)
	for i := 0; i < bg.n; i++ {
		bs.Set(i)
	}

	return bs
}
