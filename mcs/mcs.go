// Package mcs solves maximum common induced subgraph by reduction to
// maximum clique: build the modular product of two graphs, where a clique
// corresponds exactly to a common induced subgraph mapping, then hand the
// product to runner.Run.
//
// Grounded on the source's graph/product.cc (modular_product/unproduct).
package mcs

import (
	"context"

	"github.com/parasols-go/maxclique/graph"
	"github.com/parasols-go/maxclique/runner"
)

// Pair is one matched vertex pair in a common subgraph mapping: vertex A
// of the first graph corresponds to vertex B of the second.
type Pair struct {
	A, B int
}

// Product builds the modular product of a and b. Product vertex (v1, v2)
// is numbered v2*a.Size()+v1. An edge joins two distinct product vertices
// (v1, v2) and (w1, w2) when v1 != w1, v2 != w2, and a's adjacency of
// (v1, w1) agrees with b's adjacency of (v2, w2) — i.e. the pair either
// extends a common edge or a common non-edge. A clique in the product is
// therefore exactly a set of vertex pairs that forms a common induced
// subgraph between a and b.
func Product(a, b *graph.Graph) *graph.Graph {
	na, nb := a.Size(), b.Size()
	g := graph.New(na*nb, false)

	for v1 := 0; v1 < na; v1++ {
		for v2 := 0; v2 < nb; v2++ {
			p1 := v2*na + v1
			for w1 := 0; w1 < na; w1++ {
				for w2 := 0; w2 < nb; w2++ {
					p2 := w2*na + w1
					if p1 >= p2 || v1 == w1 || v2 == w2 {
						continue
					}
					if a.Adjacent(v1, w1) == b.Adjacent(v2, w2) {
						g.AddEdge(p1, p2)
					}
				}
			}
		}
	}

	return g
}

// Unproduct maps a product-graph vertex back to the (v1, v2) pair of
// original-graph vertices it represents.
func Unproduct(a *graph.Graph, v int) (v1, v2 int) {
	n := a.Size()

	return v % n, v / n
}

// Solve finds a maximum common induced subgraph of a and b by running the
// full parallel runner against their modular product, then translating
// the winning clique's members back into original-vertex pairs.
func Solve(ctx context.Context, a, b *graph.Graph, params runner.Params) (int, []Pair, runner.Result, error) {
	product := Product(a, b)

	result, err := runner.Run(ctx, product, params)
	if err != nil {
		return 0, nil, runner.Result{}, err
	}

	pairs := make([]Pair, len(result.Members))
	for i, v := range result.Members {
		v1, v2 := Unproduct(a, v)
		pairs[i] = Pair{A: v1, B: v2}
	}

	return result.Size, pairs, result, nil
}
