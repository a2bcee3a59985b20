package cco

import "github.com/parasols-go/maxclique/graph"

// Naive is the unoptimised reference max-clique search used as a
// correctness oracle (spec.md §8 Invariant 1: size(V(G)) == size(naive(G))
// on every graph with n ≤ 20). It has no colour bound, no bitsets, and no
// concurrency — just vector intersection, mirroring the source's
// clique/naive_max_clique.cc bit for bit.
func Naive(g *graph.Graph) (size int, members []int) {
	c := make([]int, 0, g.Size())
	p := make([]int, g.Size())
	for i := range p {
		p[i] = i
	}

	best := 0
	var bestMembers []int

	var expand func(c, p []int)
	expand = func(c, p []int) {
		for i := len(p) - 1; i >= 0; i-- {
			if len(c)+len(p) <= best {
				return
			}

			v := p[i]
			c = append(c, v)

			newP := make([]int, 0, len(p))
			for _, w := range p {
				if g.Adjacent(v, w) {
					newP = append(newP, w)
				}
			}

			if len(newP) == 0 {
				if len(c) > best {
					best = len(c)
					bestMembers = append([]int(nil), c...)
				}
			} else {
				expand(c, newP)
			}

			c = c[:len(c)-1]
			p = p[:i]
		}
	}

	expand(c, p)

	return best, bestMembers
}
