// Package colourise implements San Segundo's greedy bitset colouring, the
// primitive that produces CCO's branching order and colour-class upper
// bound in a single greedy pass. Each call allocates its working bitsets,
// colour classes and result slices afresh.
//
// Grounded on the source's clique/colourise.hh (bitset overload) and on
// cco/cco.hh's CCOPermutations enum.
package colourise

import (
	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/bitset"
)

// Permutation selects how colour classes are reordered before emission.
// Reordering only affects bound tightness and branching order, never
// correctness: every policy preserves the invariant that Colours[i] is a
// valid upper bound for POrder[0..=i].
type Permutation int

const (
	// None emits colour classes as produced.
	None Permutation = iota

	// Defer1 emits all singleton colour classes before larger ones,
	// preserving relative order otherwise. Canonical non-identity policy
	// per the source's open design question (design note 9): singletons
	// contribute the most to the bound per branch and so are eliminated
	// earliest, meaning they must appear first in POrder.
	Defer1

	// RepairAll attempts, for every coloured vertex, to move it to the
	// earliest colour class it does not conflict with, before emission.
	RepairAll

	// RepairAllDefer1 is RepairAll followed by Defer1.
	RepairAllDefer1

	// RepairSelected repairs only vertices in the last two colour
	// classes (the cheapest slice of the repair to attempt).
	RepairSelected

	// RepairSelectedDefer1 is RepairSelected followed by Defer1.
	RepairSelectedDefer1
)

// Result is the output of Colourise: POrder[i] is the vertex branched on at
// position i (branched last-to-first, i.e. index len-1 is tried first by
// the caller), and Colours[i] is a non-decreasing upper bound on the
// clique size obtainable from POrder[0..=i].
type Result struct {
	POrder  []int
	Colours []int
}

// class is one colour class: the vertices assigned to it, in ascending bit
// order, as produced by the greedy sweep.
type class struct {
	vertices []int
}

// Colourise greedily colours the candidate set p against g and returns the
// branching order and colour bound, after applying perm.
func Colourise(g *bitgraph.BitGraph, p *bitset.BitSet, perm Permutation) Result {
	classes := colourClasses(g, p)

	switch perm {
	case Defer1:
		classes = defer1(classes)
	case RepairAll:
		classes = repair(g, classes, false)
	case RepairAllDefer1:
		classes = defer1(repair(g, classes, false))
	case RepairSelected:
		classes = repair(g, classes, true)
	case RepairSelectedDefer1:
		classes = defer1(repair(g, classes, true))
	}

	return emit(classes)
}

// colourClasses runs the core greedy sweep: repeatedly pick a fresh colour,
// sweep the not-yet-coloured candidates in ascending bit order, assigning
// each non-conflicting vertex to the current colour and removing its
// neighbourhood from further consideration this round.
func colourClasses(g *bitgraph.BitGraph, p *bitset.BitSet) []class {
	pLeft := p.Clone()
	var classes []class

	for !pLeft.Empty() {
		q := pLeft.Clone()
		var cur class
		for !q.Empty() {
			v := q.FirstSet()
			pLeft.Unset(v)
			q.Unset(v)
			cur.vertices = append(cur.vertices, v)
			g.IntersectWithComplementOfRow(v, q)
		}
		classes = append(classes, cur)
	}

	return classes
}

// defer1 moves every singleton class ahead of every non-singleton class,
// preserving relative order within each group.
func defer1(classes []class) []class {
	out := make([]class, 0, len(classes))
	var rest []class
	for _, c := range classes {
		if len(c.vertices) == 1 {
			out = append(out, c)
		} else {
			rest = append(rest, c)
		}
	}

	return append(out, rest...)
}

// repair attempts to move each vertex in later colour classes into the
// earliest class it does not conflict with, shrinking the number of
// classes used where possible. When selectedOnly is set, only the last two
// classes are considered for repair (the cheap variant).
func repair(g *bitgraph.BitGraph, classes []class, selectedOnly bool) []class {
	if len(classes) < 2 {
		return classes
	}

	start := 0
	if selectedOnly && len(classes) > 2 {
		start = len(classes) - 2
	}

	for ci := start; ci < len(classes); ci++ {
		var kept []int
		for _, v := range classes[ci].vertices {
			moved := false
			for cj := 0; cj < ci; cj++ {
				if !conflicts(g, v, classes[cj].vertices) {
					classes[cj].vertices = append(classes[cj].vertices, v)
					moved = true
					break
				}
			}
			if !moved {
				kept = append(kept, v)
			}
		}
		classes[ci].vertices = kept
	}

	out := classes[:0]
	for _, c := range classes {
		if len(c.vertices) > 0 {
			out = append(out, c)
		}
	}

	return out
}

func conflicts(g *bitgraph.BitGraph, v int, others []int) bool {
	for _, u := range others {
		if g.Adjacent(v, u) {
			return true
		}
	}

	return false
}

// emit flattens classes into the POrder/Colours arrays. Colours is
// non-decreasing because every vertex in colour class k contributes at
// most bound k+1 (one clique vertex per distinct colour class used so
// far), and classes are emitted in increasing colour-index order.
func emit(classes []class) Result {
	total := 0
	for _, c := range classes {
		total += len(c.vertices)
	}

	res := Result{
		POrder:  make([]int, 0, total),
		Colours: make([]int, 0, total),
	}
	for ci, c := range classes {
		for _, v := range c.vertices {
			res.POrder = append(res.POrder, v)
			res.Colours = append(res.Colours, ci+1)
		}
	}

	return res
}
