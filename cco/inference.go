package cco

import (
	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/bitset"
)

// Inference selects an optional propagation step layered on top of the
// core CCO recursion. Grounded on the source's
// max_clique/cco_inference.hh CCOInferer template.
type Inference int

const (
	// NoInference performs no propagation; skip always returns false and
	// reject is a no-op.
	NoInference Inference = iota

	// LazyGlobalDomination removes, when v is rejected at a branch, every
	// vertex globally dominated by v from the remaining candidate set:
	// any clique reachable without v is no better than one reached via a
	// dominator of v, so those vertices can never strictly improve on a
	// branch that already rejected v.
	LazyGlobalDomination
)

// inferer is the per-worker (thread-local) state a CCO search consults at
// every branch. newInferer constructs the concrete strategy selected by
// Inference.
type inferer interface {
	// skip reports whether v should be skipped entirely at this branch
	// (LazyGlobalDomination: v was already removed from p by some earlier
	// dominator's reject).
	skip(v int, p *bitset.BitSet) bool

	// reject is called once per branch, after "v not taken" has been
	// decided, to propagate that rejection into p.
	reject(v int, p *bitset.BitSet)
}

func newInferer(kind Inference, g *bitgraph.BitGraph) inferer {
	switch kind {
	case LazyGlobalDomination:
		return &lazyGlobalDomination{graph: g, dominated: make([]*bitset.BitSet, g.Size())}
	default:
		return noInference{}
	}
}

type noInference struct{}

func (noInference) skip(int, *bitset.BitSet) bool { return false }
func (noInference) reject(int, *bitset.BitSet)    {}

// lazyGlobalDomination memoises, per vertex v on first use, the set of
// vertices dominated by v: u such that N(u)\N(v)\{v} = ∅. Grounded
// directly on cco_inference.hh's really_propagate_no.
type lazyGlobalDomination struct {
	graph     *bitgraph.BitGraph
	dominated []*bitset.BitSet // lazily populated, nil until first use
}

func (l *lazyGlobalDomination) skip(v int, p *bitset.BitSet) bool {
	return !p.Test(v)
}

func (l *lazyGlobalDomination) reject(v int, p *bitset.BitSet) {
	if l.dominated[v] == nil {
		l.dominated[v] = l.computeDominated(v)
	}
	p.IntersectWithComplement(l.dominated[v])
}

func (l *lazyGlobalDomination) computeDominated(v int) *bitset.BitSet {
	n := l.graph.Size()
	nv := l.graph.Row(v)
	out := bitset.New(n)

	for u := 0; u < n; u++ {
		if u == v {
			continue
		}
		niv := l.graph.Row(u).Clone()
		niv.IntersectWithComplement(nv)
		niv.Unset(v)
		if niv.Empty() {
			out.Set(u)
		}
	}

	return out
}
