// Package cco implements the Configurable Clique Optimiser branch-and-bound
// core: the recursive bitset expansion that drives every max-clique (and,
// via mcs, maximum-common-induced-subgraph) search in this module.
//
// Grounded on the source's cco/cco.hh (CCOPermutations), clique/mcsa1_max_clique.cc
// (the non-bitset shape of expand), and spec.md §4.4.
package cco

import (
	"sync/atomic"

	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/bitset"
	"github.com/parasols-go/maxclique/colourise"
	"github.com/parasols-go/maxclique/incumbent"
	"github.com/parasols-go/maxclique/workqueue"
)

// Params configures one CCO search: which permutation policy orders
// colour classes, which inference strategy (if any) prunes branches, and
// the two early-exit knobs from the source's MaxCliqueParams
// (initial_bound is applied by the caller via incumbent.New;
// stop_after_finding is honoured here).
type Params struct {
	Permutation      colourise.Permutation
	Inference        Inference
	StopAfterFinding int // 0 means "unlimited" (no stop-after-finding)
}

// DefaultParams returns MCSa1-shaped defaults: no permutation reordering,
// no inference, no stop-after-finding cutoff.
func DefaultParams() Params {
	return Params{
		Permutation:      colourise.None,
		Inference:        NoInference,
		StopAfterFinding: 0,
	}
}

// Stats accumulates the per-worker counters the source's MaxCliqueResult
// merges across threads: nodes processed and donations made.
type Stats struct {
	Nodes     uint64
	Donations uint64
}

// donationSink is the minimal surface expand needs from a workqueue.Queue
// to offer up the untried tail of a branch as a new subproblem. It is an
// interface (rather than a direct *workqueue.Queue) so expand has no
// dependency on workqueue when used without a runner (e.g. from mcs, or
// in single-threaded tests).
type donationSink interface {
	WantDonations() bool
	BeginDonation()
	EndDonation()
	Donate(workqueue.Subproblem)
}

// Searcher runs one thread-local CCO search against a shared graph and
// incumbent. One Searcher is created per worker goroutine and reused
// across every subproblem that worker dequeues; its fields are the
// thread-local recursion state described in spec.md §3.
type Searcher struct {
	graph     *bitgraph.BitGraph
	params    Params
	inc       *incumbent.Incumbent
	abort     *atomic.Bool
	infer     inferer
	donations donationSink // nil disables donation

	stats Stats
}

// NewSearcher constructs a Searcher. abort may be nil, in which case the
// search never self-cancels (used by single-threaded/test callers).
// donations may be nil to disable the donation protocol.
func NewSearcher(g *bitgraph.BitGraph, params Params, inc *incumbent.Incumbent, abort *atomic.Bool, donations donationSink) *Searcher {
	return &Searcher{
		graph:     g,
		params:    params,
		inc:       inc,
		abort:     abort,
		infer:     newInferer(params.Inference, g),
		donations: donations,
	}
}

// Stats returns a snapshot of this Searcher's accumulated counters.
func (s *Searcher) Stats() Stats {
	return s.stats
}

func (s *Searcher) aborted() bool {
	return s.abort != nil && s.abort.Load()
}

// Expand is the recursive branch-and-bound step of spec.md §4.4: given the
// partial clique c and remaining candidates p, it colours p, iterates
// branches from the highest colour-bound position down, prunes against the
// shared incumbent, and recurses or records a new incumbent.
//
// c is owned by the caller across the call: Expand restores it to its
// entry state (mirrors the C++ push_back/pop_back discipline) so the same
// backing slice can be reused by the worker loop across donated
// subproblems without reallocating.
func (s *Searcher) Expand(c []int, p *bitset.BitSet) []int {
	atomic.AddUint64(&s.stats.Nodes, 1)
	if s.aborted() {
		return c
	}

	res := colourise.Colourise(s.graph, p, s.params.Permutation)

	for i := len(res.POrder) - 1; i >= 0; i-- {
		if len(c)+res.Colours[i] <= s.inc.Get() {
			return c
		}
		if s.params.StopAfterFinding > 0 && s.inc.Get() >= s.params.StopAfterFinding {
			return c
		}
		if s.aborted() {
			return c
		}

		v := res.POrder[i]
		if s.infer.skip(v, p) {
			p.Unset(v)
			continue
		}

		newP := p.Clone()
		s.graph.IntersectWithRow(v, newP)

		c = append(c, v)
		if newP.Empty() {
			if len(c) > s.inc.Get() {
				s.inc.Update(len(c), c)
			}
		} else {
			c = s.Expand(c, newP)
		}
		c = c[:len(c)-1]

		p.Unset(v)
		s.infer.reject(v, p)

		if s.donations != nil && i >= 2 && s.donations.WantDonations() {
			s.donations.BeginDonation()
			// p no longer holds exactly the untried positions [0, i): with
			// LazyGlobalDomination active, reject above can have stripped
			// further, globally-dominated vertices from p beyond v itself,
			// so tail may hold fewer than i elements. A single-element tail
			// must never be split off as its own subproblem.
			tail := p.Clone()
			if tail.PopCount() <= 1 {
				s.donations.EndDonation()
			} else {
				atomic.AddUint64(&s.stats.Donations, 1)
				s.donations.Donate(workqueue.Subproblem{
					C: append([]int(nil), c...),
					P: tail,
				})
				return c
			}
		}
	}

	return c
}
