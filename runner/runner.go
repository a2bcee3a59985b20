// Package runner assembles graph, ordering, bitgraph, incumbent,
// workqueue and cco into the end-to-end parallel solve described in
// spec.md §4.7: reorder, build the bitset graph, seed one subproblem per
// top-level candidate, spawn a worker pool that drains the queue (donating
// work back into it when idle), watch for a timeout, and un-permute the
// winning clique back into the caller's original vertex numbering.
//
// Grounded on the source's max_clique/max_clique_params.hh and
// max_clique_result.hh for field shapes, and on
// junjiewwang-perf-analysis's pkg/parallel worker-pool idiom for the
// goroutine lifecycle.
package runner

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/parasols-go/maxclique/bitgraph"
	"github.com/parasols-go/maxclique/bitset"
	"github.com/parasols-go/maxclique/cco"
	"github.com/parasols-go/maxclique/colourise"
	"github.com/parasols-go/maxclique/graph"
	"github.com/parasols-go/maxclique/incumbent"
	"github.com/parasols-go/maxclique/internal/rlog"
	"github.com/parasols-go/maxclique/ordering"
	"github.com/parasols-go/maxclique/workqueue"
)

// Params configures one end-to-end solve. Field names and defaults mirror
// the source's MaxCliqueParams.
type Params struct {
	// InitialBound seeds the incumbent below the true answer (used by
	// callers that already know a lower bound, or that want "find
	// anything bigger than k").
	InitialBound int

	// StopAfterFinding aborts the search as soon as a clique of this size
	// is found. 0 means unlimited (the source uses
	// numeric_limits<unsigned>::max() for the same meaning).
	StopAfterFinding int

	// NThreads is the number of worker goroutines. Must be >= 1.
	NThreads int

	// SplitDepth controls how deep the initial seeding phase splits
	// subproblems before handing the rest of the search to the worker
	// pool's donation protocol. Only depth 1 (one subproblem per
	// top-level candidate) is implemented; the field is retained for API
	// compatibility with the source's tuning knob.
	SplitDepth int

	// PrintCandidates makes each worker log, at debug level, the current
	// incumbent size after every subproblem it finishes. Improvements are
	// not logged individually at the moment they are found.
	PrintCandidates bool

	// WorkDonation enables the idle-worker donation protocol. When false,
	// each seeded top-level subproblem runs to completion on a single
	// worker with no further splitting.
	WorkDonation bool

	// Timeout aborts the search after this long, if positive.
	Timeout time.Duration

	OrderFunc   ordering.Function
	Permutation colourise.Permutation
	Inference   cco.Inference
}

// DefaultParams returns single-threaded, no-timeout, no-inference
// defaults: the smallest configuration that still exercises the full
// pipeline.
func DefaultParams() Params {
	return Params{
		NThreads:    1,
		SplitDepth:  1,
		OrderFunc:   ordering.MinWidth,
		Permutation: colourise.None,
		Inference:   cco.NoInference,
	}
}

// Result reports the outcome of a solve. Field names mirror the source's
// MaxCliqueResult.
type Result struct {
	RunID uuid.UUID

	// Size and Members describe the best clique found, with Members given
	// as original (pre-reordering) vertex indices, in the order the search
	// added them to the clique (not sorted).
	Size    int
	Members []int

	Nodes     uint64
	Donations uint64

	// Times holds the total wall-clock time first, followed by each
	// worker's individual wall-clock time.
	Times []time.Duration

	TopNodesDone uint64

	// Aborted is true if Timeout fired before the search completed; Size
	// and Members still hold the best clique found before the abort.
	Aborted bool
}

func (r *Result) merge(o Result) {
	r.Nodes += o.Nodes
	r.Donations += o.Donations
	r.TopNodesDone += o.TopNodesDone
	r.Times = append(r.Times, o.Times...)
}

// Run performs one full solve of g under params. ctx may carry a logger
// installed with rlog.WithLogger; every log line of the run goes through
// it, tagged with the run's RunID. The seeding count (debug level) and the
// total solve time are always logged; per-subproblem incumbent sizes are
// logged only when params.PrintCandidates is set.
func Run(ctx context.Context, g *graph.Graph, params Params) (Result, error) {
	runID := uuid.New()
	ctx = rlog.WithLogger(ctx, rlog.FromContext(ctx).With("run", runID.String()))

	logger := rlog.FromContext(ctx)
	total := rlog.NewProgress(ctx)

	if params.NThreads < 1 {
		params.NThreads = 1
	}

	perm := ordering.Order(g, params.OrderFunc)

	bg, err := bitgraph.New(g, perm)
	if err != nil {
		return Result{}, err
	}

	inc := incumbent.New(params.InitialBound, nil)
	abort := &atomic.Bool{}

	var timeoutFired atomic.Bool
	var timeoutDone chan struct{}
	if params.Timeout > 0 {
		timeoutDone = make(chan struct{})
		timer := time.NewTimer(params.Timeout)
		go func() {
			defer timer.Stop()
			select {
			case <-timer.C:
				timeoutFired.Store(true)
				abort.Store(true)
			case <-timeoutDone:
			}
		}()
	}

	queueCap := params.NThreads * 4
	if queueCap < 1 {
		queueCap = 1
	}
	queue := workqueue.New(queueCap, params.NThreads)

	var donations workqueueSink
	if params.WorkDonation {
		donations = queue
	}

	cparams := cco.Params{
		Permutation:      params.Permutation,
		Inference:        params.Inference,
		StopAfterFinding: params.StopAfterFinding,
	}

	var (
		wg           sync.WaitGroup
		resultsMu    sync.Mutex
		workerStats  []cco.Stats
		workerTimes  []time.Duration
		topNodesDone uint64
	)

	for i := 0; i < params.NThreads; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			workerStart := time.Now()

			searcher := cco.NewSearcher(bg, cparams, inc, abort, donations)
			for {
				item, ok := queue.DequeueBlocking()
				if !ok {
					break
				}

				p, _ := item.P.(*bitset.BitSet)
				c := searcher.Expand(item.C, p)

				if len(item.Position) == 1 {
					atomic.AddUint64(&topNodesDone, 1)
				}

				if params.PrintCandidates {
					if sz := inc.Get(); sz > 0 {
						logger.Debugf("worker %d: node processed at position %v, incumbent %d", worker, item.Position, sz)
					}
				}
				_ = c
			}

			resultsMu.Lock()
			workerStats = append(workerStats, searcher.Stats())
			workerTimes = append(workerTimes, time.Since(workerStart))
			resultsMu.Unlock()
		}(i)
	}

	// Workers are draining concurrently, so seeding (which blocks once the
	// bounded queue fills) cannot deadlock against an empty consumer set.
	seeded := seed(bg, inc, cparams, queue)
	logger.Debugf("seeded %d top-level subproblems", seeded)
	queue.InitialProducerDone()

	wg.Wait()
	if timeoutDone != nil {
		close(timeoutDone)
	}

	elapsed := total.Done("solve finished")

	result := Result{
		RunID:        runID,
		Size:         inc.Get(),
		Members:      unpermute(inc.Members(), perm),
		TopNodesDone: topNodesDone,
		Aborted:      timeoutFired.Load(),
		Times:        []time.Duration{elapsed},
	}
	for _, st := range workerStats {
		result.merge(Result{Nodes: st.Nodes, Donations: st.Donations})
	}
	result.Times = append(result.Times, workerTimes...)

	return result, nil
}

// workqueueSink is the concrete type satisfying cco's donationSink
// interface; declared here (rather than imported as cco.donationSink,
// which is unexported) so Run can pass queue or nil depending on
// params.WorkDonation.
type workqueueSink interface {
	WantDonations() bool
	BeginDonation()
	EndDonation()
	Donate(workqueue.Subproblem)
}

// seed builds the initial top-level subproblems: one per candidate vertex
// in colour order, from highest colour-bound position down, pruning
// against the initial incumbent exactly as a single expand() step would.
// It returns the number of subproblems seeded.
func seed(bg *bitgraph.BitGraph, inc *incumbent.Incumbent, params cco.Params, queue *workqueue.Queue) int {
	full := bg.Full()
	res := colourise.Colourise(bg, full, params.Permutation)

	// p shrinks across the loop exactly as it does inside Expand: each v's
	// subproblem is p ∩ N(v) where p no longer holds the higher-priority
	// vertices already claimed by earlier iterations.
	p := full
	n := 0
	for i := len(res.POrder) - 1; i >= 0; i-- {
		if res.Colours[i] <= inc.Get() {
			break
		}

		v := res.POrder[i]
		newP := p.Clone()
		bg.IntersectWithRow(v, newP)

		if newP.Empty() {
			// v alone is a clique: record it directly, as Expand does for
			// an empty new candidate set, rather than seeding it.
			inc.Update(1, []int{v})
		} else {
			n++
			queue.EnqueueSeed(workqueue.Subproblem{
				C:        []int{v},
				P:        newP,
				Position: []int{i},
			})
		}

		p.Unset(v)
	}

	return n
}

func unpermute(members []int, perm []int) []int {
	out := make([]int, len(members))
	for i, m := range members {
		out[i] = perm[m]
	}

	return out
}
