// Package workqueue implements the bounded, multi-producer/multi-consumer
// blocking queue of CCO subproblems described in spec.md §4.6, including
// the work-donation handshake that lets an idle worker pull unexplored
// candidates off a busy worker's current subproblem.
//
// Grounded on the source's clique/queue.hh usage as exercised by
// queue_test.cc (a bounded Queue<T> seeded by one producer, drained by
// n_threads workers, with a "want more" signal once the initial seeding
// is done) and on spec.md §4.6/§4.7's donation protocol. The original
// header was not retrieved with this pack; this is a from-scratch Go
// rendition of the documented semantics using sync.Mutex/sync.Cond, the
// idiomatic Go substitute for a condition-variable-backed bounded queue.
package workqueue

import "sync"

// Subproblem is one unit of work: a partial clique c plus the position
// vector used for progress display. The remaining candidate set itself is
// a bitset.BitSet, but workqueue is deliberately untyped over it (any) so
// it has no dependency on bitset or cco; callers type-assert.
type Subproblem struct {
	// C is the partial candidate clique accumulated so far (bitgraph
	// vertex indices).
	C []int

	// P is the remaining candidate set for this subproblem. Concretely a
	// *bitset.BitSet (runner's seeding and cco's donation both store one),
	// carried as any so workqueue need not import bitset; the runner's
	// worker loop type-asserts it back.
	P interface{}

	// Position records, for progress display, which top-level branch this
	// subproblem descends from.
	Position []int
}

// Queue is a bounded FIFO of Subproblems supporting the donation protocol
// of spec.md §4.6: enqueue blocks when full, dequeue blocks when empty
// (until closed), and initialProducerDone + an empty/near-empty queue is
// what want_donations() signals to consumers.
type Queue struct {
	mu   sync.Mutex
	cond *sync.Cond

	items []Subproblem
	cap   int

	seederDone    bool
	donationsOut  int  // donations currently in flight (reserved via BeginDonation, not yet Enqueued)
	expectedConsumers int
}

// New creates a Queue with the given bounded capacity and the number of
// consumers the seeder expects to eventually serve (used only to size the
// want-donations threshold).
func New(capacity, expectedConsumers int) *Queue {
	q := &Queue{
		items:             make([]Subproblem, 0, capacity),
		cap:               capacity,
		expectedConsumers: expectedConsumers,
	}
	q.cond = sync.NewCond(&q.mu)

	return q
}

// Enqueue pushes item, blocking while the queue is full.
func (q *Queue) Enqueue(item Subproblem) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) >= q.cap {
		q.cond.Wait()
	}
	q.items = append(q.items, item)
	q.cond.Broadcast()
}

// EnqueueSeed is the initial-producer variant used by the runner's seeding
// phase: semantically identical to Enqueue, named separately to mirror
// spec.md §4.6's enqueue_blocking(item, expected_consumers) and to make
// seeding call sites self-documenting.
func (q *Queue) EnqueueSeed(item Subproblem) {
	q.Enqueue(item)
}

// DequeueBlocking pops the head item, blocking until one is available or
// the queue is permanently closed (ErrClosed semantics via the bool
// return). Returns ok=false exactly once the queue has closed: the seeder
// is done, no donations are in flight, and the queue is empty.
func (q *Queue) DequeueBlocking() (Subproblem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closedLocked() {
			return Subproblem{}, false
		}
		q.cond.Wait()
	}

	item := q.items[0]
	q.items = q.items[1:]
	q.cond.Broadcast()

	return item, true
}

func (q *Queue) closedLocked() bool {
	return q.seederDone && q.donationsOut == 0 && len(q.items) == 0
}

// InitialProducerDone marks the seeder finished; the queue transitions
// into donation mode and will close once drained with no donations in
// flight.
func (q *Queue) InitialProducerDone() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.seederDone = true
	q.cond.Broadcast()
}

// WantDonations reports whether the queue is near empty and consumers
// should consider splitting their current subproblem. This is only ever a
// hint: donation is never required for correctness (spec.md §4.6).
func (q *Queue) WantDonations() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.seederDone && len(q.items) < q.expectedConsumers
}

// BeginDonation reserves a donation slot, preventing the queue from
// reporting closed while the donor is still preparing the item it intends
// to enqueue. Pair with either EndDonation (donor decided not to donate
// after all) or Donate (commits the item).
func (q *Queue) BeginDonation() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.donationsOut++
}

// EndDonation releases a reservation made with BeginDonation without
// enqueueing anything.
func (q *Queue) EndDonation() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.donationsOut--
	q.cond.Broadcast()
}

// Donate enqueues a donated subproblem and releases the reservation made
// with BeginDonation, as a single atomic step so no other consumer can
// observe a momentarily-closed queue in between.
func (q *Queue) Donate(item Subproblem) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) >= q.cap {
		q.cond.Wait()
	}
	q.items = append(q.items, item)
	q.donationsOut--
	q.cond.Broadcast()
}
