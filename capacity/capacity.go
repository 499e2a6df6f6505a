package capacity

import (
	"cmp"

	"github.com/depqueue/depq"
	"github.com/depqueue/depq/pqueue"
)

// Policy selects which extreme element is sacrificed when a full container
// admits a newcomer.
type Policy int

const (
	// EvictMax discards the current maximum to admit a strictly
	// lesser-priority newcomer.
	EvictMax Policy = iota
	// EvictMin discards the current minimum to admit a strictly
	// greater-priority newcomer.
	EvictMin
)

// Limit pairs a capacity with the eviction policy applied once it is reached.
// A Limit is an immutable value; construct a fresh one per call for ad hoc
// use.
type Limit struct {
	Capacity int
	Policy   Policy
}

// Outcome discriminates what a capacity-checked insertion did.
type Outcome int

const (
	// Fit means the element was inserted without displacing anything.
	Fit Outcome = iota
	// Evicted means the element was inserted and displaced an extreme
	// element.
	Evicted
	// Rejected means the element was not admitted and the container is
	// unchanged.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Fit:
		return "fit"
	case Evicted:
		return "evicted"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result reports the outcome of a capacity-checked insertion. Victim holds
// the displaced element and is meaningful only when Outcome is Evicted.
type Result[E any] struct {
	Outcome Outcome
	Victim  E
}

// AttemptInsert inserts e into q subject to limit. Below capacity the element
// is inserted unconditionally. At capacity the newcomer must strictly beat
// the relevant extreme under the limit's policy: equal priorities favor the
// incumbent, since admitting an equal-priority replacement gains nothing.
// A zero capacity rejects everything.
//
// AttemptInsert panics if limit.Capacity is below q's current count; shrinking
// a limit underneath a populated queue is a caller bug.
func AttemptInsert[E depq.Prioritized[P], P cmp.Ordered](q *pqueue.Queue[E, P], e E, limit Limit) Result[E] {
	if limit.Capacity < q.Len() {
		panic("capacity: limit below current count")
	}
	if q.Len() < limit.Capacity {
		q.Insert(e)
		return Result[E]{Outcome: Fit}
	}
	if limit.Capacity == 0 {
		return Result[E]{Outcome: Rejected}
	}
	switch limit.Policy {
	case EvictMax:
		hi, _ := q.PeekMax()
		if e.Priority() < hi.Priority() {
			return Result[E]{Outcome: Evicted, Victim: q.ReplaceMax(e)}
		}
	case EvictMin:
		lo, _ := q.PeekMin()
		if e.Priority() > lo.Priority() {
			return Result[E]{Outcome: Evicted, Victim: q.ReplaceMin(e)}
		}
	}
	return Result[E]{Outcome: Rejected}
}

// EvictExcess removes extreme elements under the limit's policy until q holds
// at most limit.Capacity elements. It is a no-op when q is already within
// capacity. A zero capacity drains the queue; a negative capacity panics.
func EvictExcess[E depq.Prioritized[P], P cmp.Ordered](q *pqueue.Queue[E, P], limit Limit) {
	if limit.Capacity < 0 {
		panic("capacity: negative limit")
	}
	for q.Len() > limit.Capacity {
		if limit.Policy == EvictMax {
			q.RemoveMax()
		} else {
			q.RemoveMin()
		}
	}
}
