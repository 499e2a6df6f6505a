package bounded

import (
	"cmp"
	"iter"

	"github.com/depqueue/depq"
	"github.com/depqueue/depq/capacity"
	"github.com/depqueue/depq/pqueue"
)

// Queue is a priority container that never exceeds a fixed capacity. It
// composes a pqueue.Queue with a capacity.Limit fixed at construction:
// insertions go through the capacity policy, everything else delegates to the
// inner queue unchanged.
type Queue[E depq.Prioritized[P], P cmp.Ordered] struct {
	inner *pqueue.Queue[E, P]
	limit capacity.Limit
}

// New creates an empty bounded queue with the given limit. It panics if the
// limit's capacity is not positive; use capacity.AttemptInsert directly for
// ad hoc zero-capacity decisions.
func New[E depq.Prioritized[P], P cmp.Ordered](limit capacity.Limit) *Queue[E, P] {
	if limit.Capacity < 1 {
		panic("bounded: capacity must be positive")
	}
	return &Queue[E, P]{
		inner: pqueue.New[E, P](),
		limit: limit,
	}
}

// From builds a bounded queue from the given elements. When the sequence
// holds more elements than the capacity, only the capacity-best elements
// under the limit's policy are kept.
func From[E depq.Prioritized[P], P cmp.Ordered](limit capacity.Limit, elements iter.Seq[E]) *Queue[E, P] {
	if limit.Capacity < 1 {
		panic("bounded: capacity must be positive")
	}
	inner := pqueue.From[E, P](elements)
	capacity.EvictExcess(inner, limit)
	return &Queue[E, P]{inner: inner, limit: limit}
}

// Cap returns the queue's fixed capacity.
func (q *Queue[E, P]) Cap() int {
	return q.limit.Capacity
}

// Policy returns the queue's eviction policy.
func (q *Queue[E, P]) Policy() capacity.Policy {
	return q.limit.Policy
}

// Len returns the number of elements in the queue.
func (q *Queue[E, P]) Len() int {
	return q.inner.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[E, P]) IsEmpty() bool {
	return q.inner.IsEmpty()
}

// Insert adds e subject to the queue's limit and reports what happened: the
// element fit, displaced an extreme element (returned as the result's
// Victim), or was rejected leaving the queue unchanged.
func (q *Queue[E, P]) Insert(e E) capacity.Result[E] {
	return capacity.AttemptInsert(q.inner, e, q.limit)
}

// PeekMin returns the minimum-priority element without removing it.
func (q *Queue[E, P]) PeekMin() (E, bool) {
	return q.inner.PeekMin()
}

// PeekMax returns the maximum-priority element without removing it.
func (q *Queue[E, P]) PeekMax() (E, bool) {
	return q.inner.PeekMax()
}

// PopMin removes and returns the minimum-priority element.
func (q *Queue[E, P]) PopMin() (E, bool) {
	return q.inner.PopMin()
}

// PopMax removes and returns the maximum-priority element.
func (q *Queue[E, P]) PopMax() (E, bool) {
	return q.inner.PopMax()
}

// RemoveMin removes and returns the minimum-priority element. It panics if
// the queue is empty.
func (q *Queue[E, P]) RemoveMin() E {
	return q.inner.RemoveMin()
}

// RemoveMax removes and returns the maximum-priority element. It panics if
// the queue is empty.
func (q *Queue[E, P]) RemoveMax() E {
	return q.inner.RemoveMax()
}

// ReplaceMin replaces the minimum-priority element with e and returns the
// prior minimum. It panics if the queue is empty.
func (q *Queue[E, P]) ReplaceMin(e E) E {
	return q.inner.ReplaceMin(e)
}

// ReplaceMax replaces the maximum-priority element with e and returns the
// prior maximum. It panics if the queue is empty.
func (q *Queue[E, P]) ReplaceMax(e E) E {
	return q.inner.ReplaceMax(e)
}

// All returns an iterator over every element in unspecified order, for
// diagnostics and tests only.
func (q *Queue[E, P]) All() iter.Seq[E] {
	return q.inner.All()
}

// Ascending returns a snapshot-based iterator in non-decreasing priority
// order.
func (q *Queue[E, P]) Ascending() iter.Seq[E] {
	return q.inner.Ascending()
}

// Descending returns a snapshot-based iterator in non-increasing priority
// order.
func (q *Queue[E, P]) Descending() iter.Seq[E] {
	return q.inner.Descending()
}

// Clone returns an independent copy of the queue sharing the same limit.
func (q *Queue[E, P]) Clone() *Queue[E, P] {
	return &Queue[E, P]{inner: q.inner.Clone(), limit: q.limit}
}
