package pqueue

import (
	"cmp"
	"iter"

	"github.com/depqueue/depq"
	"github.com/depqueue/depq/minmax"
)

// entry adapts a domain element for heap ordering. Comparisons read only the
// element's priority; the referent is carried opaquely and recovered on the
// way out. Two entries with equal priority are interchangeable.
type entry[E depq.Prioritized[P], P cmp.Ordered] struct {
	referent E
}

func lessEntry[E depq.Prioritized[P], P cmp.Ordered](a, b entry[E, P]) bool {
	return a.referent.Priority() < b.referent.Priority()
}

// Queue is a priority container over elements exposing a totally ordered
// priority. It supports O(1) access and O(log n) extraction at both the
// minimum- and maximum-priority end. Duplicate priorities are permitted.
type Queue[E depq.Prioritized[P], P cmp.Ordered] struct {
	heap *minmax.Heap[entry[E, P]]
}

// New creates an empty queue.
func New[E depq.Prioritized[P], P cmp.Ordered]() *Queue[E, P] {
	return &Queue[E, P]{heap: minmax.New(lessEntry[E, P])}
}

// From builds a queue from the given elements in O(n).
func From[E depq.Prioritized[P], P cmp.Ordered](elements iter.Seq[E]) *Queue[E, P] {
	var entries []entry[E, P]
	for e := range elements {
		entries = append(entries, entry[E, P]{referent: e})
	}
	return &Queue[E, P]{heap: minmax.From(lessEntry[E, P], entries)}
}

// Len returns the number of elements in the queue.
func (q *Queue[E, P]) Len() int {
	return q.heap.Len()
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[E, P]) IsEmpty() bool {
	return q.heap.IsEmpty()
}

// Insert adds an element to the queue.
func (q *Queue[E, P]) Insert(e E) {
	q.heap.Push(entry[E, P]{referent: e})
}

// InsertAll adds every element of the sequence to the queue.
func (q *Queue[E, P]) InsertAll(elements iter.Seq[E]) {
	for e := range elements {
		q.Insert(e)
	}
}

// PeekMin returns the minimum-priority element without removing it.
func (q *Queue[E, P]) PeekMin() (E, bool) {
	e, ok := q.heap.Min()
	return e.referent, ok
}

// PeekMax returns the maximum-priority element without removing it.
func (q *Queue[E, P]) PeekMax() (E, bool) {
	e, ok := q.heap.Max()
	return e.referent, ok
}

// PopMin removes and returns the minimum-priority element.
func (q *Queue[E, P]) PopMin() (E, bool) {
	e, ok := q.heap.PopMin()
	return e.referent, ok
}

// PopMax removes and returns the maximum-priority element.
func (q *Queue[E, P]) PopMax() (E, bool) {
	e, ok := q.heap.PopMax()
	return e.referent, ok
}

// RemoveMin removes and returns the minimum-priority element. It panics if
// the queue is empty.
func (q *Queue[E, P]) RemoveMin() E {
	e, ok := q.heap.PopMin()
	if !ok {
		panic("pqueue: remove from empty queue")
	}
	return e.referent
}

// RemoveMax removes and returns the maximum-priority element. It panics if
// the queue is empty.
func (q *Queue[E, P]) RemoveMax() E {
	e, ok := q.heap.PopMax()
	if !ok {
		panic("pqueue: remove from empty queue")
	}
	return e.referent
}

// ReplaceMin replaces the minimum-priority element with e and returns the
// prior minimum. It panics if the queue is empty.
func (q *Queue[E, P]) ReplaceMin(e E) E {
	if q.heap.IsEmpty() {
		panic("pqueue: replace on empty queue")
	}
	return q.heap.ReplaceMin(entry[E, P]{referent: e}).referent
}

// ReplaceMax replaces the maximum-priority element with e and returns the
// prior maximum. It panics if the queue is empty.
func (q *Queue[E, P]) ReplaceMax(e E) E {
	if q.heap.IsEmpty() {
		panic("pqueue: replace on empty queue")
	}
	return q.heap.ReplaceMax(entry[E, P]{referent: e}).referent
}

// All returns an iterator over every element in the queue. The order is
// unspecified; it is intended for diagnostics and tests only.
func (q *Queue[E, P]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range q.heap.All() {
			if !yield(e.referent) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the queue.
func (q *Queue[E, P]) Clone() *Queue[E, P] {
	return &Queue[E, P]{heap: q.heap.Clone()}
}
