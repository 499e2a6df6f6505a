package pqueue

import "iter"

// Ascending returns an iterator yielding the queue's elements in
// non-decreasing priority order. Each range over the sequence snapshots the
// queue and drains the private copy; the queue itself is never modified.
// Ranging again takes a fresh snapshot of the queue's then-current contents.
func (q *Queue[E, P]) Ascending() iter.Seq[E] {
	return func(yield func(E) bool) {
		snapshot := q.heap.Clone()
		for {
			e, ok := snapshot.PopMin()
			if !ok {
				return
			}
			if !yield(e.referent) {
				return
			}
		}
	}
}

// Descending is the mirror of Ascending, yielding elements in non-increasing
// priority order.
func (q *Queue[E, P]) Descending() iter.Seq[E] {
	return func(yield func(E) bool) {
		snapshot := q.heap.Clone()
		for {
			e, ok := snapshot.PopMax()
			if !ok {
				return
			}
			if !yield(e.referent) {
				return
			}
		}
	}
}
