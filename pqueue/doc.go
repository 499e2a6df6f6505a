// Package pqueue implements a generic double-ended priority container over
// domain elements that expose a totally ordered priority. It is a thin
// policy-free layer over the minmax heap: elements are wrapped so that heap
// ordering depends only on their priority, and every other container in this
// module composes a Queue rather than talking to the heap directly.
//
// Key features:
//   - Generic over any element implementing depq.Prioritized
//   - O(1) PeekMin and PeekMax
//   - O(log n) Insert, PopMin, PopMax, RemoveMin, RemoveMax, ReplaceMin,
//     ReplaceMax
//   - O(n) bulk construction from a sequence
//   - Snapshot-based ordered traversal via Ascending and Descending
//
// Basic usage:
//
//	type job struct {
//	    name string
//	    prio int
//	}
//
//	func (j job) Priority() int { return j.prio }
//
//	q := pqueue.New[job, int]()
//	q.Insert(job{name: "backup", prio: 3})
//	q.Insert(job{name: "page", prio: 1})
//	q.Insert(job{name: "report", prio: 7})
//
//	urgent, _ := q.PopMin() // job{name: "page", prio: 1}
//	bulk, _ := q.PopMax()   // job{name: "report", prio: 7}
//
// Elements with equal priority are interchangeable for ordering purposes:
// no operation distinguishes between them beyond their payload. Pop and Peek
// return ok=false on an empty queue; the Remove and Replace variants treat an
// empty queue as a caller bug and panic.
package pqueue
