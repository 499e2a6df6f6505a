// Package depq provides priority-ordered containers built on a double-ended
// priority queue (min-max heap). It layers eviction policies, capacity
// enforcement, dual-classification, and multi-container merge operations on
// top of the minmax heap primitive.
//
// The module is organised as small composable packages:
//   - minmax: the generic min-max heap primitive with O(1) access to both
//     the minimum and maximum element
//   - pqueue: a priority container ordering domain elements by their priority
//   - capacity: eviction policies and capacity enforcement decisions
//   - bounded: a priority container that never exceeds a fixed capacity
//   - dualtrack: a container partitioning elements into a bare and a flagged
//     track while preserving combined min/max semantics
//   - merge: algorithms comparing and draining multiple containers
//
// Domain elements participate by implementing the Prioritized interface:
// a single accessor exposing a totally ordered priority. Ordering never
// depends on any other field, so elements with equal priority are
// interchangeable for ordering purposes.
//
// Basic usage:
//
//	type Task struct {
//	    Name string
//	    Prio int
//	}
//
//	func (t Task) Priority() int { return t.Prio }
//
//	q := pqueue.New[Task, int]()
//	q.Insert(Task{Name: "backup", Prio: 3})
//	q.Insert(Task{Name: "page", Prio: 1})
//
//	next, _ := q.PeekMin() // Task{Name: "page", Prio: 1}
//
// All containers are single-owner, single-threaded values: no operation
// blocks, performs I/O, or spawns background work. Callers must serialize
// concurrent mutation externally.
package depq
