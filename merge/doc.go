// Package merge implements stateless algorithms over multiple independent
// priority containers: comparing two containers' extremes, popping or
// removing the global extreme from exactly one of them, and lazily merging
// the ordered traversals of any number of containers into one sequence.
//
// The two-container operations accept anything satisfying the Container
// interface (pqueue.Queue, bounded.Queue, dualtrack.Container, or a
// dual-track track view). Each mutating call touches exactly one of the two
// containers; when both are empty, the Pop variants touch neither.
//
// Tie-break defaults when both containers' extremes compare exactly equal:
//
//	Min, PopMin, RemoveMin  → first
//	Max                     → first
//	PopMax, RemoveMax       → second
//
// The mismatch between Max and PopMax/RemoveMax is deliberate: each default
// is arbitrary but fixed, chosen for deterministic behavior rather than for
// symmetry, and callers must rely only on what is documented here.
//
// Basic usage:
//
//	a := pqueue.From(slices.Values(batchA))
//	b := pqueue.From(slices.Values(batchB))
//
//	// Drain both queues in global priority order.
//	for {
//	    e, ok := merge.PopMin(a, b)
//	    if !ok {
//	        break
//	    }
//	    process(e)
//	}
//
// Ascending and Descending merge any number of containers without mutating
// them, via a tournament tree over their snapshot traversals:
//
//	for e := range merge.Ascending(ceiling, a, b, c) {
//	    process(e)
//	}
//
// where ceiling is an element whose priority orders at or above everything
// held by the containers.
package merge
