// Package capacity implements the eviction decision logic for bounded
// priority containers: given a queue, a newcomer, and a capacity limit, it
// decides whether the insertion fits, must displace an extreme element, or
// must be rejected.
//
// The decision is pure policy over the queue's O(1) peek operations; the only
// mutations are a single Insert, ReplaceMin, or ReplaceMax on the queue
// passed in. The bounded package composes this logic with a fixed limit; the
// functions here can also be applied ad hoc with a fresh Limit per call.
//
// Two policies exist:
//   - EvictMax keeps the lowest-priority side of the population: when full,
//     a newcomer is admitted only by displacing a strictly greater maximum.
//   - EvictMin keeps the highest-priority side: when full, a newcomer is
//     admitted only by displacing a strictly lesser minimum.
//
// Ties at the boundary favor the incumbent in both policies.
//
// Basic usage:
//
//	limit := capacity.Limit{Capacity: 3, Policy: capacity.EvictMax}
//
//	res := capacity.AttemptInsert(q, element, limit)
//	switch res.Outcome {
//	case capacity.Fit:
//	    // inserted, nothing displaced
//	case capacity.Evicted:
//	    // inserted, res.Victim was displaced
//	case capacity.Rejected:
//	    // not admitted, queue unchanged
//	}
package capacity
