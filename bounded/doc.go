// Package bounded implements a priority container with a fixed capacity.
// After every operation the element count is at most the capacity chosen at
// construction: when a newcomer arrives at a full queue, the capacity
// package's eviction policy decides whether it displaces the relevant
// extreme element or is rejected.
//
// A bounded queue with the EvictMax policy keeps the capacity lowest-priority
// elements seen so far; with EvictMin it keeps the highest. This makes it a
// natural top-k / bottom-k accumulator over a stream of elements.
//
// Basic usage:
//
//	q := bounded.New[job, int](capacity.Limit{
//	    Capacity: 3,
//	    Policy:   capacity.EvictMax,
//	})
//
//	for _, j := range incoming {
//	    res := q.Insert(j)
//	    if res.Outcome == capacity.Evicted {
//	        recycle(res.Victim)
//	    }
//	}
//
// Bulk construction via From admits the whole sequence first and then evicts
// down to capacity, so a sequence longer than the capacity keeps only the
// capacity-best elements under the chosen policy.
package bounded
