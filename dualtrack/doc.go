// Package dualtrack implements a priority container whose elements carry a
// binary classification: each element lives on either the bare or the
// flagged track, two independent priority queues. Combined minimum and
// maximum queries compare the two tracks' local extremes in O(1), so the
// container behaves like a single queue while keeping the partition intact.
//
// Elements change classification only through the Flag and Unflag
// operations, each of which moves the current extreme of the source track to
// the other track as a pop+insert pair. There is no way to move an arbitrary
// element, since the tracks are independent heaps with no shared indexing.
//
// Tie-breaking: when both tracks hold an extreme of equal priority, every
// combined operation routes to the flagged track, on both the min and the
// max side.
//
// Basic usage:
//
//	c := dualtrack.New[job, int]()
//
//	c.Insert(job{name: "build", prio: 2}, false)
//	c.Insert(job{name: "deploy", prio: 5}, true)
//
//	next, _ := c.PeekMin()      // build: combined minimum across tracks
//	moved, _ := c.FlagMin()     // build moves to the flagged track
//	_, _ = c.UnflagMax()        // deploy moves back to the bare track
package dualtrack
