package dualtrack

import (
	"cmp"
	"iter"

	"github.com/depqueue/depq"
	"github.com/depqueue/depq/pqueue"
)

// Container partitions elements into two independent priority tracks, bare
// and flagged, while answering combined min/max queries in O(1) by comparing
// the two tracks' local extremes. Every element resides in exactly one track;
// moving between tracks happens only through the explicit Flag and Unflag
// operations, which always move the current extreme of the source track.
type Container[E depq.Prioritized[P], P cmp.Ordered] struct {
	bare    *pqueue.Queue[E, P]
	flagged *pqueue.Queue[E, P]
}

// New creates an empty container.
func New[E depq.Prioritized[P], P cmp.Ordered]() *Container[E, P] {
	return &Container[E, P]{
		bare:    pqueue.New[E, P](),
		flagged: pqueue.New[E, P](),
	}
}

// Len returns the combined number of elements across both tracks.
func (c *Container[E, P]) Len() int {
	return c.bare.Len() + c.flagged.Len()
}

// IsEmpty reports whether both tracks are empty.
func (c *Container[E, P]) IsEmpty() bool {
	return c.bare.IsEmpty() && c.flagged.IsEmpty()
}

// Insert adds e to the flagged track when flagged is true, otherwise to the
// bare track.
func (c *Container[E, P]) Insert(e E, flagged bool) {
	if flagged {
		c.flagged.Insert(e)
		return
	}
	c.bare.Insert(e)
}

// Bare returns the bare track as a queue view. Mutating it directly bypasses
// the container's track accounting; intended for cross-container algorithms
// and tests.
func (c *Container[E, P]) Bare() *pqueue.Queue[E, P] {
	return c.bare
}

// Flagged returns the flagged track as a queue view.
func (c *Container[E, P]) Flagged() *pqueue.Queue[E, P] {
	return c.flagged
}

// routeMin picks the track holding the combined minimum. Equal-priority ties
// route to the flagged track.
func (c *Container[E, P]) routeMin() *pqueue.Queue[E, P] {
	fm, ok := c.flagged.PeekMin()
	if !ok {
		return c.bare
	}
	bm, ok := c.bare.PeekMin()
	if !ok || bm.Priority() >= fm.Priority() {
		return c.flagged
	}
	return c.bare
}

// routeMax picks the track holding the combined maximum. Equal-priority ties
// route to the flagged track.
func (c *Container[E, P]) routeMax() *pqueue.Queue[E, P] {
	fm, ok := c.flagged.PeekMax()
	if !ok {
		return c.bare
	}
	bm, ok := c.bare.PeekMax()
	if !ok || bm.Priority() <= fm.Priority() {
		return c.flagged
	}
	return c.bare
}

// PeekMin returns the combined minimum-priority element without removing it.
func (c *Container[E, P]) PeekMin() (E, bool) {
	return c.routeMin().PeekMin()
}

// PeekMax returns the combined maximum-priority element without removing it.
func (c *Container[E, P]) PeekMax() (E, bool) {
	return c.routeMax().PeekMax()
}

// PopMin removes and returns the combined minimum-priority element.
func (c *Container[E, P]) PopMin() (E, bool) {
	return c.routeMin().PopMin()
}

// PopMax removes and returns the combined maximum-priority element.
func (c *Container[E, P]) PopMax() (E, bool) {
	return c.routeMax().PopMax()
}

// RemoveMin removes and returns the combined minimum-priority element. It
// panics if the container is empty.
func (c *Container[E, P]) RemoveMin() E {
	if c.IsEmpty() {
		panic("dualtrack: remove from empty container")
	}
	return c.routeMin().RemoveMin()
}

// RemoveMax removes and returns the combined maximum-priority element. It
// panics if the container is empty.
func (c *Container[E, P]) RemoveMax() E {
	if c.IsEmpty() {
		panic("dualtrack: remove from empty container")
	}
	return c.routeMax().RemoveMax()
}

// FlagMin moves the bare track's minimum to the flagged track and returns
// the moved element, or ok=false when the bare track is empty.
func (c *Container[E, P]) FlagMin() (E, bool) {
	e, ok := c.bare.PopMin()
	if ok {
		c.flagged.Insert(e)
	}
	return e, ok
}

// FlagMax moves the bare track's maximum to the flagged track.
func (c *Container[E, P]) FlagMax() (E, bool) {
	e, ok := c.bare.PopMax()
	if ok {
		c.flagged.Insert(e)
	}
	return e, ok
}

// UnflagMin moves the flagged track's minimum back to the bare track.
func (c *Container[E, P]) UnflagMin() (E, bool) {
	e, ok := c.flagged.PopMin()
	if ok {
		c.bare.Insert(e)
	}
	return e, ok
}

// UnflagMax moves the flagged track's maximum back to the bare track.
func (c *Container[E, P]) UnflagMax() (E, bool) {
	e, ok := c.flagged.PopMax()
	if ok {
		c.bare.Insert(e)
	}
	return e, ok
}

// All returns an iterator over every element across both tracks in
// unspecified order, for diagnostics and tests only.
func (c *Container[E, P]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range c.bare.All() {
			if !yield(e) {
				return
			}
		}
		for e := range c.flagged.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Ascending returns a snapshot-based iterator over the combined container in
// non-decreasing priority order. Ties between tracks follow the combined-min
// routing.
func (c *Container[E, P]) Ascending() iter.Seq[E] {
	return func(yield func(E) bool) {
		snapshot := c.Clone()
		for {
			e, ok := snapshot.PopMin()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Descending is the mirror of Ascending in non-increasing priority order.
func (c *Container[E, P]) Descending() iter.Seq[E] {
	return func(yield func(E) bool) {
		snapshot := c.Clone()
		for {
			e, ok := snapshot.PopMax()
			if !ok {
				return
			}
			if !yield(e) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the container, track membership
// included.
func (c *Container[E, P]) Clone() *Container[E, P] {
	return &Container[E, P]{
		bare:    c.bare.Clone(),
		flagged: c.flagged.Clone(),
	}
}
