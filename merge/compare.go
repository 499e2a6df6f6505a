package merge

import (
	"cmp"

	"github.com/depqueue/depq"
)

// Container is the view of a priority container consumed by the algorithms
// in this package. pqueue.Queue, bounded.Queue, and dualtrack.Container all
// satisfy it.
type Container[E depq.Prioritized[P], P cmp.Ordered] interface {
	PeekMin() (E, bool)
	PeekMax() (E, bool)
	PopMin() (E, bool)
	PopMax() (E, bool)
	RemoveMin() E
	RemoveMax() E
}

// Side names which of two compared containers holds the relevant extreme.
type Side int

const (
	First Side = iota
	Second
)

func (s Side) String() string {
	switch s {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "unknown"
	}
}

// Lesser reports which container holds the strictly lesser minimum. ok is
// false when both containers are empty or their minimums compare exactly
// equal; a single empty container always loses to a populated one.
func Lesser[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (Side, bool) {
	fm, fok := first.PeekMin()
	sm, sok := second.PeekMin()
	switch {
	case !fok && !sok:
		return First, false
	case !sok:
		return First, true
	case !fok:
		return Second, true
	case fm.Priority() < sm.Priority():
		return First, true
	case sm.Priority() < fm.Priority():
		return Second, true
	default:
		return First, false
	}
}

// Greater is the max-side mirror of Lesser: it reports which container holds
// the strictly greater maximum.
func Greater[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (Side, bool) {
	fm, fok := first.PeekMax()
	sm, sok := second.PeekMax()
	switch {
	case !fok && !sok:
		return First, false
	case !sok:
		return First, true
	case !fok:
		return Second, true
	case fm.Priority() > sm.Priority():
		return First, true
	case sm.Priority() > fm.Priority():
		return Second, true
	default:
		return First, false
	}
}

// WithLesser resolves which container holds the lesser minimum, falling back
// to ifEqual when the comparison is absent (both empty or exactly equal), and
// applies op to exactly the chosen container. Mutations made by op land on
// the caller's chosen instance.
func WithLesser[E depq.Prioritized[P], P cmp.Ordered, R any](first, second Container[E, P], ifEqual Side, op func(Container[E, P]) R) R {
	side, ok := Lesser(first, second)
	if !ok {
		side = ifEqual
	}
	if side == Second {
		return op(second)
	}
	return op(first)
}

// WithGreater is the max-side mirror of WithLesser.
func WithGreater[E depq.Prioritized[P], P cmp.Ordered, R any](first, second Container[E, P], ifEqual Side, op func(Container[E, P]) R) R {
	side, ok := Greater(first, second)
	if !ok {
		side = ifEqual
	}
	if side == Second {
		return op(second)
	}
	return op(first)
}

// Min returns the smaller of the two containers' minimums without removing
// it. Equal minimums resolve to the first container.
func Min[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (E, bool) {
	side, ok := Lesser(first, second)
	if !ok {
		side = First
	}
	if side == Second {
		return second.PeekMin()
	}
	return first.PeekMin()
}

// Max returns the larger of the two containers' maximums without removing
// it. Equal maximums resolve to the first container — note the asymmetry
// with PopMax and RemoveMax, whose tie default is the second container. Both
// defaults are fixed and documented; callers must not assume they match.
func Max[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (E, bool) {
	side, ok := Greater(first, second)
	if !ok {
		side = First
	}
	if side == Second {
		return second.PeekMax()
	}
	return first.PeekMax()
}

// PopMin removes and returns the smaller of the two containers' minimums.
// Equal minimums pop from the first container. When both containers are
// empty, neither is touched and ok is false.
func PopMin[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (E, bool) {
	side, ok := Lesser(first, second)
	if !ok {
		side = First
	}
	if side == Second {
		return second.PopMin()
	}
	return first.PopMin()
}

// PopMax removes and returns the larger of the two containers' maximums.
// Equal maximums pop from the second container.
func PopMax[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) (E, bool) {
	side, ok := Greater(first, second)
	if !ok {
		side = Second
	}
	if side == Second {
		return second.PopMax()
	}
	return first.PopMax()
}

// RemoveMin removes and returns the smaller of the two containers' minimums.
// Equal minimums remove from the first container. It panics when both
// containers are empty.
func RemoveMin[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) E {
	side, ok := Lesser(first, second)
	if !ok {
		side = First
	}
	if side == Second {
		return second.RemoveMin()
	}
	return first.RemoveMin()
}

// RemoveMax removes and returns the larger of the two containers' maximums.
// Equal maximums remove from the second container. It panics when both
// containers are empty.
func RemoveMax[E depq.Prioritized[P], P cmp.Ordered](first, second Container[E, P]) E {
	side, ok := Greater(first, second)
	if !ok {
		side = Second
	}
	if side == Second {
		return second.RemoveMax()
	}
	return first.RemoveMax()
}
