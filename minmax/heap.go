package minmax

import (
	"iter"
	"math/bits"
)

// Heap implements a min-max heap ordered by the given comparator.
type Heap[K any] struct {
	less  func(a, b K) bool // returns true if a orders strictly before b
	items []K
}

// New creates an empty heap with the given comparator.
func New[K any](less func(a, b K) bool) *Heap[K] {
	return &Heap[K]{less: less}
}

// From builds a heap containing the given keys in O(n).
func From[K any](less func(a, b K) bool, keys []K) *Heap[K] {
	h := &Heap[K]{
		less:  less,
		items: append([]K(nil), keys...),
	}
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.pushDown(i)
	}
	return h
}

// Len returns the number of keys in the heap.
func (h *Heap[K]) Len() int {
	return len(h.items)
}

// IsEmpty reports whether the heap holds no keys.
func (h *Heap[K]) IsEmpty() bool {
	return len(h.items) == 0
}

// Min returns the smallest key without removing it.
func (h *Heap[K]) Min() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	return h.items[0], true
}

// Max returns the largest key without removing it.
func (h *Heap[K]) Max() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	return h.items[h.maxIndex()], true
}

// Push adds a key to the heap.
func (h *Heap[K]) Push(k K) {
	h.items = append(h.items, k)
	h.bubbleUp(len(h.items) - 1)
}

// PopMin removes and returns the smallest key.
func (h *Heap[K]) PopMin() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	out := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if last > 0 {
		h.pushDown(0)
	}
	return out, true
}

// PopMax removes and returns the largest key.
func (h *Heap[K]) PopMax() (K, bool) {
	if len(h.items) == 0 {
		var zero K
		return zero, false
	}
	i := h.maxIndex()
	out := h.items[i]
	last := len(h.items) - 1
	h.items[i] = h.items[last]
	h.items = h.items[:last]
	if i < last {
		h.pushDown(i)
	}
	return out, true
}

// RemoveMin removes and returns the smallest key. It panics if the heap is
// empty.
func (h *Heap[K]) RemoveMin() K {
	out, ok := h.PopMin()
	if !ok {
		panic("minmax: remove from empty heap")
	}
	return out
}

// RemoveMax removes and returns the largest key. It panics if the heap is
// empty.
func (h *Heap[K]) RemoveMax() K {
	out, ok := h.PopMax()
	if !ok {
		panic("minmax: remove from empty heap")
	}
	return out
}

// ReplaceMin replaces the smallest key with k and returns the prior minimum.
// It panics if the heap is empty.
func (h *Heap[K]) ReplaceMin(k K) K {
	if len(h.items) == 0 {
		panic("minmax: replace on empty heap")
	}
	old := h.items[0]
	h.items[0] = k
	h.pushDown(0)
	return old
}

// ReplaceMax replaces the largest key with k and returns the prior maximum.
// It panics if the heap is empty.
func (h *Heap[K]) ReplaceMax(k K) K {
	if len(h.items) == 0 {
		panic("minmax: replace on empty heap")
	}
	i := h.maxIndex()
	old := h.items[i]
	h.items[i] = k
	if i > 0 && h.less(h.items[i], h.items[0]) {
		h.swap(0, i)
	}
	h.pushDown(i)
	return old
}

// All returns an iterator over every key in the heap. The order is
// unspecified and may change between versions; it is intended for
// diagnostics and tests only.
func (h *Heap[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range h.items {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the heap.
func (h *Heap[K]) Clone() *Heap[K] {
	return &Heap[K]{
		less:  h.less,
		items: append([]K(nil), h.items...),
	}
}

// maxIndex returns the index holding the largest key. The heap must be
// non-empty. The maximum lives at the root for a single-key heap, and on the
// first max level otherwise.
func (h *Heap[K]) maxIndex() int {
	switch len(h.items) {
	case 1:
		return 0
	case 2:
		return 1
	default:
		if h.less(h.items[1], h.items[2]) {
			return 2
		}
		return 1
	}
}

func parent(i int) int { return (i - 1) / 2 }

// onMinLevel reports whether index i lies on an even (min) level of the tree.
func onMinLevel(i int) bool {
	return (bits.Len(uint(i)+1)-1)%2 == 0
}

func (h *Heap[K]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *Heap[K]) bubbleUp(i int) {
	if i == 0 {
		return
	}
	p := parent(i)
	if onMinLevel(i) {
		if h.less(h.items[p], h.items[i]) {
			h.swap(i, p)
			h.bubbleUpMax(p)
		} else {
			h.bubbleUpMin(i)
		}
	} else {
		if h.less(h.items[i], h.items[p]) {
			h.swap(i, p)
			h.bubbleUpMin(p)
		} else {
			h.bubbleUpMax(i)
		}
	}
}

func (h *Heap[K]) bubbleUpMin(i int) {
	for i > 2 {
		gp := parent(parent(i))
		if !h.less(h.items[i], h.items[gp]) {
			return
		}
		h.swap(i, gp)
		i = gp
	}
}

func (h *Heap[K]) bubbleUpMax(i int) {
	for i > 2 {
		gp := parent(parent(i))
		if !h.less(h.items[gp], h.items[i]) {
			return
		}
		h.swap(i, gp)
		i = gp
	}
}

func (h *Heap[K]) pushDown(i int) {
	if onMinLevel(i) {
		h.pushDownMin(i)
	} else {
		h.pushDownMax(i)
	}
}

func (h *Heap[K]) pushDownMin(i int) {
	for {
		m, grandchild := h.minDescendant(i)
		if m < 0 || !h.less(h.items[m], h.items[i]) {
			return
		}
		h.swap(i, m)
		if !grandchild {
			return
		}
		if p := parent(m); h.less(h.items[p], h.items[m]) {
			h.swap(m, p)
		}
		i = m
	}
}

func (h *Heap[K]) pushDownMax(i int) {
	for {
		m, grandchild := h.maxDescendant(i)
		if m < 0 || !h.less(h.items[i], h.items[m]) {
			return
		}
		h.swap(i, m)
		if !grandchild {
			return
		}
		if p := parent(m); h.less(h.items[m], h.items[p]) {
			h.swap(m, p)
		}
		i = m
	}
}

// minDescendant returns the index of the smallest key among the children and
// grandchildren of i, and whether that index is a grandchild. It returns -1
// when i has no children.
func (h *Heap[K]) minDescendant(i int) (int, bool) {
	n := len(h.items)
	first := 2*i + 1
	if first >= n {
		return -1, false
	}
	best, grandchild := first, false
	if c := first + 1; c < n && h.less(h.items[c], h.items[best]) {
		best = c
	}
	for g := 4*i + 3; g <= 4*i+6 && g < n; g++ {
		if h.less(h.items[g], h.items[best]) {
			best, grandchild = g, true
		}
	}
	return best, grandchild
}

// maxDescendant is the mirror of minDescendant for the largest key.
func (h *Heap[K]) maxDescendant(i int) (int, bool) {
	n := len(h.items)
	first := 2*i + 1
	if first >= n {
		return -1, false
	}
	best, grandchild := first, false
	if c := first + 1; c < n && h.less(h.items[best], h.items[c]) {
		best = c
	}
	for g := 4*i + 3; g <= 4*i+6 && g < n; g++ {
		if h.less(h.items[best], h.items[g]) {
			best, grandchild = g, true
		}
	}
	return best, grandchild
}
