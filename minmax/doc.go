// Package minmax implements a generic min-max heap: a double-ended priority
// queue giving O(1) access to both the smallest and largest key and O(log n)
// insertion, extraction, and replacement at either end.
//
// The heap is laid out in an array whose levels alternate between min levels
// (even depth) and max levels (odd depth). Every key on a min level is less
// than or equal to all of its descendants; every key on a max level is
// greater than or equal to all of its descendants. The smallest key is
// therefore always at the root and the largest key on the first max level.
//
// Key features:
//   - Generic implementation ordered by a user-supplied comparator
//   - O(1) Min and Max
//   - O(log n) Push, PopMin, PopMax, ReplaceMin, ReplaceMax
//   - O(n) construction from an existing slice
//
// Basic usage:
//
//	h := minmax.New(func(a, b int) bool { return a < b })
//	h.Push(3)
//	h.Push(1)
//	h.Push(7)
//
//	lo, _ := h.Min() // 1
//	hi, _ := h.Max() // 7
//
//	h.PopMin() // 1, true
//	h.PopMax() // 7, true
//
// The comparator must describe a strict weak ordering. Keys comparing equal
// are interchangeable: the heap makes no ordering distinction between them.
//
// RemoveMin, RemoveMax, ReplaceMin, and ReplaceMax panic when called on an
// empty heap; use the Pop variants when emptiness is an expected condition.
package minmax
