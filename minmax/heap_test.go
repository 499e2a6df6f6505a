package minmax_test

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/depqueue/depq/minmax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intHeap(keys ...int) *minmax.Heap[int] {
	return minmax.From(func(a, b int) bool { return a < b }, keys)
}

func TestHeapBasic(t *testing.T) {
	h := intHeap()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())

	h.Push(5)
	h.Push(2)
	h.Push(9)
	h.Push(2)

	assert.Equal(t, 4, h.Len())

	lo, ok := h.Min()
	require.True(t, ok)
	assert.Equal(t, 2, lo)

	hi, ok := h.Max()
	require.True(t, ok)
	assert.Equal(t, 9, hi)
}

func TestHeapSingleKey(t *testing.T) {
	h := intHeap(7)

	lo, ok := h.Min()
	require.True(t, ok)
	hi, ok2 := h.Max()
	require.True(t, ok2)
	assert.Equal(t, 7, lo)
	assert.Equal(t, 7, hi)

	v, ok := h.PopMax()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assert.True(t, h.IsEmpty())
}

func TestHeapPopMinOrder(t *testing.T) {
	keys := rand.Perm(200)
	h := intHeap()
	for _, k := range keys {
		h.Push(k)
	}

	var got []int
	for {
		v, ok := h.PopMin()
		if !ok {
			break
		}
		got = append(got, v)
	}

	require.Len(t, got, len(keys))
	assert.True(t, sort.IntsAreSorted(got))
}

func TestHeapPopMaxOrder(t *testing.T) {
	keys := rand.Perm(200)
	h := intHeap(keys...)

	var got []int
	for {
		v, ok := h.PopMax()
		if !ok {
			break
		}
		got = append(got, v)
	}

	require.Len(t, got, len(keys))
	assert.True(t, sort.IsSorted(sort.Reverse(sort.IntSlice(got))))
}

func TestHeapFrom(t *testing.T) {
	keys := []int{9, 1, 8, 2, 7, 3, 6, 4, 5, 5}
	h := minmax.From(func(a, b int) bool { return a < b }, keys)

	assert.Equal(t, len(keys), h.Len())

	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)

	// From copies its input.
	keys[0] = -100
	lo, _ = h.Min()
	assert.Equal(t, 1, lo)
}

func TestHeapReplaceMin(t *testing.T) {
	h := intHeap(1, 5, 3)

	old := h.ReplaceMin(4)
	assert.Equal(t, 1, old)
	assert.Equal(t, 3, h.Len())

	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 5, hi)
}

func TestHeapReplaceMinWithNewMax(t *testing.T) {
	h := intHeap(1, 5, 3)

	old := h.ReplaceMin(10)
	assert.Equal(t, 1, old)

	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 3, lo)
	assert.Equal(t, 10, hi)
}

func TestHeapReplaceMax(t *testing.T) {
	h := intHeap(1, 5, 3)

	old := h.ReplaceMax(2)
	assert.Equal(t, 5, old)

	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)
}

func TestHeapReplaceMaxWithNewMin(t *testing.T) {
	h := intHeap(2, 5, 3)

	old := h.ReplaceMax(0)
	assert.Equal(t, 5, old)

	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)
}

func TestHeapEmptyOps(t *testing.T) {
	h := intHeap()

	_, ok := h.Min()
	assert.False(t, ok)
	_, ok = h.Max()
	assert.False(t, ok)
	_, ok = h.PopMin()
	assert.False(t, ok)
	_, ok = h.PopMax()
	assert.False(t, ok)

	assert.Panics(t, func() { h.RemoveMin() })
	assert.Panics(t, func() { h.RemoveMax() })
	assert.Panics(t, func() { h.ReplaceMin(1) })
	assert.Panics(t, func() { h.ReplaceMax(1) })
}

func TestHeapClone(t *testing.T) {
	h := intHeap(3, 1, 2)
	c := h.Clone()

	c.RemoveMin()
	c.Push(10)

	assert.Equal(t, 3, h.Len())
	lo, _ := h.Min()
	hi, _ := h.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 3, hi)
}

func TestHeapAll(t *testing.T) {
	h := intHeap(4, 2, 3, 1)

	var seen []int
	for k := range h.All() {
		seen = append(seen, k)
	}

	slices.Sort(seen)
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
	assert.Equal(t, 4, h.Len())
}

// TestHeapRandomOps drives a heap with random operations and cross-checks
// Min/Max/Pop results against a sorted reference slice.
func TestHeapRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := intHeap()
	var model []int

	for i := 0; i < 5000; i++ {
		switch op := rng.Intn(10); {
		case op < 5:
			k := rng.Intn(1000)
			h.Push(k)
			model = append(model, k)
			slices.Sort(model)
		case op < 7:
			v, ok := h.PopMin()
			if len(model) == 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, model[0], v)
			model = model[1:]
		case op < 9:
			v, ok := h.PopMax()
			if len(model) == 0 {
				assert.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, model[len(model)-1], v)
			model = model[:len(model)-1]
		default:
			if len(model) == 0 {
				continue
			}
			k := rng.Intn(1000)
			old := h.ReplaceMin(k)
			require.Equal(t, model[0], old)
			model[0] = k
			slices.Sort(model)
		}

		require.Equal(t, len(model), h.Len())
		if len(model) > 0 {
			lo, _ := h.Min()
			hi, _ := h.Max()
			require.Equal(t, model[0], lo)
			require.Equal(t, model[len(model)-1], hi)
		}
	}
}

func BenchmarkHeapPush(b *testing.B) {
	h := intHeap()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(i ^ 0x5555)
	}
}

func BenchmarkHeapPushPopMin(b *testing.B) {
	h := intHeap()
	for i := 0; i < 1024; i++ {
		h.Push(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Push(i & 0xffff)
		h.PopMin()
	}
}
