package pqueue_test

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/depqueue/depq/pqueue"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type job struct {
	name string
	prio int
}

func (j job) Priority() int { return j.prio }

func jobs(prios ...int) []job {
	out := make([]job, len(prios))
	for i, p := range prios {
		out[i] = job{name: fmt.Sprintf("job-%d", i), prio: p}
	}
	return out
}

func newQueue(prios ...int) *pqueue.Queue[job, int] {
	return pqueue.From[job, int](slices.Values(jobs(prios...)))
}

func priorities(q *pqueue.Queue[job, int]) []int {
	var out []int
	for j := range q.All() {
		out = append(out, j.prio)
	}
	slices.Sort(out)
	return out
}

func TestQueueBasic(t *testing.T) {
	q := pqueue.New[job, int]()
	assert.True(t, q.IsEmpty())

	q.Insert(job{name: "backup", prio: 3})
	q.Insert(job{name: "page", prio: 1})
	q.Insert(job{name: "report", prio: 7})

	assert.Equal(t, 3, q.Len())

	lo, ok := q.PeekMin()
	require.True(t, ok)
	assert.Equal(t, "page", lo.name)

	hi, ok := q.PeekMax()
	require.True(t, ok)
	assert.Equal(t, "report", hi.name)
}

func TestQueuePeekIdempotent(t *testing.T) {
	q := newQueue(5, 2, 8)

	first, ok1 := q.PeekMin()
	second, ok2 := q.PeekMin()

	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, q.Len())
}

func TestQueueMinNotAboveMax(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	q := pqueue.New[job, int]()
	for i := 0; i < 100; i++ {
		q.Insert(job{name: fmt.Sprintf("j%d", i), prio: rng.Intn(50)})

		lo, _ := q.PeekMin()
		hi, _ := q.PeekMax()
		require.LessOrEqual(t, lo.prio, hi.prio)
	}
}

func TestQueueInsertAll(t *testing.T) {
	q := newQueue(4)
	q.InsertAll(slices.Values(jobs(2, 6)))

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{2, 4, 6}, priorities(q))
}

func TestQueuePopDrain(t *testing.T) {
	q := newQueue(5, 1, 4, 1, 3)

	var got []int
	for {
		j, ok := q.PopMin()
		if !ok {
			break
		}
		got = append(got, j.prio)
	}

	assert.Equal(t, []int{1, 1, 3, 4, 5}, got)
	assert.True(t, q.IsEmpty())
}

func TestQueueRemoveAndReplace(t *testing.T) {
	q := newQueue(1, 2, 3)

	assert.Equal(t, 1, q.RemoveMin().prio)
	assert.Equal(t, 3, q.RemoveMax().prio)
	assert.Equal(t, 1, q.Len())

	old := q.ReplaceMin(job{name: "swap", prio: 9})
	assert.Equal(t, 2, old.prio)

	hi, _ := q.PeekMax()
	assert.Equal(t, 9, hi.prio)
}

func TestQueueEmptyFaults(t *testing.T) {
	q := pqueue.New[job, int]()

	assert.Panics(t, func() { q.RemoveMin() })
	assert.Panics(t, func() { q.RemoveMax() })
	assert.Panics(t, func() { q.ReplaceMin(job{}) })
	assert.Panics(t, func() { q.ReplaceMax(job{}) })
}

func TestQueueClone(t *testing.T) {
	q := newQueue(2, 4, 6)
	c := q.Clone()

	c.RemoveMin()
	c.Insert(job{name: "extra", prio: 10})

	assert.Equal(t, []int{2, 4, 6}, priorities(q))
	assert.Equal(t, []int{4, 6, 10}, priorities(c))
}

func TestAscendingMatchesPopMin(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	q := pqueue.New[job, int]()
	for i := 0; i < 200; i++ {
		q.Insert(job{name: fmt.Sprintf("j%d", i), prio: rng.Intn(40)})
	}

	var traversed []int
	for j := range q.Ascending() {
		traversed = append(traversed, j.prio)
	}

	// Traversal never disturbs the original.
	require.Equal(t, 200, q.Len())

	var popped []int
	drain := q.Clone()
	for {
		j, ok := drain.PopMin()
		if !ok {
			break
		}
		popped = append(popped, j.prio)
	}

	assert.Equal(t, popped, traversed)
}

func TestDescendingOrder(t *testing.T) {
	q := newQueue(3, 1, 4, 1, 5, 9, 2, 6)

	var got []int
	for j := range q.Descending() {
		got = append(got, j.prio)
	}

	assert.Equal(t, []int{9, 6, 5, 4, 3, 2, 1, 1}, got)
	assert.Equal(t, 8, q.Len())
}

func TestTraversalRestarts(t *testing.T) {
	q := newQueue(2, 1)
	asc := q.Ascending()

	var first, second []int
	for j := range asc {
		first = append(first, j.prio)
	}
	q.Insert(job{name: "late", prio: 0})
	for j := range asc {
		second = append(second, j.prio)
	}

	assert.Equal(t, []int{1, 2}, first)
	assert.Equal(t, []int{0, 1, 2}, second)
}

func TestTraversalEarlyStop(t *testing.T) {
	q := newQueue(1, 2, 3, 4)

	var got []int
	for j := range q.Ascending() {
		got = append(got, j.prio)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 4, q.Len())
}

// TestAscendingAgainstBTree cross-checks the queue's ordered traversal
// against a btree maintained with the same ordering.
func TestAscendingAgainstBTree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := pqueue.New[job, int]()
	tr := btree.NewG(2, func(a, b job) bool {
		if a.prio != b.prio {
			return a.prio < b.prio
		}
		return a.name < b.name
	})

	for i := 0; i < 500; i++ {
		j := job{name: fmt.Sprintf("j%04d", i), prio: rng.Intn(100)}
		q.Insert(j)
		tr.ReplaceOrInsert(j)
	}

	var want []int
	tr.Ascend(func(j job) bool {
		want = append(want, j.prio)
		return true
	})

	var got []int
	for j := range q.Ascending() {
		got = append(got, j.prio)
	}

	assert.Equal(t, want, got)
}

func BenchmarkQueueInsertPopMin(b *testing.B) {
	q := pqueue.New[job, int]()
	for i := 0; i < 1024; i++ {
		q.Insert(job{prio: i})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Insert(job{prio: i & 0xffff})
		q.PopMin()
	}
}

// BenchmarkBTreeInsertDeleteMin is the btree baseline for the workload above.
func BenchmarkBTreeInsertDeleteMin(b *testing.B) {
	tr := btree.NewG(2, func(a, b job) bool {
		if a.prio != b.prio {
			return a.prio < b.prio
		}
		return a.name < b.name
	})
	for i := 0; i < 1024; i++ {
		tr.ReplaceOrInsert(job{name: fmt.Sprintf("j%d", i), prio: i})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ReplaceOrInsert(job{name: "bench", prio: i & 0xffff})
		tr.DeleteMin()
	}
}
