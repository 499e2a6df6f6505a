package merge

import (
	"cmp"
	"iter"

	"github.com/depqueue/depq"
)

// Traversable is satisfied by containers offering snapshot-based ordered
// traversal: pqueue.Queue, bounded.Queue, and dualtrack.Container.
type Traversable[E any] interface {
	Ascending() iter.Seq[E]
	Descending() iter.Seq[E]
}

// Ascending merges the ascending traversals of any number of containers into
// a single non-decreasing sequence using a tournament tree, with O(log k)
// comparisons per element for k containers. ceiling must be an element whose
// priority orders at or above every element held by the containers; it marks
// exhausted inputs and is never yielded.
func Ascending[E depq.Prioritized[P], P cmp.Ordered](ceiling E, containers ...Traversable[E]) iter.Seq[E] {
	seqs := make([]iter.Seq[E], len(containers))
	for i, c := range containers {
		seqs[i] = c.Ascending()
	}
	return merged(seqs, ceiling, func(a, b E) bool {
		return a.Priority() < b.Priority()
	})
}

// Descending is the mirror of Ascending: it merges descending traversals
// into a single non-increasing sequence. floor must order at or below every
// element held by the containers.
func Descending[E depq.Prioritized[P], P cmp.Ordered](floor E, containers ...Traversable[E]) iter.Seq[E] {
	seqs := make([]iter.Seq[E], len(containers))
	for i, c := range containers {
		seqs[i] = c.Descending()
	}
	return merged(seqs, floor, func(a, b E) bool {
		return a.Priority() > b.Priority()
	})
}

// tournament is a loser tree over k input sequences, laid out in an array of
// 2k nodes: leaves occupy positions k..2k-1, internal nodes 1..k-1, and node
// 0 holds the winner of the whole contest. Each internal node records the
// loser of the match between its subtrees, so advancing the winner replays
// only the matches along one root path.
type tournament[E any] struct {
	sentinel E
	less     func(E, E) bool
	nodes    []contestant[E]
}

type contestant[E any] struct {
	index int              // losing position, or the winner's position at node 0; -1 when exhausted
	value E                // value carried for the recorded position
	pull  func() (E, bool) // leaf nodes only
}

// merged lazily merges the given ordered sequences. The sentinel fills
// exhausted leaves and must order after every real element under less.
func merged[E any](seqs []iter.Seq[E], sentinel E, less func(E, E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		k := len(seqs)
		if k == 0 {
			return
		}
		t := &tournament[E]{
			sentinel: sentinel,
			less:     less,
			nodes:    make([]contestant[E], k*2),
		}
		for i, s := range seqs {
			pull, stop := iter.Pull(s)
			defer stop()
			t.nodes[k+i].pull = pull
			t.advance(k + i)
		}
		winner := t.seed(1)
		t.nodes[0].index = winner
		t.nodes[0].value = t.nodes[winner].value

		for t.nodes[t.nodes[0].index].index != -1 && yield(t.nodes[0].value) {
			t.advance(t.nodes[0].index)
			t.replay(t.nodes[0].index)
		}
	}
}

// advance pulls the next value into the leaf at position i, filling in the
// sentinel once the sequence is exhausted.
func (t *tournament[E]) advance(i int) {
	leaf := &t.nodes[i]
	if v, ok := leaf.pull(); ok {
		leaf.value = v
		return
	}
	leaf.value = t.sentinel
	leaf.index = -1
}

// seed plays the initial matches below position pos, storing losers on the
// way up, and returns the winning position.
func (t *tournament[E]) seed(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.seed(pos * 2)
	right := t.seed(pos*2 + 1)
	winner, loser := right, left
	if t.less(t.nodes[left].value, t.nodes[right].value) {
		winner, loser = left, right
	}
	t.nodes[pos].index = loser
	t.nodes[pos].value = t.nodes[loser].value
	return winner
}

// replay re-runs the matches from the advanced leaf at pos up to the root
// and records the new overall winner in node 0.
func (t *tournament[E]) replay(pos int) {
	value := t.nodes[pos].value
	for n := pos / 2; n != 0; n /= 2 {
		node := &t.nodes[n]
		if t.less(node.value, value) {
			// The stored loser beats the climbing value: they swap roles.
			node.index, pos = pos, node.index
			node.value, value = value, node.value
		}
	}
	t.nodes[0].index = pos
	t.nodes[0].value = value
}
