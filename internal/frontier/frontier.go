// Package frontier holds the pending-work containers used by the search
// engines: a FIFO queue, a min-priority queue with insertion-order
// tie-breaking, and persistent path nodes.
package frontier

import (
	"cmp"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/pathkit/core"
)

// FIFO is a first-in first-out queue of T.
type FIFO[T any] struct {
	q *linkedlistqueue.Queue
}

// NewFIFO returns an empty FIFO queue.
func NewFIFO[T any]() *FIFO[T] {
	return &FIFO[T]{q: linkedlistqueue.New()}
}

// Push appends v at the back.
func (f *FIFO[T]) Push(v T) { f.q.Enqueue(v) }

// Pop removes the front element. ok is false when the queue is empty.
func (f *FIFO[T]) Pop() (v T, ok bool) {
	raw, ok := f.q.Dequeue()
	if !ok {
		return v, false
	}
	return raw.(T), true
}

// Len returns the number of queued elements.
func (f *FIFO[T]) Len() int { return f.q.Size() }

// entry is a queued value with its priority and insertion sequence.
type entry[T any, P core.Cost] struct {
	value    T
	priority P
	seq      uint64
}

// Priority is a binary min-heap keyed by P. Equal priorities pop in
// insertion order.
type Priority[T any, P core.Cost] struct {
	q   *priorityqueue.Queue
	seq uint64
}

// NewPriority returns an empty priority queue.
func NewPriority[T any, P core.Cost]() *Priority[T, P] {
	return &Priority[T, P]{
		q: priorityqueue.NewWith(func(a, b interface{}) int {
			x, y := a.(entry[T, P]), b.(entry[T, P])
			if c := cmp.Compare(x.priority, y.priority); c != 0 {
				return c
			}
			return cmp.Compare(x.seq, y.seq)
		}),
	}
}

// Push inserts v with the given priority.
//
// Complexity: O(log n)
func (p *Priority[T, P]) Push(v T, priority P) {
	p.q.Enqueue(entry[T, P]{value: v, priority: priority, seq: p.seq})
	p.seq++
}

// Pop removes the element with the smallest priority.
// ok is false when the queue is empty.
//
// Complexity: O(log n)
func (p *Priority[T, P]) Pop() (v T, priority P, ok bool) {
	raw, ok := p.q.Dequeue()
	if !ok {
		return v, priority, false
	}
	e := raw.(entry[T, P])
	return e.value, e.priority, true
}

// Len returns the number of queued elements.
func (p *Priority[T, P]) Len() int { return p.q.Size() }
