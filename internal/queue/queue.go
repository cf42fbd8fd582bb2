// Package queue implements the min-priority queue driving best-first search.
package queue

import "errors"

// ErrEmpty is returned by Pop and Peek on an empty queue.
var ErrEmpty = errors.New("queue: empty")

// item pairs a value with its priority and an insertion sequence number.
// The sequence breaks ties between equal priorities, so items with the same
// priority come out in FIFO order and the value type never needs to be
// comparable.
type item[T any] struct {
	priority float64
	seq      uint64
	value    T
}

// PriorityQueue is a min-heap ordered by (priority, insertion order).
// Value-based storage, hand-rolled sift operations; not safe for concurrent use.
type PriorityQueue[T any] struct {
	items []item[T]
	seq   uint64
}

// New creates an empty queue with room for capacity items before reallocation.
func New[T any](capacity int) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		items: make([]item[T], 0, capacity),
	}
}

// Push inserts value with the given priority. Lower priorities pop first;
// equal priorities pop in insertion order.
func (pq *PriorityQueue[T]) Push(priority float64, value T) {
	pq.items = append(pq.items, item[T]{priority: priority, seq: pq.seq, value: value})
	pq.seq++
	pq.siftUp(len(pq.items) - 1)
}

// Pop removes and returns the lowest-priority item.
// It returns ErrEmpty when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (float64, T, error) {
	n := len(pq.items)
	if n == 0 {
		var zero T
		return 0, zero, ErrEmpty
	}
	root := pq.items[0]
	last := pq.items[n-1]
	pq.items[n-1] = item[T]{} // zero out for GC
	pq.items = pq.items[:n-1]
	if n-1 > 0 {
		pq.items[0] = last
		pq.siftDown(0)
	}
	return root.priority, root.value, nil
}

// Peek returns the lowest-priority item without removing it.
// It returns ErrEmpty when the queue is empty.
func (pq *PriorityQueue[T]) Peek() (float64, T, error) {
	if len(pq.items) == 0 {
		var zero T
		return 0, zero, ErrEmpty
	}
	return pq.items[0].priority, pq.items[0].value, nil
}

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.items) }

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

func (pq *PriorityQueue[T]) less(i, j int) bool {
	if pq.items[i].priority != pq.items[j].priority {
		return pq.items[i].priority < pq.items[j].priority
	}
	return pq.items[i].seq < pq.items[j].seq
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !pq.less(i, p) {
			return
		}
		pq.items[i], pq.items[p] = pq.items[p], pq.items[i]
		i = p
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && pq.less(r, l) {
			best = r
		}
		if !pq.less(best, i) {
			return
		}
		pq.items[i], pq.items[best] = pq.items[best], pq.items[i]
		i = best
	}
}
