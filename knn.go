package geogo

import (
	"github.com/hupe1980/geogo/internal/queue"
)

// Result is a single k-nearest-neighbor match.
type Result[T any] struct {
	// Payload is the data stored with the matched point.
	Payload T

	// Distance is the Euclidean distance from the query point to the match.
	Distance float64
}

// candidate is one unit of best-first search work: an unexpanded subtree, or a
// finalized leaf entry once node is nil.
type candidate[T any] struct {
	node    *node[T]
	payload T
}

// KNN returns up to k payloads ordered by non-decreasing Euclidean distance to
// (x, y). It returns nil for k <= 0 or an empty tree.
//
// The search is branch-and-bound: a min-priority queue keyed on each item's
// distance lower bound (geometry.Rect.MinDist) always expands the globally
// closest unresolved item first. A popped lower bound never exceeds the true
// distance of anything beneath it, so finalized entries emerge already in
// ascending distance order and no post-sort is needed.
func (t *RTree[T]) KNN(x, y float64, k int) []Result[T] {
	if k <= 0 || t.root == nil {
		return nil
	}

	rootMBR, ok := t.root.mbr()
	if !ok {
		return nil
	}

	pq := queue.New[candidate[T]](t.maxEntries * 2)
	pq.Push(rootMBR.MinDist(x, y), candidate[T]{node: t.root})

	results := make([]Result[T], 0, min(k, t.size))
	for len(results) < k {
		dist, c, err := pq.Pop()
		if err != nil {
			break // queue drained: fewer than k points indexed
		}

		switch {
		case c.node == nil:
			// Finalized leaf entry; dist is its exact distance.
			results = append(results, Result[T]{Payload: c.payload, Distance: dist})
		case c.node.leaf:
			// Leaf entries are point rectangles, so MinDist is exact here.
			for _, e := range c.node.entries {
				pq.Push(e.rect.MinDist(x, y), candidate[T]{payload: e.payload})
			}
		default:
			for _, e := range c.node.entries {
				pq.Push(e.rect.MinDist(x, y), candidate[T]{node: e.child})
			}
		}
	}

	t.logger.LogKNN(x, y, k, len(results))

	return results
}
