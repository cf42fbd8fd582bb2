package geogo

import (
	"fmt"
	"math"

	"github.com/hupe1980/geogo/geometry"
)

var inf = math.Inf(1)

// MinMaxEntries is the smallest supported node capacity. The quadratic split
// needs two seeds plus room to satisfy the minimum fill, so smaller capacities
// are rejected at construction time.
const MinMaxEntries = 3

// RTree is an in-memory two-dimensional spatial index over points tagged with
// a payload of type T. It supports insertion, exact-point lookup, axis-aligned
// range search and k-nearest-neighbor search.
//
// RTree is not safe for concurrent use. An insertion touches multiple nodes
// non-atomically, so callers needing concurrency must serialize all access
// externally.
type RTree[T any] struct {
	root       *node[T]
	height     int
	size       int
	maxEntries int

	logger *Logger
}

// New creates an empty tree. The node capacity maxEntries is fixed for the
// tree's lifetime and must be at least MinMaxEntries; each non-root node is
// kept at least half full (maxEntries/2 entries).
func New[T any](maxEntries int, optFns ...Option) (*RTree[T], error) {
	if maxEntries < MinMaxEntries {
		return nil, &ErrInvalidMaxEntries{MaxEntries: maxEntries}
	}

	o := applyOptions(optFns)

	return &RTree[T]{
		maxEntries: maxEntries,
		logger:     o.logger,
	}, nil
}

// Insert adds the point (x, y) with its payload to the index. Insert always
// succeeds; duplicate points are kept as separate entries.
func (t *RTree[T]) Insert(x, y float64, payload T) {
	rect := geometry.NewPoint(x, y)

	if t.root == nil {
		t.root = newNode[T](true, t.maxEntries)
		t.root.addEntry(entry[T]{rect: rect, payload: payload})
		t.height = 1
		t.size++
		t.logger.LogInsert(x, y, t.height, false)
		return
	}

	leaf := t.root.chooseSubtree(rect)
	leaf.addEntry(entry[T]{rect: rect, payload: payload})

	oldHeight := t.height
	t.handleOverflow(leaf)
	leaf.updateMBRUpward()

	t.size++
	t.logger.LogInsert(x, y, t.height, t.height > oldHeight)
}

// handleOverflow splits over-capacity nodes, walking the parent chain
// iteratively: a split adds an entry to the parent, which may overflow in
// turn. The walk reaching the root grows the tree by exactly one level.
func (t *RTree[T]) handleOverflow(n *node[T]) {
	for n != nil && n.needsSplit() {
		left, right := n.quadraticSplit()

		leftMBR, _ := left.mbr()
		rightMBR, _ := right.mbr()

		parent := n.parent
		if parent == nil {
			newRoot := newNode[T](false, t.maxEntries)
			newRoot.addEntry(entry[T]{rect: leftMBR, child: left})
			newRoot.addEntry(entry[T]{rect: rightMBR, child: right})
			left.parent = newRoot
			right.parent = newRoot

			t.root = newRoot
			t.height++
			return
		}

		// The surviving half keeps its slot in the parent, but its rect there
		// still describes the pre-split entry set. Refresh it now: a later
		// split can move this subtree off the inserted entry's path, and then
		// no upward propagation would ever correct it.
		for i := range parent.entries {
			if parent.entries[i].child == left {
				parent.entries[i].rect = leftMBR
				break
			}
		}

		parent.addEntry(entry[T]{rect: rightMBR, child: right})
		right.parent = parent

		n = parent
	}
}

// SearchPoint returns the payload of every entry located exactly at (x, y).
// Coincident points yield multiple results; their order is unspecified.
func (t *RTree[T]) SearchPoint(x, y float64) []T {
	if t.root == nil {
		return nil
	}
	return t.root.search(geometry.NewPoint(x, y), nil)
}

// SearchRect returns the payload of every entry intersecting the query
// rectangle, bounds inclusive. It returns geometry.ErrInvalidRect when
// minX > maxX or minY > maxY.
func (t *RTree[T]) SearchRect(minX, minY, maxX, maxY float64) ([]T, error) {
	query, err := geometry.NewRect(minX, minY, maxX, maxY)
	if err != nil {
		return nil, fmt.Errorf("search rect: %w", err)
	}
	if t.root == nil {
		return nil, nil
	}
	return t.root.search(query, nil), nil
}

// Height returns the number of levels in the tree: 0 when empty, 1 for a
// single leaf root.
func (t *RTree[T]) Height() int { return t.height }

// MaxEntries returns the fixed node capacity.
func (t *RTree[T]) MaxEntries() int { return t.maxEntries }

// Len returns the number of indexed points.
func (t *RTree[T]) Len() int { return t.size }
