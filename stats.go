package geogo

// Stats summarizes the shape of the tree.
type Stats struct {
	// Height is the number of levels (0 when empty).
	Height int

	// MaxEntries is the fixed node capacity.
	MaxEntries int

	// MinEntries is the minimum fill of a non-root node.
	MinEntries int

	// Size is the number of indexed points.
	Size int

	// Nodes is the total node count across all levels.
	Nodes int

	// Leaves is the number of leaf nodes.
	Leaves int
}

// Stats walks the tree and returns shape statistics.
func (t *RTree[T]) Stats() Stats {
	s := Stats{
		Height:     t.height,
		MaxEntries: t.maxEntries,
		MinEntries: t.maxEntries / 2,
		Size:       t.size,
	}
	if t.root != nil {
		countNodes(t.root, &s)
	}
	return s
}

func countNodes[T any](n *node[T], s *Stats) {
	s.Nodes++
	if n.leaf {
		s.Leaves++
		return
	}
	for _, e := range n.entries {
		countNodes(e.child, s)
	}
}
