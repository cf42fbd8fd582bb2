package geogo

import (
	"github.com/hupe1980/geogo/geometry"
)

// entry is a single slot of a node page. Leaf entries carry a payload and a
// point rectangle; internal entries carry a child node and the child's exact
// MBR. Which arm is live is decided by the owning node's kind, never per entry.
type entry[T any] struct {
	rect    geometry.Rect
	payload T        // leaf nodes only
	child   *node[T] // internal nodes only
}

// node is one page of the tree. Entries keep insertion order, which makes
// traversal deterministic. parent is a non-owning back-reference used for
// upward MBR propagation and split cascades; it is nil on the root.
type node[T any] struct {
	leaf       bool
	entries    []entry[T]
	parent     *node[T]
	maxEntries int
	minEntries int
}

func newNode[T any](leaf bool, maxEntries int) *node[T] {
	return &node[T]{
		leaf:       leaf,
		entries:    make([]entry[T], 0, maxEntries+1),
		maxEntries: maxEntries,
		minEntries: maxEntries / 2,
	}
}

// mbr returns the tight union of all entry rectangles.
// ok is false for a node with no entries.
func (n *node[T]) mbr() (geometry.Rect, bool) {
	if len(n.entries) == 0 {
		return geometry.Rect{}, false
	}
	result := n.entries[0].rect
	for _, e := range n.entries[1:] {
		result = result.Union(e.rect)
	}
	return result, true
}

// needsSplit reports whether the entry count exceeds maxEntries. A node holds
// up to maxEntries+1 entries between an insertion and the split that follows;
// the one-over state is transient and checked only here.
func (n *node[T]) needsSplit() bool {
	return len(n.entries) > n.maxEntries
}

// chooseSubtree descends to the leaf best suited to absorb rect: at each
// internal level the child needing the least enlargement wins, ties going to
// the child with the smaller current area. An internal node with no entries
// means the split logic has broken a structural invariant, so it panics.
func (n *node[T]) chooseSubtree(rect geometry.Rect) *node[T] {
	if n.leaf {
		return n
	}

	var best *node[T]
	minEnlargement := inf
	minArea := inf

	for _, e := range n.entries {
		enlargement := e.rect.Enlargement(rect)
		area := e.rect.Area()
		if enlargement < minEnlargement || (enlargement == minEnlargement && area < minArea) {
			minEnlargement = enlargement
			minArea = area
			best = e.child
		}
	}

	if best == nil {
		panic("geogo: internal node has no entries")
	}
	return best.chooseSubtree(rect)
}

// addEntry appends without any capacity check; callers run the overflow
// handler afterwards.
func (n *node[T]) addEntry(e entry[T]) {
	n.entries = append(n.entries, e)
}

// quadraticSplit redistributes this node's maxEntries+1 entries across itself
// and a fresh sibling. Seed selection scans all entry pairs for the two whose
// grouping wastes the most area; the rest are placed one at a time, most
// decisive assignment first. Both halves end with at least minEntries entries.
func (n *node[T]) quadraticSplit() (*node[T], *node[T]) {
	sibling := newNode[T](n.leaf, n.maxEntries)

	// Seed selection: the pair wasting the most area anchors the two groups.
	maxWaste := -inf
	seed1, seed2 := 0, 1
	for i := 0; i < len(n.entries); i++ {
		for j := i + 1; j < len(n.entries); j++ {
			a, b := n.entries[i].rect, n.entries[j].rect
			waste := a.Union(b).Area() - a.Area() - b.Area()
			if waste > maxWaste {
				maxWaste = waste
				seed1, seed2 = i, j
			}
		}
	}

	group1 := []entry[T]{n.entries[seed1]}
	group2 := []entry[T]{n.entries[seed2]}
	mbr1 := n.entries[seed1].rect
	mbr2 := n.entries[seed2].rect

	remaining := make([]entry[T], 0, len(n.entries)-2)
	for i, e := range n.entries {
		if i != seed1 && i != seed2 {
			remaining = append(remaining, e)
		}
	}

	for len(remaining) > 0 {
		// Forced assignment: once a group can only just reach the minimum
		// fill with everything left, it takes everything left.
		if len(group1) >= n.minEntries && len(remaining)+len(group2) == n.minEntries {
			group2 = append(group2, remaining...)
			break
		}
		if len(group2) >= n.minEntries && len(remaining)+len(group1) == n.minEntries {
			group1 = append(group1, remaining...)
			break
		}

		// Pick the entry with the largest gap between the two enlargements.
		maxDiff := -inf
		bestIdx := 0
		bestGroup := 2
		for i, e := range remaining {
			enlarge1 := mbr1.Enlargement(e.rect)
			enlarge2 := mbr2.Enlargement(e.rect)
			diff := enlarge1 - enlarge2
			if diff < 0 {
				diff = -diff
			}
			if diff > maxDiff {
				maxDiff = diff
				bestIdx = i
				if enlarge1 < enlarge2 {
					bestGroup = 1
				} else {
					// Equal enlargements go to group 2.
					bestGroup = 2
				}
			}
		}

		e := remaining[bestIdx]
		if bestGroup == 1 {
			group1 = append(group1, e)
			mbr1 = mbr1.Union(e.rect)
		} else {
			group2 = append(group2, e)
			mbr2 = mbr2.Union(e.rect)
		}
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	n.entries = group1
	sibling.entries = group2

	// Redistributed children must point at their new owner.
	if !n.leaf {
		for _, e := range n.entries {
			e.child.parent = n
		}
		for _, e := range sibling.entries {
			e.child.parent = sibling
		}
	}

	return n, sibling
}

// updateMBRUpward walks the parent chain rewriting this node's rectangle in
// its parent's entry with the freshly computed tight MBR. Bounds are restored
// eagerly after every structural change, never left stale. The walk is
// iterative so pathological heights cannot exhaust the stack.
func (n *node[T]) updateMBRUpward() {
	for cur := n; cur.parent != nil; cur = cur.parent {
		m, ok := cur.mbr()
		if !ok {
			return
		}
		parent := cur.parent
		for i := range parent.entries {
			if parent.entries[i].child == cur {
				parent.entries[i].rect = m
				break
			}
		}
	}
}

// search appends to out the payload of every leaf entry whose rectangle
// intersects query, recursing into every intersecting child. The intersection
// test is the only pruning.
func (n *node[T]) search(query geometry.Rect, out []T) []T {
	for _, e := range n.entries {
		if !e.rect.Intersects(query) {
			continue
		}
		if n.leaf {
			out = append(out, e.payload)
		} else {
			out = e.child.search(query, out)
		}
	}
	return out
}
