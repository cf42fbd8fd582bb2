// Package geogo provides an embedded two-dimensional spatial index for Go.
//
// Geogo is an in-memory R-tree over points tagged with arbitrary payload data.
// Insertion uses the quadratic node-splitting heuristic and keeps every
// bounding rectangle tight after each structural change, so point lookups,
// axis-aligned range searches and k-nearest-neighbor queries stay exact.
//
// # Quick Start
//
//	tree, _ := geogo.New[string](4)
//
//	tree.Insert(2, 3, "Restaurant A")
//	tree.Insert(5, 4, "Restaurant B")
//	tree.Insert(9, 6, "Store C")
//
//	// Everything inside a rectangle:
//	hits, _ := tree.SearchRect(3, 3, 7, 7)
//
//	// Everything located exactly at a point:
//	exact := tree.SearchPoint(5, 4)
//
//	// The two nearest neighbors of (0, 0), closest first:
//	nearest := tree.KNN(0, 0, 2)
//	for _, r := range nearest {
//	    fmt.Println(r.Payload, r.Distance)
//	}
//
// # Search Semantics
//
// Range and point searches use closed-interval semantics: rectangles that
// merely touch the query on an edge count as intersecting, and bounds tests
// are inclusive. KNN results are ordered by non-decreasing Euclidean distance,
// driven by a branch-and-bound search that only expands subtrees whose
// distance lower bound could still matter.
//
// # Limitations
//
// The tree is single-writer and not safe for concurrent use; callers needing
// concurrency must serialize all access externally. Deletion and persistence
// are not supported.
package geogo
