package geogo

import (
	"fmt"
	"io"
	"strings"
)

// String renders the tree structure as connector-drawn ASCII, one line per
// node and leaf entry. Useful for debugging and demos; not part of the
// indexing core.
func (t *RTree[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "RTree (height=%d, maxEntries=%d)\n", t.height, t.maxEntries)
	if t.root == nil {
		sb.WriteString("└── Empty\n")
		return sb.String()
	}
	lines := t.root.dumpLines("", true)
	if len(lines) > 0 {
		lines[0] = "└── Root " + strings.TrimPrefix(lines[0], "└── ")
	}
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Dump writes the ASCII rendering of the tree to w.
func (t *RTree[T]) Dump(w io.Writer) error {
	_, err := io.WriteString(w, t.String())
	return err
}

func (n *node[T]) dumpLines(prefix string, isLast bool) []string {
	connector := "├── "
	extension := "│   "
	if isLast {
		connector = "└── "
		extension = "    "
	}

	kind := "Node"
	if n.leaf {
		kind = "Leaf"
	}
	mbrStr := "Empty"
	if m, ok := n.mbr(); ok {
		mbrStr = m.String()
	}

	lines := []string{prefix + connector + kind + " " + mbrStr}
	childPrefix := prefix + extension

	for i, e := range n.entries {
		last := i == len(n.entries)-1
		if n.leaf {
			entryConnector := "├── "
			if last {
				entryConnector = "└── "
			}
			lines = append(lines, fmt.Sprintf("%s%s• %s: %v", childPrefix, entryConnector, e.rect, e.payload))
		} else {
			lines = append(lines, e.child.dumpLines(childPrefix, last)...)
		}
	}

	return lines
}
