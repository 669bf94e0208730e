package nav

// Flatten returns every leaf page of t in reading order: depth-first,
// pre-order, following the source order of each level.
func Flatten(t *Tree) []Page {
	return FlattenNodes(t.Nodes())
}

// FlattenNodes flattens a bare list of nodes. Sections without pages,
// including degenerate ones, contribute nothing.
func FlattenNodes(nodes []Node) []Page {
	var pages []Page
	for _, n := range nodes {
		pages = appendLeaves(pages, n)
	}
	return pages
}

func appendLeaves(dst []Page, n Node) []Page {
	if n.IsLeaf() {
		return append(dst, n.Page())
	}
	for _, child := range n.Pages {
		dst = appendLeaves(dst, child)
	}
	return dst
}

// Trail returns the names of the sections enclosing the leaf whose link is
// exactly link, outermost first. It returns nil when no leaf matches.
func Trail(t *Tree, link string) []string {
	if t == nil {
		return nil
	}
	for _, e := range t.Sections {
		if trail, ok := trailTo(e.Node, link, nil); ok {
			return trail
		}
	}
	return nil
}

func trailTo(n Node, link string, prefix []string) ([]string, bool) {
	if n.IsLeaf() {
		if n.Link == link {
			out := make([]string, len(prefix))
			copy(out, prefix)
			return out, true
		}
		return nil, false
	}
	prefix = append(prefix, n.Name)
	for _, child := range n.Pages {
		if trail, ok := trailTo(child, link, prefix); ok {
			return trail, true
		}
	}
	return nil, false
}
