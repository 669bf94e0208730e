package nav

// ShouldStartCollapsed reports whether a section holding pages should be
// rendered collapsed for currentPath. It is expanded when any leaf beneath
// it, at any depth, links exactly to currentPath.
func ShouldStartCollapsed(pages []Node, currentPath string) bool {
	return !Contains(pages, currentPath)
}

// Contains reports whether any leaf in pages or their descendants has a link
// equal to currentPath.
func Contains(pages []Node, currentPath string) bool {
	for _, p := range pages {
		if p.IsLeaf() {
			if p.Link == currentPath {
				return true
			}
			continue
		}
		if Contains(p.Pages, currentPath) {
			return true
		}
	}
	return false
}

// ContainsDirect is the shallow form of Contains: only the direct leaf
// children of pages are compared.
func ContainsDirect(pages []Node, currentPath string) bool {
	for _, p := range pages {
		if p.IsLeaf() && p.Link == currentPath {
			return true
		}
	}
	return false
}
