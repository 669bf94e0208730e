package nav

// SidebarItem is the render model for one sidebar entry.
type SidebarItem struct {
	Name      string        `json:"name"`
	Link      string        `json:"link,omitempty"`
	Leaf      bool          `json:"leaf"`
	Active    bool          `json:"active,omitempty"`
	Collapsed bool          `json:"collapsed,omitempty"`
	Children  []SidebarItem `json:"children,omitempty"`
}

// SidebarGroup is a top-level section. Groups are always shown open with
// their name as a heading.
type SidebarGroup struct {
	Key   string        `json:"key"`
	Name  string        `json:"name"`
	Items []SidebarItem `json:"items"`
}

// BuildSidebar maps t to its sidebar render model for currentPath.
func BuildSidebar(t *Tree, currentPath string) []SidebarGroup {
	if t == nil {
		return nil
	}
	groups := make([]SidebarGroup, 0, len(t.Sections))
	for _, e := range t.Sections {
		g := SidebarGroup{Key: e.Key, Name: e.Name}
		if e.IsLeaf() {
			// A bare page at the top level renders as a single-item group.
			g.Items = []SidebarItem{leafItem(e.Node, currentPath)}
		} else {
			g.Items = sidebarItems(e.Pages, currentPath)
		}
		groups = append(groups, g)
	}
	return groups
}

func sidebarItems(nodes []Node, currentPath string) []SidebarItem {
	items := make([]SidebarItem, 0, len(nodes))
	for _, n := range nodes {
		if n.IsLeaf() {
			items = append(items, leafItem(n, currentPath))
			continue
		}
		items = append(items, SidebarItem{
			Name:      n.Name,
			Collapsed: ShouldStartCollapsed(n.Pages, currentPath),
			Children:  sidebarItems(n.Pages, currentPath),
		})
	}
	return items
}

func leafItem(n Node, currentPath string) SidebarItem {
	return SidebarItem{
		Name:   n.Name,
		Link:   n.Link,
		Leaf:   true,
		Active: n.Link == currentPath,
	}
}
