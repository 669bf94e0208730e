package nav

// Kind tells a section node apart from a leaf page.
type Kind int

const (
	KindSection Kind = iota
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSection:
		return "section"
	default:
		return "unknown"
	}
}

// Page is a single navigable leaf page.
type Page struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// Node is one entry of the navigation tree. Kind is resolved when the node is
// built, so traversals never have to guess from which fields are set.
type Node struct {
	Kind  Kind
	Name  string
	Link  string // leaf only
	Pages []Node // section only

	// flags set by the YAML decoder for Lint.
	degenerate bool
	ambiguous  bool
}

// Leaf builds a leaf page node.
func Leaf(name, link string) Node {
	return Node{Kind: KindLeaf, Name: name, Link: link}
}

// Section builds a section node holding the given children in order.
func Section(name string, pages ...Node) Node {
	return Node{Kind: KindSection, Name: name, Pages: pages}
}

// IsLeaf reports whether n is a leaf page.
func (n Node) IsLeaf() bool { return n.Kind == KindLeaf }

// Page returns the leaf view of n. It is only meaningful for leaves.
func (n Node) Page() Page {
	return Page{Name: n.Name, Link: n.Link}
}

// Entry is a keyed top-level section of a Tree.
type Entry struct {
	Key string
	Node
}

// Tree is an ordered mapping from top-level key to section. Entry order
// defines the sidebar order and the reading sequence.
type Tree struct {
	Sections []Entry
}

// NewTree returns a tree holding entries in the given order.
func NewTree(entries ...Entry) *Tree {
	return &Tree{Sections: entries}
}

// Lookup returns the top-level entry stored under key.
func (t *Tree) Lookup(key string) (Entry, bool) {
	if t == nil {
		return Entry{}, false
	}
	for _, e := range t.Sections {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Keys returns the top-level keys in order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.Sections))
	for _, e := range t.Sections {
		keys = append(keys, e.Key)
	}
	return keys
}

// Nodes returns the top-level nodes in order.
func (t *Tree) Nodes() []Node {
	if t == nil {
		return nil
	}
	nodes := make([]Node, 0, len(t.Sections))
	for _, e := range t.Sections {
		nodes = append(nodes, e.Node)
	}
	return nodes
}
