package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// learnTree mirrors the small "Learn" tree used throughout these tests.
func learnTree() *Tree {
	return NewTree(Entry{
		Key: "learn",
		Node: Section("Learn",
			Leaf("Intro", "/intro"),
			Section("Guide",
				Leaf("Setup", "/guide/setup"),
			),
		),
	})
}

func twoSectionTree() *Tree {
	return NewTree(
		Entry{Key: "a", Node: Section("A", Leaf("a1", "/a1"), Leaf("a2", "/a2"))},
		Entry{Key: "b", Node: Section("B", Leaf("b1", "/b1"))},
	)
}

func links(pages []Page) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = p.Link
	}
	return out
}

func TestFlattenPreservesOrder(t *testing.T) {
	t.Parallel()

	got := Flatten(twoSectionTree())
	assert.Equal(t, []string{"/a1", "/a2", "/b1"}, links(got))
}

func TestFlattenIsDeterministic(t *testing.T) {
	t.Parallel()

	tree := learnTree()
	assert.Equal(t, Flatten(tree), Flatten(tree))
}

func TestFlattenCountsEveryLeaf(t *testing.T) {
	t.Parallel()

	tree := NewTree(
		Entry{Key: "x", Node: Section("X",
			Leaf("1", "/1"),
			Section("deep",
				Section("deeper", Leaf("2", "/2"), Leaf("3", "/3")),
				Leaf("4", "/4"),
			),
			Section("empty"),
		)},
		Entry{Key: "top", Node: Leaf("5", "/5")},
	)

	got := Flatten(tree)
	assert.Equal(t, []string{"/1", "/2", "/3", "/4", "/5"}, links(got))
}

func TestFlattenNilTree(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Flatten(nil))
}

func TestEndToEndLearnTree(t *testing.T) {
	t.Parallel()

	pages := Flatten(learnTree())
	require.Equal(t, []Page{{Name: "Intro", Link: "/intro"}, {Name: "Setup", Link: "/guide/setup"}}, pages)

	prev, next := Neighbors(pages, "/guide/setup")
	require.NotNil(t, prev)
	assert.Equal(t, "Intro", prev.Name)
	assert.Nil(t, next)
}

func TestNeighbors(t *testing.T) {
	t.Parallel()

	seq := Flatten(twoSectionTree())

	tests := []struct {
		name     string
		pages    []Page
		path     string
		wantPrev string
		wantNext string
	}{
		{name: "first", pages: seq, path: "/a1", wantNext: "/a2"},
		{name: "middle", pages: seq, path: "/a2", wantPrev: "/a1", wantNext: "/b1"},
		{name: "last", pages: seq, path: "/b1", wantPrev: "/a2"},
		{name: "prefix match", pages: seq, path: "/a2/details", wantPrev: "/a1", wantNext: "/b1"},
		{name: "no match points at start", pages: seq, path: "/nonexistent", wantNext: "/a1"},
		{name: "single page", pages: []Page{{Name: "only", Link: "/only"}}, path: "/only"},
		{name: "empty sequence", pages: nil, path: "/anything"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			prev, next := Neighbors(tt.pages, tt.path)
			assertPage(t, "prev", tt.wantPrev, prev)
			assertPage(t, "next", tt.wantNext, next)
		})
	}
}

func assertPage(t *testing.T, label, want string, got *Page) {
	t.Helper()
	if want == "" {
		assert.Nil(t, got, "%s should be absent", label)
		return
	}
	if assert.NotNil(t, got, "%s should be present", label) {
		assert.Equal(t, want, got.Link, label)
	}
}

func TestLocateFirstPrefixWins(t *testing.T) {
	t.Parallel()

	pages := []Page{{Link: "/guide"}, {Link: "/guide/setup"}}
	assert.Equal(t, 0, Locate(pages, "/guide/setup"))
	assert.Equal(t, -1, Locate(pages, "/intro"))
}

func TestNeighborsDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	pages := []Page{{Name: "a", Link: "/a"}, {Name: "b", Link: "/b"}}
	_, next := Neighbors(pages, "/a")
	require.NotNil(t, next)
	next.Name = "changed"
	assert.Equal(t, "b", pages[1].Name)
}

func TestShouldStartCollapsed(t *testing.T) {
	t.Parallel()

	guide := []Node{
		Leaf("Setup", "/guide/setup"),
		Section("Advanced", Leaf("Tuning", "/guide/advanced/tuning")),
	}

	assert.False(t, ShouldStartCollapsed(guide, "/guide/setup"), "direct child match expands")
	assert.False(t, ShouldStartCollapsed(guide, "/guide/advanced/tuning"), "nested match expands")
	assert.True(t, ShouldStartCollapsed(guide, "/intro"), "no match stays collapsed")
	assert.True(t, ShouldStartCollapsed(guide, "/guide"), "prefix is not a match")
	assert.True(t, ShouldStartCollapsed(nil, "/guide/setup"))
}

func TestContainsDirectIsShallow(t *testing.T) {
	t.Parallel()

	pages := []Node{Section("Advanced", Leaf("Tuning", "/tuning"))}
	assert.False(t, ContainsDirect(pages, "/tuning"))
	assert.True(t, Contains(pages, "/tuning"))
}

func TestTrail(t *testing.T) {
	t.Parallel()

	tree := learnTree()
	assert.Equal(t, []string{"Learn", "Guide"}, Trail(tree, "/guide/setup"))
	assert.Equal(t, []string{"Learn"}, Trail(tree, "/intro"))
	assert.Nil(t, Trail(tree, "/missing"))
}

func TestTreeLookupAndKeys(t *testing.T) {
	t.Parallel()

	tree := twoSectionTree()
	assert.Equal(t, []string{"a", "b"}, tree.Keys())

	e, ok := tree.Lookup("b")
	require.True(t, ok)
	assert.Equal(t, "B", e.Name)

	_, ok = tree.Lookup("c")
	assert.False(t, ok)
}

func TestMenuClosesOnNavigation(t *testing.T) {
	t.Parallel()

	var m Menu
	m.Navigate("/intro")
	assert.True(t, m.Toggle())

	m.Navigate("/intro")
	assert.True(t, m.Open(), "same path keeps the menu open")

	m.Navigate("/guide/setup")
	assert.False(t, m.Open())
}

func TestLintReportsShadowedLinks(t *testing.T) {
	t.Parallel()

	tree := NewTree(Entry{Key: "learn", Node: Section("Learn",
		Leaf("Home", "/"),
		Leaf("Intro", "/intro"),
		Leaf("Setup", "/setup"),
	)})

	// Prefix matching sends every page to the root entry.
	prev, next := Neighbors(Flatten(tree), "/intro")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "/intro", next.Link)

	issues := Lint(tree)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueShadowedLink, issues[0].Kind)
	assert.Equal(t, "Learn > Home", issues[0].Path)
	assert.Equal(t, "/", issues[0].Link)
	assert.Equal(t, "/intro", issues[0].Shadows)
	assert.Contains(t, issues[0].String(), `prefix of later link "/intro"`)
}

func TestLintShadowedSectionLink(t *testing.T) {
	t.Parallel()

	shadowing := NewTree(Entry{Key: "learn", Node: Section("Learn",
		Leaf("Guide", "/guide"),
		Section("Guide pages", Leaf("Setup", "/guide/setup")),
	)})
	issues := Lint(shadowing)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueShadowedLink, issues[0].Kind)
	assert.Equal(t, "/guide/setup", issues[0].Shadows)

	// A longer link listed first is found before the shorter one.
	ordered := NewTree(Entry{Key: "learn", Node: Section("Learn",
		Leaf("Setup", "/guide/setup"),
		Leaf("Guide", "/guide"),
	)})
	assert.Empty(t, Lint(ordered))
}
