package nav

import (
	"fmt"
	"strings"
)

// IssueKind classifies a Lint finding.
type IssueKind string

const (
	IssueDegenerate    IssueKind = "degenerate"
	IssueAmbiguous     IssueKind = "ambiguous"
	IssueDuplicateLink IssueKind = "duplicate_link"
	IssueEmptyLink     IssueKind = "empty_link"
	IssueShadowedLink  IssueKind = "shadowed_link"
)

// Issue is a structural problem found in a tree. None of them stop the tree
// from being flattened or rendered.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Path    string    `json:"path"` // section names joined by " > "
	Link    string    `json:"link,omitempty"`
	Shadows string    `json:"shadows,omitempty"` // first later link hidden by Link
}

func (i Issue) String() string {
	switch i.Kind {
	case IssueDegenerate:
		return fmt.Sprintf("%s: node has neither link nor pages, treated as an empty section", i.Path)
	case IssueAmbiguous:
		return fmt.Sprintf("%s: node has both link and pages, link ignored", i.Path)
	case IssueDuplicateLink:
		return fmt.Sprintf("%s: link %q already used by an earlier page", i.Path, i.Link)
	case IssueEmptyLink:
		return fmt.Sprintf("%s: page has an empty link and matches every path", i.Path)
	case IssueShadowedLink:
		return fmt.Sprintf("%s: link %q is a prefix of later link %q, so later pages resolve to this one", i.Path, i.Link, i.Shadows)
	}
	return i.Path
}

// Lint walks t and reports malformed nodes and problem links. Locate picks
// the first page whose link prefixes the current path, so "/" or "/guide"
// listed before "/guide/setup" hides every later page it prefixes.
func Lint(t *Tree) []Issue {
	if t == nil {
		return nil
	}
	l := linter{seen: make(map[string]bool)}
	for _, e := range t.Sections {
		name := e.Name
		if name == "" {
			name = e.Key
		}
		l.walk(e.Node, []string{name})
	}
	l.shadowed()
	return l.issues
}

type linter struct {
	seen   map[string]bool
	issues []Issue
	leaves []Issue
}

func (l *linter) shadowed() {
	for i, a := range l.leaves {
		if a.Link == "" {
			continue
		}
		for _, b := range l.leaves[i+1:] {
			if b.Link != a.Link && strings.HasPrefix(b.Link, a.Link) {
				l.issues = append(l.issues, Issue{Kind: IssueShadowedLink, Path: a.Path, Link: a.Link, Shadows: b.Link})
				break
			}
		}
	}
}

func (l *linter) walk(n Node, path []string) {
	where := strings.Join(path, " > ")
	if n.IsLeaf() {
		switch {
		case n.Link == "":
			l.issues = append(l.issues, Issue{Kind: IssueEmptyLink, Path: where})
		case l.seen[n.Link]:
			l.issues = append(l.issues, Issue{Kind: IssueDuplicateLink, Path: where, Link: n.Link})
		}
		l.seen[n.Link] = true
		l.leaves = append(l.leaves, Issue{Path: where, Link: n.Link})
		return
	}
	if n.degenerate {
		l.issues = append(l.issues, Issue{Kind: IssueDegenerate, Path: where})
	}
	if n.ambiguous {
		l.issues = append(l.issues, Issue{Kind: IssueAmbiguous, Path: where})
	}
	for _, child := range n.Pages {
		l.walk(child, append(path, child.Name))
	}
}
