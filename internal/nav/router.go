package nav

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrUnknownSet is returned when a navigation set is looked up by a name
// that was never registered.
var ErrUnknownSet = errors.New("unknown navigation set")

// Set is a named navigation tree served for the paths matching Pattern.
// An empty Pattern matches every path.
type Set struct {
	Name    string
	Pattern string
	Tree    *Tree
}

// Matches reports whether path belongs to s.
func (s Set) Matches(path string) bool {
	if s.Pattern == "" {
		return true
	}
	ok, err := doublestar.Match(s.Pattern, path)
	return err == nil && ok
}

// Pages returns the reading sequence of the set's tree.
func (s Set) Pages() []Page {
	return Flatten(s.Tree)
}

// Router picks the navigation set for a path. Sets are tried in the order
// they were registered and the first match wins.
type Router struct {
	sets []Set
}

// NewRouter validates every pattern and returns a router over sets.
func NewRouter(sets ...Set) (*Router, error) {
	seen := make(map[string]bool, len(sets))
	for _, s := range sets {
		if s.Name == "" {
			return nil, fmt.Errorf("navigation set with pattern %q has no name", s.Pattern)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("duplicate navigation set %q", s.Name)
		}
		seen[s.Name] = true
		if s.Pattern != "" && !doublestar.ValidatePattern(s.Pattern) {
			return nil, fmt.Errorf("navigation set %q: invalid pattern %q", s.Name, s.Pattern)
		}
		if s.Tree == nil {
			return nil, fmt.Errorf("navigation set %q has no tree", s.Name)
		}
	}
	return &Router{sets: sets}, nil
}

// Match returns the first set whose pattern matches path.
func (r *Router) Match(path string) (Set, bool) {
	for _, s := range r.sets {
		if s.Matches(path) {
			return s, true
		}
	}
	return Set{}, false
}

// Set returns the set registered under name.
func (r *Router) Set(name string) (Set, error) {
	for _, s := range r.sets {
		if s.Name == name {
			return s, nil
		}
	}
	return Set{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
}

// Sets returns all sets in registration order.
func (r *Router) Sets() []Set {
	out := make([]Set, len(r.sets))
	copy(out, r.sets)
	return out
}

// State is everything a renderer needs for one path: the matched set, the
// sidebar and the previous/next pages.
type State struct {
	Path    string         `json:"path"`
	Set     string         `json:"set"`
	Trail   []string       `json:"trail,omitempty"`
	Prev    *Page          `json:"prev,omitempty"`
	Next    *Page          `json:"next,omitempty"`
	Sidebar []SidebarGroup `json:"sidebar"`
}

// Resolve recomputes the navigation state for path. It is called on every
// navigation event; nothing is cached between calls.
func (r *Router) Resolve(path string) (State, bool) {
	s, ok := r.Match(path)
	if !ok {
		return State{Path: path}, false
	}
	prev, next := Neighbors(s.Pages(), path)
	return State{
		Path:    path,
		Set:     s.Name,
		Trail:   Trail(s.Tree, path),
		Prev:    prev,
		Next:    next,
		Sidebar: BuildSidebar(s.Tree, path),
	}, true
}
