package content

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/docnav/docnav/internal/nav"
)

// DefaultExcludes are directory names skipped during a scan.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	".docnav",
	"dist",
}

// Source is one markdown file under the docs directory.
type Source struct {
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the docs directory.
	Link    string // Site path the file is served under.
	Size    int64
}

// ScanConfig controls the behaviour of Scan.
type ScanConfig struct {
	RootDir string
	Exclude []string // doublestar patterns matched against RelPath
}

// Scan walks config.RootDir and returns every markdown source, sorted by
// link. A missing root yields no sources.
func Scan(config ScanConfig) ([]Source, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("content: resolve root: %w", err)
	}

	var sources []Source
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return filepath.SkipDir
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || excludedDir(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		sources = append(sources, Source{
			Path:    path,
			RelPath: relPath,
			Link:    LinkFor(relPath),
			Size:    info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: traversal: %w", err)
	}

	sort.Slice(sources, func(i, j int) bool { return sources[i].Link < sources[j].Link })
	return sources, nil
}

// LinkFor maps a markdown path relative to the docs directory to the link
// it is served under: "guide/setup.md" and "guide/setup/index.md" both
// become "/guide/setup", and "index.md" becomes "/".
func LinkFor(relPath string) string {
	p := strings.TrimSuffix(filepath.ToSlash(relPath), filepath.Ext(relPath))
	if p == "index" {
		return "/"
	}
	p = strings.TrimSuffix(p, "/index")
	return "/" + p
}

// Orphans returns the sources whose link is not listed by any set of
// router. Such pages are never rendered.
func Orphans(sources []Source, router *nav.Router) []Source {
	listed := make(map[string]bool)
	for _, s := range router.Sets() {
		for _, p := range s.Pages() {
			link := p.Link
			if len(link) > 1 {
				link = strings.TrimSuffix(link, "/")
			}
			listed[link] = true
		}
	}
	var out []Source
	for _, src := range sources {
		if !listed[src.Link] {
			out = append(out, src)
		}
	}
	return out
}

// MatchesExclude reports whether relPath, or its base name, matches any of
// the exclude patterns.
func MatchesExclude(relPath string, patterns []string) bool {
	normalized := filepath.ToSlash(relPath)
	base := filepath.Base(normalized)
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}

func excludedDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}
