package site

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/docnav/docnav/internal/nav"
)

const maxSearchContent = 2000

// SearchEntry represents a single searchable page in the documentation.
type SearchEntry struct {
	Path    string   `json:"path"`
	Title   string   `json:"title"`
	Set     string   `json:"set"`
	Trail   []string `json:"trail,omitempty"`
	Summary string   `json:"summary"`
	Content string   `json:"content"`
}

// NewSearchEntry builds the search entry for a rendered page view.
func NewSearchEntry(v PageView) SearchEntry {
	summary, text := extractText(string(v.Content))
	if len(text) > maxSearchContent {
		text = text[:maxSearchContent]
	}
	return SearchEntry{
		Path:    v.Path,
		Title:   v.Title,
		Set:     v.Set,
		Trail:   v.Trail,
		Summary: summary,
		Content: text,
	}
}

// SearchIndex renders every page of router without writing it and returns
// the search entries in the order the static build would list them.
func (r *Renderer) SearchIndex(router *nav.Router) ([]SearchEntry, error) {
	jobs := collect(router)
	entries := make([]SearchEntry, 0, len(jobs))
	for _, j := range jobs {
		view, err := r.View(j.set, j.page.Link)
		if err != nil {
			return nil, fmt.Errorf("indexing %s: %w", j.page.Link, err)
		}
		entries = append(entries, NewSearchEntry(view))
	}
	return entries, nil
}

// extractText walks rendered HTML and returns the text of the first
// paragraph and all visible text joined by single spaces.
func extractText(content string) (summary, text string) {
	z := html.NewTokenizer(strings.NewReader(content))

	var (
		all       []string
		para      []string
		inPara    bool
		paraDone  bool
		skipDepth int
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(para, " "), strings.Join(all, " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p":
				if !paraDone {
					inPara = true
				}
			case "script", "style":
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p":
				if inPara {
					inPara = false
					paraDone = len(para) > 0
				}
			case "script", "style":
				if skipDepth > 0 {
					skipDepth--
				}
			}
		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			words := strings.Fields(string(z.Text()))
			if len(words) == 0 {
				continue
			}
			chunk := strings.Join(words, " ")
			all = append(all, chunk)
			if inPara {
				para = append(para, chunk)
			}
		}
	}
}

// WriteSearchIndex writes the search index as JSON to the given path.
func WriteSearchIndex(entries []SearchEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
