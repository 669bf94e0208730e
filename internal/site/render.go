package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/docnav/docnav/internal/nav"
)

// ErrPageNotFound is returned when a path names no page of its navigation set.
var ErrPageNotFound = errors.New("page not found")

const highlightStyle = "github"

// missingPageHTML stands in for pages listed in the navigation whose markdown
// source does not exist yet.
const missingPageHTML = `<p class="missing-page">This page has not been written yet.</p>`

// Renderer turns markdown sources into full HTML pages carrying the sidebar
// and previous/next links for their navigation set.
type Renderer struct {
	DocsDir   string
	SiteTitle string
	Logo      string // path to an image copied next to the pages

	md     goldmark.Markdown
	policy *bluemonday.Policy
	tmpl   *template.Template
}

// PageView holds the data passed to the HTML template for each page.
type PageView struct {
	Title     string
	SiteTitle string
	Set       string
	Path      string
	Trail     []string
	Content   template.HTML
	Sidebar   template.HTML
	Prev      *nav.Page
	Next      *nav.Page
	LogoFile  string
	Missing   bool
}

// NewRenderer creates a Renderer reading markdown from docsDir.
func NewRenderer(docsDir, siteTitle string) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	// Raw HTML in sources is allowed through goldmark and cleaned here.
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^[\w\s-]+$`)).OnElements("pre", "code", "span", "div")
	policy.AllowAttrs("id").Matching(regexp.MustCompile(`^[\w-]+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &Renderer{
		DocsDir:   docsDir,
		SiteTitle: siteTitle,
		md:        md,
		policy:    policy,
		tmpl:      tmpl,
	}, nil
}

// Markdown converts src to sanitized HTML.
func (r *Renderer) Markdown(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// View builds the page data for the leaf of set whose link is currentPath.
// Trailing slashes are ignored on both sides, so "/guide" and a leaf
// written as "/guide/" name the same page.
func (r *Renderer) View(set nav.Set, currentPath string) (PageView, error) {
	currentPath = normalizePath(currentPath)
	pages := set.Pages()

	page, ok := findPage(pages, currentPath)
	if !ok {
		return PageView{}, fmt.Errorf("%w: %s", ErrPageNotFound, currentPath)
	}

	// Lookups below use the link as written in the tree.
	view := PageView{
		Title:     page.Name,
		SiteTitle: r.SiteTitle,
		Set:       set.Name,
		Path:      currentPath,
		Trail:     nav.Trail(set.Tree, page.Link),
		Sidebar:   template.HTML(SidebarHTML(nav.BuildSidebar(set.Tree, page.Link))),
	}
	if r.Logo != "" {
		view.LogoFile = filepath.Base(r.Logo)
	}
	view.Prev, view.Next = nav.Neighbors(pages, page.Link)

	src, err := os.ReadFile(r.SourcePath(currentPath))
	switch {
	case err == nil:
		if view.Content, err = r.Markdown(src); err != nil {
			return PageView{}, err
		}
	case errors.Is(err, os.ErrNotExist):
		view.Content = missingPageHTML
		view.Missing = true
	default:
		return PageView{}, fmt.Errorf("reading source for %s: %w", currentPath, err)
	}
	return view, nil
}

// RenderPage writes the full HTML page for currentPath to w.
func (r *Renderer) RenderPage(w io.Writer, set nav.Set, currentPath string) (PageView, error) {
	view, err := r.View(set, currentPath)
	if err != nil {
		return view, err
	}
	if err := r.tmpl.Execute(w, view); err != nil {
		return view, fmt.Errorf("executing page template: %w", err)
	}
	return view, nil
}

// SourcePath maps a page link to its markdown file under DocsDir:
// "/guide/setup" reads guide/setup.md, falling back to guide/setup/index.md.
// The root link reads index.md.
func (r *Renderer) SourcePath(link string) string {
	rel := strings.Trim(normalizePath(link), "/")
	if rel == "" {
		return filepath.Join(r.DocsDir, "index.md")
	}
	rel = filepath.FromSlash(rel)
	direct := filepath.Join(r.DocsDir, rel+".md")
	if _, err := os.Stat(direct); err == nil {
		return direct
	}
	index := filepath.Join(r.DocsDir, rel, "index.md")
	if _, err := os.Stat(index); err == nil {
		return index
	}
	return direct
}

// Stylesheet returns the site CSS including the code highlighting classes.
func Stylesheet() (string, error) {
	var b strings.Builder
	b.WriteString(cssContent)
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&b, styles.Get(highlightStyle)); err != nil {
		return "", fmt.Errorf("writing highlight css: %w", err)
	}
	return b.String(), nil
}

// Script returns the site JavaScript.
func Script() string { return jsContent }

// findPage returns the page whose link equals path once both are normalized.
func findPage(pages []nav.Page, path string) (nav.Page, bool) {
	for _, p := range pages {
		if normalizePath(p.Link) == path {
			return p, true
		}
	}
	return nav.Page{}, false
}

// normalizePath drops a trailing slash, keeping "/" itself.
func normalizePath(p string) string {
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}
