package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/nav"
	"github.com/docnav/docnav/internal/progress"
)

// Generator writes a static site: one page per leaf of every navigation set.
type Generator struct {
	Renderer  *Renderer
	Router    *nav.Router
	OutputDir string
	Logger    *zap.Logger
	Progress  progress.Reporter
}

// NewGenerator creates a Generator with a no-op logger and progress.
func NewGenerator(renderer *Renderer, router *nav.Router, outputDir string) *Generator {
	return &Generator{
		Renderer:  renderer,
		Router:    router,
		OutputDir: outputDir,
		Logger:    zap.NewNop(),
		Progress:  progress.Nop{},
	}
}

type job struct {
	set  nav.Set
	page nav.Page
}

// Generate builds the full static site. Returns the number of pages generated.
func (g *Generator) Generate() (int, error) {
	jobs := collect(g.Router)
	if len(jobs) == 0 {
		return 0, fmt.Errorf("navigation has no pages")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	css, err := Stylesheet()
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(css), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(Script()), 0o644); err != nil {
		return 0, err
	}
	if g.Renderer.Logo != "" {
		if err := copyFile(g.Renderer.Logo, filepath.Join(g.OutputDir, filepath.Base(g.Renderer.Logo))); err != nil {
			return 0, fmt.Errorf("copying logo: %w", err)
		}
	}

	g.Progress.Start(len(jobs))
	entries := make([]SearchEntry, 0, len(jobs))
	hasRoot := false
	for i, j := range jobs {
		view, err := g.renderPage(j)
		if err != nil {
			g.Progress.Finish()
			return 0, fmt.Errorf("rendering %s: %w", j.page.Link, err)
		}
		if view.Missing {
			g.Logger.Warn("markdown source missing, rendered placeholder",
				zap.String("link", j.page.Link),
				zap.String("source", g.Renderer.SourcePath(j.page.Link)),
			)
		}
		if view.Path == "/" {
			hasRoot = true
		}
		entries = append(entries, NewSearchEntry(view))
		g.Progress.Update(i+1, j.page.Link)
	}
	g.Progress.Finish()

	if err := WriteSearchIndex(entries, filepath.Join(g.OutputDir, "search-index.json")); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	if !hasRoot {
		if err := g.writeRootRedirect(); err != nil {
			return 0, err
		}
	}

	g.Logger.Info("site generated",
		zap.String("output", g.OutputDir),
		zap.Int("pages", len(jobs)),
	)
	return len(jobs), nil
}

// collect lists every leaf page once, in set order then reading order. A
// link listed by several sets is rendered with the set the router would
// pick for it, so the static site agrees with the live server.
func collect(router *nav.Router) []job {
	seen := make(map[string]bool)
	var jobs []job
	for _, s := range router.Sets() {
		for _, p := range s.Pages() {
			link := normalizePath(p.Link)
			if seen[link] {
				continue
			}
			seen[link] = true
			set := s
			if m, ok := router.Match(link); ok {
				if _, found := findPage(m.Pages(), link); found {
					set = m
				}
			}
			jobs = append(jobs, job{set: set, page: p})
		}
	}
	return jobs
}

func (g *Generator) renderPage(j job) (PageView, error) {
	var buf bytes.Buffer
	view, err := g.Renderer.RenderPage(&buf, j.set, j.page.Link)
	if err != nil {
		return view, err
	}
	outPath := OutputPath(g.OutputDir, view.Path)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return view, err
	}
	return view, os.WriteFile(outPath, buf.Bytes(), 0o644)
}

// writeRootRedirect points "/" at the first page of the set serving it.
func (g *Generator) writeRootRedirect() error {
	var target string
	if s, ok := g.Router.Match("/"); ok {
		if pages := s.Pages(); len(pages) > 0 {
			target = pages[0].Link
		}
	}
	if target == "" {
		for _, s := range g.Router.Sets() {
			if pages := s.Pages(); len(pages) > 0 {
				target = pages[0].Link
				break
			}
		}
	}
	var buf bytes.Buffer
	if err := redirectTmpl.Execute(&buf, target); err != nil {
		return fmt.Errorf("rendering root redirect: %w", err)
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "index.html"), buf.Bytes(), 0o644)
}

var redirectTmpl = template.Must(template.New("redirect").Parse(redirectTemplate))

// OutputPath maps a page link to its index.html under outputDir, so
// "/guide/setup" is served from guide/setup/index.html.
func OutputPath(outputDir, link string) string {
	rel := strings.Trim(normalizePath(link), "/")
	if rel == "" {
		return filepath.Join(outputDir, "index.html")
	}
	return filepath.Join(outputDir, filepath.FromSlash(rel), "index.html")
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
