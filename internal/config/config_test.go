package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DocsDir != "content" {
		t.Errorf("expected default docs_dir %q, got %q", "content", cfg.DocsDir)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if len(cfg.Navigation) != 2 || cfg.Navigation[1].Pattern != "" {
		t.Errorf("expected reference + catch-all learn navigation, got %+v", cfg.Navigation)
	}

	// Defaults must not share the package-level slice.
	cfg.Navigation[0].Name = "changed"
	if DefaultNavigation[0].Name != "reference" {
		t.Error("DefaultConfig leaked DefaultNavigation")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docnav.yml")

	original := DefaultConfig()
	original.Title = "Solid Docs"
	original.DocsDir = "pages"
	original.Navigation = []NavSet{{Name: "learn", File: "learn.yml"}}
	original.Server.Port = 9000
	original.Log.Format = LogFormatJSON

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.DocsDir != original.DocsDir {
		t.Errorf("docs_dir: got %q, want %q", loaded.DocsDir, original.DocsDir)
	}
	if loaded.Server.Port != original.Server.Port {
		t.Errorf("server.port: got %d, want %d", loaded.Server.Port, original.Server.Port)
	}
	if loaded.Log.Format != LogFormatJSON {
		t.Errorf("log.format: got %q, want %q", loaded.Log.Format, LogFormatJSON)
	}
	// The file names one set; the two defaults must not bleed through.
	if len(loaded.Navigation) != 1 {
		t.Fatalf("navigation length: got %d, want 1", len(loaded.Navigation))
	}
	if loaded.Navigation[0].Name != "learn" || loaded.Navigation[0].File != "learn.yml" {
		t.Errorf("navigation[0] = %+v", loaded.Navigation[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Title != "Documentation" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
	if len(cfg.Navigation) != len(DefaultNavigation) {
		t.Errorf("expected default navigation, got %+v", cfg.Navigation)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCNAV_TITLE", "From Env")
	t.Setenv("DOCNAV_SERVER__PORT", "9100")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Title != "From Env" {
		t.Errorf("env override failed: got %q, want %q", loaded.Title, "From Env")
	}
	if loaded.Server.Port != 9100 {
		t.Errorf("nested env override failed: got %d, want 9100", loaded.Server.Port)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty docs_dir", func(c *Config) { c.DocsDir = "" }},
		{"empty output_dir", func(c *Config) { c.OutputDir = "" }},
		{"no navigation", func(c *Config) { c.Navigation = nil }},
		{"unnamed set", func(c *Config) { c.Navigation[0].Name = "" }},
		{"duplicate set", func(c *Config) { c.Navigation[1].Name = c.Navigation[0].Name }},
		{"set without file", func(c *Config) { c.Navigation[0].File = "" }},
		{"port out of range", func(c *Config) { c.Server.Port = 70000 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadRouter(t *testing.T) {
	dir := t.TempDir()
	learn := filepath.Join(dir, "learn.yml")
	ref := filepath.Join(dir, "reference.yml")

	if err := os.WriteFile(learn, []byte(starterLearnNav), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ref, []byte(starterReferenceNav), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Navigation = []NavSet{
		{Name: "reference", Pattern: "/reference/**", File: ref},
		{Name: "learn", File: learn},
	}

	router, err := cfg.LoadRouter(nil)
	if err != nil {
		t.Fatalf("LoadRouter failed: %v", err)
	}

	set, ok := router.Match("/getting-started/installation")
	if !ok || set.Name != "learn" {
		t.Fatalf("Match = %q, %v; want learn", set.Name, ok)
	}
	if got := len(set.Pages()); got != 3 {
		t.Errorf("learn pages = %d, want 3", got)
	}

	set, ok = router.Match("/reference/overview")
	if !ok || set.Name != "reference" {
		t.Errorf("Match = %q, %v; want reference", set.Name, ok)
	}
}

func TestLoadRouterMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Navigation = []NavSet{{Name: "learn", File: filepath.Join(t.TempDir(), "missing.yml")}}
	if _, err := cfg.LoadRouter(nil); err == nil {
		t.Error("expected error for missing navigation file")
	}
}

func TestWriteStarterNavigation(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "keep.yml")
	if err := os.WriteFile(existing, []byte("mine: {name: Mine, pages: []}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.Navigation = []NavSet{
		{Name: "reference", Pattern: "/reference/**", File: filepath.Join(dir, "nav", "reference.yml")},
		{Name: "learn", File: existing},
	}

	written, err := WriteStarterNavigation(cfg)
	if err != nil {
		t.Fatalf("WriteStarterNavigation failed: %v", err)
	}
	if len(written) != 1 || written[0] != cfg.Navigation[0].File {
		t.Fatalf("written = %v, want only the reference file", written)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "mine: {name: Mine, pages: []}\n" {
		t.Error("existing navigation file was overwritten")
	}
}

func TestNavLayouts(t *testing.T) {
	if len(navLayouts) != 2 {
		t.Fatalf("layouts = %d, want 2", len(navLayouts))
	}
	for _, l := range navLayouts {
		if strings.ContainsRune(l.label, '\u2014') {
			t.Errorf("label %q should use plain punctuation", l.label)
		}
	}
	if sets := navLayouts[0].sets(); len(sets) != 2 || sets[0].Name != "reference" {
		t.Errorf("learn + reference layout = %+v", sets)
	}
	if sets := navLayouts[1].sets(); len(sets) != 1 || sets[0].Name != "learn" || sets[0].Pattern != "" {
		t.Errorf("learn only layout = %+v", sets)
	}
}
