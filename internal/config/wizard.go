package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// starterLearnNav is written when the learn tree file does not exist yet.
const starterLearnNav = `learn:
  name: Learn
  pages:
    - name: Introduction
      link: /intro
    - name: Getting Started
      pages:
        - name: Installation
          link: /getting-started/installation
        - name: Quick Start
          link: /getting-started/quick-start
`

const starterReferenceNav = `api:
  name: API Reference
  pages:
    - name: Overview
      link: /reference/overview
`

// RunWizard runs an interactive configuration wizard, saves the result to
// path and writes starter navigation files that do not exist yet.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docnav! Let's configure your documentation site.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: siteTitleGuess(),
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}

	// 2. Markdown source directory.
	docsPrompt := promptui.Prompt{
		Label:   "Directory holding markdown pages",
		Default: defaults.DocsDir,
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}

	// 3. Build output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built site",
		Default: defaults.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Navigation layout.
	labels := make([]string, len(navLayouts))
	for i, l := range navLayouts {
		labels[i] = l.label
	}
	layoutPrompt := promptui.Select{
		Label: "Navigation layout",
		Items: labels,
	}
	layoutIdx, _, err := layoutPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation layout: %w", err)
	}
	navigation := navLayouts[layoutIdx].sets()

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Port for docnav server",
		Default: strconv.Itoa(defaults.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n < 1 || n > 65535 {
				return errors.New("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(strings.TrimSpace(portStr))

	cfg := &Config{
		Title:      strings.TrimSpace(title),
		DocsDir:    strings.TrimSpace(docsDir),
		OutputDir:  strings.TrimSpace(outputDir),
		Navigation: navigation,
		Server:     ServerConfig{Port: port},
		Log:        defaults.Log,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	written, err := WriteStarterNavigation(cfg)
	if err != nil {
		return nil, err
	}
	for _, f := range written {
		fmt.Printf("Starter navigation written to %s\n", f)
	}
	return cfg, nil
}

// WriteStarterNavigation creates any navigation file of cfg that is missing,
// using a small example tree. It returns the files it wrote.
func WriteStarterNavigation(cfg *Config) ([]string, error) {
	var written []string
	for _, ns := range cfg.Navigation {
		if _, err := os.Stat(ns.File); err == nil {
			continue
		}
		content := starterLearnNav
		if ns.Pattern != "" {
			content = starterReferenceNav
		}
		if err := os.MkdirAll(filepath.Dir(ns.File), 0o755); err != nil {
			return written, fmt.Errorf("creating %s: %w", filepath.Dir(ns.File), err)
		}
		if err := os.WriteFile(ns.File, []byte(content), 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", ns.File, err)
		}
		written = append(written, ns.File)
	}
	return written, nil
}

// siteTitleGuess derives a title from the working directory name.
func siteTitleGuess() string {
	wd, err := os.Getwd()
	if err != nil {
		return "Documentation"
	}
	name := filepath.Base(wd)
	if name == "." || name == "/" || name == "" {
		return "Documentation"
	}
	return name
}

// navLayouts are the navigation layouts offered by the wizard.
var navLayouts = []struct {
	label string
	sets  func() []NavSet
}{
	{"learn + reference: separate sidebar under /reference", func() []NavSet { return DefaultConfig().Navigation }},
	{"learn only: one sidebar for every page", func() []NavSet { return []NavSet{{Name: "learn", File: "nav/learn.yml"}} }},
}
