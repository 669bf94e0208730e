package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/docnav/docnav/internal/nav"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCNAV_*). A double underscore in the
// variable name descends one level: DOCNAV_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Slices decode on top of existing elements, so the default navigation
	// is only restored when the file does not name any.
	defaultNav := cfg.Navigation
	cfg.Navigation = nil

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("DOCNAV_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "DOCNAV_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if len(cfg.Navigation) == 0 {
		cfg.Navigation = defaultNav
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if len(c.Navigation) == 0 {
		return fmt.Errorf("at least one navigation set is required")
	}
	seen := make(map[string]bool)
	for i, s := range c.Navigation {
		if s.Name == "" {
			return fmt.Errorf("navigation[%d]: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("navigation[%d]: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true
		if s.File == "" {
			return fmt.Errorf("navigation %q: file is required", s.Name)
		}
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	switch c.Log.Format {
	case "", LogFormatJSON, LogFormatConsole:
	default:
		return fmt.Errorf("invalid log.format %q: must be one of json, console", c.Log.Format)
	}

	return nil
}

// LoadRouter reads every navigation file named in c and builds the router
// that picks a tree per path. Structural problems in a tree are logged and
// do not fail the load.
func (c *Config) LoadRouter(logger *zap.Logger) (*nav.Router, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	sets := make([]nav.Set, 0, len(c.Navigation))
	for _, ns := range c.Navigation {
		data, err := os.ReadFile(ns.File)
		if err != nil {
			return nil, fmt.Errorf("reading navigation %q: %w", ns.Name, err)
		}
		tree, err := nav.ParseTree(data)
		if err != nil {
			return nil, fmt.Errorf("navigation %q (%s): %w", ns.Name, ns.File, err)
		}
		for _, issue := range nav.Lint(tree) {
			logger.Warn("navigation tree issue",
				zap.String("set", ns.Name),
				zap.String("file", ns.File),
				zap.String("kind", string(issue.Kind)),
				zap.String("detail", issue.String()),
			)
		}
		sets = append(sets, nav.Set{Name: ns.Name, Pattern: ns.Pattern, Tree: tree})
	}
	return nav.NewRouter(sets...)
}
