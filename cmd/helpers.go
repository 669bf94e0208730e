package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/docnav/docnav/internal/config"
	"github.com/docnav/docnav/internal/content"
	"github.com/docnav/docnav/internal/logging"
	"github.com/docnav/docnav/internal/nav"
	"github.com/docnav/docnav/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger configured in cfg; --verbose forces debug.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(level, string(cfg.Log.Format))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return logger, nil
}

// setup loads the config, the logger and every navigation set.
func setup() (*config.Config, *zap.Logger, *nav.Router, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	router, err := cfg.LoadRouter(logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading navigation: %w", err)
	}
	return cfg, logger, router, nil
}

func newRenderer(cfg *config.Config) (*site.Renderer, error) {
	renderer, err := site.NewRenderer(cfg.DocsDir, cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}
	renderer.Logo = cfg.Logo
	return renderer, nil
}

// orphanSources lists markdown files under the docs directory that no
// navigation set links to.
func orphanSources(cfg *config.Config, router *nav.Router) ([]content.Source, error) {
	sources, err := content.Scan(content.ScanConfig{RootDir: cfg.DocsDir, Exclude: cfg.Exclude})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", cfg.DocsDir, err)
	}
	return content.Orphans(sources, router), nil
}
