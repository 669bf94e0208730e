package config

// DefaultNavigation serves a reference tree under /reference and a learn
// tree everywhere else.
var DefaultNavigation = []NavSet{
	{Name: "reference", Pattern: "/reference/**", File: "nav/reference.yml"},
	{Name: "learn", File: "nav/learn.yml"},
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	nav := make([]NavSet, len(DefaultNavigation))
	copy(nav, DefaultNavigation)
	return &Config{
		Title:      "Documentation",
		DocsDir:    "content",
		OutputDir:  "dist",
		Navigation: nav,
		Server: ServerConfig{
			Port: 8080,
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
