package config

// LogFormat selects the zap encoder.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// Config is the top-level docnav configuration, corresponding to .docnav.yml.
type Config struct {
	Title      string       `yaml:"title" koanf:"title"`
	DocsDir    string       `yaml:"docs_dir" koanf:"docs_dir"`
	OutputDir  string       `yaml:"output_dir" koanf:"output_dir"`
	Logo       string       `yaml:"logo,omitempty" koanf:"logo"`
	Exclude    []string     `yaml:"exclude,omitempty" koanf:"exclude"` // markdown left out of the orphan check
	Navigation []NavSet     `yaml:"navigation" koanf:"navigation"`
	Server     ServerConfig `yaml:"server" koanf:"server"`
	Log        LogConfig    `yaml:"log" koanf:"log"`
}

// NavSet binds a navigation tree file to the paths it serves. Sets are
// matched in order; an empty pattern catches every path.
type NavSet struct {
	Name    string `yaml:"name" koanf:"name"`
	Pattern string `yaml:"pattern,omitempty" koanf:"pattern"`
	File    string `yaml:"file" koanf:"file"`
}

// ServerConfig holds settings for the live documentation server.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}
