package schemer

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL's ambient settings, loadable from an optional
// .schemerrc YAML file in the working directory or $HOME. Grounded in
// MongooseMoo-barn's yaml.v3-backed config loader -- the pack's other
// line-oriented text-protocol service configures itself the same way.
type Config struct {
	Prompt            string `yaml:"prompt"`
	HistoryPath       string `yaml:"history_path"`
	MaxRecursionDepth int    `yaml:"max_recursion_depth"`
}

// DefaultConfig returns the values spec.md names when no .schemerrc is
// present.
func DefaultConfig() Config {
	return Config{
		Prompt:            ">> ",
		HistoryPath:       "~/.schemer_history",
		MaxRecursionDepth: 4096,
	}
}

// LoadConfig reads .schemerrc from the working directory, falling back to
// $HOME/.schemerrc, and overlays it onto DefaultConfig. A missing file is
// not an error -- it simply leaves the defaults in place.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	candidates := []string{".schemerrc"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".schemerrc"))
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	return cfg, nil
}

// ExpandHistoryPath resolves a leading "~" in HistoryPath against $HOME.
func (c Config) ExpandHistoryPath() string {
	if len(c.HistoryPath) > 0 && c.HistoryPath[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, c.HistoryPath[1:])
		}
	}
	return c.HistoryPath
}
