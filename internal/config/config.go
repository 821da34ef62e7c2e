// Package config loads the optional TOML run configuration.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultPath is consulted when no config file is given explicitly.
const DefaultPath = "./accent.toml"

// Config holds the tunable run settings. Command-line flags override
// values loaded from file.
type Config struct {
	// PaletteDir is where colour-list JSON files are looked up.
	PaletteDir string `toml:"palette_dir"`
	// CacheDir overrides the default per-user cache directory.
	CacheDir string `toml:"cache_dir"`
	// SampleLimit bounds the first round's expansion per colour pair.
	SampleLimit int `toml:"sample_limit"`
	// LookupURL prefixes the per-colour inspection links in the output.
	LookupURL string `toml:"lookup_url"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		PaletteDir: ".",
		LookupURL:  "https://www.colorhexa.com/",
	}
}

// Load reads the configuration at path, falling back to defaults when the
// default path does not exist. An explicitly given path must exist.
func Load(path string) (Config, error) {
	conf := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return conf, nil
		}
		return conf, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(content), &conf); err != nil {
		return conf, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return conf, nil
}
