// Package config loads and validates the convopairs TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"convopairs/pkg/corpus"
)

//go:embed sample_config.toml
var sampleConfig string

// Cornell contains settings for the auto-provisioned Cornell corpus.
type Cornell struct {
	URL      string `toml:"url"`
	Decoding string `toml:"decoding"`
}

// Ubuntu contains settings for the manually provisioned Ubuntu corpus.
type Ubuntu struct {
	Dir string `toml:"dir"` // empty means <data_dir>/ubuntu_dialog_corpus
}

// Extract contains defaults for the extract command.
type Extract struct {
	TestFraction float64 `toml:"test_fraction"`
	Seed         uint64  `toml:"seed"` // 0 means non-deterministic
}

// Config is the root configuration document. The data directory is an
// explicit value threaded into the corpus constructors; nothing is created
// at load time.
type Config struct {
	DataDir     string  `toml:"data_dir"`
	CatalogPath string  `toml:"catalog_path"` // empty means <data_dir>/convopairs.db
	LogLevel    string  `toml:"log_level"`
	Cornell     Cornell `toml:"cornell"`
	Ubuntu      Ubuntu  `toml:"ubuntu"`
	Extract     Extract `toml:"extract"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		DataDir:  "data",
		LogLevel: "info",
		Cornell: Cornell{
			URL:      corpus.CornellURL,
			Decoding: "lenient",
		},
		Extract: Extract{TestFraction: 0.1},
	}
}

// Load reads the TOML file at path, layered over defaults. A missing file
// is not an error when path is empty (the default location may simply not
// exist yet); an explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return "convopairs.toml"
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must be set")
	}
	if c.Extract.TestFraction < 0 || c.Extract.TestFraction > 1 {
		return fmt.Errorf("extract.test_fraction must be in [0,1], got %v", c.Extract.TestFraction)
	}
	if _, err := corpus.ParseDecodePolicy(c.Cornell.Decoding); err != nil {
		return fmt.Errorf("cornell.decoding: %w", err)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", c.LogLevel)
	}
	return nil
}

// UbuntuDir resolves the Ubuntu corpus directory against the data dir.
func (c *Config) UbuntuDir() string {
	if c.Ubuntu.Dir != "" {
		return c.Ubuntu.Dir
	}
	return filepath.Join(c.DataDir, "ubuntu_dialog_corpus")
}

// CatalogFile resolves the run catalog path against the data dir.
func (c *Config) CatalogFile() string {
	if c.CatalogPath != "" {
		return c.CatalogPath
	}
	return filepath.Join(c.DataDir, "convopairs.db")
}

// DecodePolicy returns the parsed Cornell decoding policy. Validate has
// already rejected unknown values by the time this is called.
func (c *Config) DecodePolicy() corpus.DecodePolicy {
	p, _ := corpus.ParseDecodePolicy(c.Cornell.Decoding)
	return p
}

// Sample returns the annotated sample configuration document.
func Sample() string { return sampleConfig }
