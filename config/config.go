// Package config handles mamba.toml interpreter configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents a mamba.toml configuration file. It supplies defaults
// for the CLI; every field can be overridden by a flag.
type Config struct {
	Keywords  Keywords  `toml:"keywords"`
	Execution Execution `toml:"execution"`

	// Dir is the directory containing the mamba.toml file (set at load time).
	Dir string `toml:"-"`
}

// Keywords configures the keyword remap.
type Keywords struct {
	// Catalog is a path to a keyword catalog file, one word per line.
	// Relative paths resolve against the config file's directory. Empty
	// means the embedded default catalog.
	Catalog string `toml:"catalog"`

	// Seed selects the remap. Nil means no remap.
	Seed *int64 `toml:"seed"`
}

// Execution bounds program runs.
type Execution struct {
	// MaxExecutionTime is a Go duration string, e.g. "5s". Empty means no
	// limit.
	MaxExecutionTime string `toml:"max-execution-time"`

	// Strict makes faults return to the embedding caller instead of being
	// printed to stderr.
	Strict bool `toml:"strict"`
}

// Load parses a mamba.toml file from the given directory.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, "mamba.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	if c.Execution.MaxExecutionTime != "" {
		if _, err := time.ParseDuration(c.Execution.MaxExecutionTime); err != nil {
			return nil, fmt.Errorf("invalid max-execution-time in %s: %w", path, err)
		}
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a mamba.toml file, then loads
// and returns the config. Returns nil if no config is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, "mamba.toml")
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

// CatalogPath returns the absolute path of the configured catalog, or ""
// when the embedded default applies.
func (c *Config) CatalogPath() string {
	if c.Keywords.Catalog == "" {
		return ""
	}
	if filepath.IsAbs(c.Keywords.Catalog) {
		return c.Keywords.Catalog
	}
	return filepath.Join(c.Dir, c.Keywords.Catalog)
}

// MaxExecutionTime returns the configured time limit, zero when unset. Load
// validated the string, so parsing cannot fail here.
func (c *Config) MaxExecutionTime() time.Duration {
	if c.Execution.MaxExecutionTime == "" {
		return 0
	}
	d, _ := time.ParseDuration(c.Execution.MaxExecutionTime)
	return d
}
