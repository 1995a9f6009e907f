// Package config resolves the layout knobs for a formatting run: the
// nearest svfmt.toml walking up from the target, with built-in defaults
// for anything the file does not set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the config file looked up next to (or above) the
// formatted sources.
const ManifestName = "svfmt.toml"

// Config holds the layout knobs. The zero value is not usable; start from
// Default and overlay file and flag values on top.
type Config struct {
	LineLimit   int `toml:"line_limit"`
	AlignColumn int `toml:"align_column"`
	IndentWidth int `toml:"indent_width"`
}

// Default returns the built-in layout: 100-column lines, declaration names
// anchored at column 50, two-space indents.
func Default() Config {
	return Config{LineLimit: 100, AlignColumn: 50, IndentWidth: 2}
}

// Validate rejects values that cannot produce sensible layout.
func (c Config) Validate() error {
	if c.LineLimit <= 0 {
		return fmt.Errorf("config: line_limit must be positive, got %d", c.LineLimit)
	}
	if c.AlignColumn <= 0 {
		return fmt.Errorf("config: align_column must be positive, got %d", c.AlignColumn)
	}
	if c.AlignColumn >= c.LineLimit {
		return fmt.Errorf("config: align_column (%d) must be below line_limit (%d)",
			c.AlignColumn, c.LineLimit)
	}
	if c.IndentWidth <= 0 {
		return fmt.Errorf("config: indent_width must be positive, got %d", c.IndentWidth)
	}
	return nil
}

// Find walks up from startDir to locate the nearest svfmt.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads one svfmt.toml. Keys the file omits keep their defaults;
// keys the decoder does not recognize are an error so typos fail loudly.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: unknown keys in %s: %s",
			path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w (in %s)", err, path)
	}
	return cfg, nil
}

// ForDir resolves the effective config for files under dir: the nearest
// manifest walking up, or the defaults when none exists. The returned path
// is empty when the defaults apply.
func ForDir(dir string) (Config, string, error) {
	path, ok, err := Find(dir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
