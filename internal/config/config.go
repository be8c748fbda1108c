// Package config loads optional regctl defaults from a TOML file. Flags
// always win over the file; the file only moves repeated flags out of the
// command line.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds regctl defaults.
type Config struct {
	// IgnoreCase makes case-insensitive lookups the default.
	IgnoreCase bool `toml:"ignore_case"`

	// Strict surfaces parse warnings instead of dropping malformed lines.
	Strict bool `toml:"strict"`

	// Backup writes a .bak copy of the destination before replacing it.
	Backup bool `toml:"backup"`

	// Encoding declares the input encoding when the file carries no BOM.
	Encoding string `toml:"encoding"`

	// OutFile redirects writes away from the input file.
	OutFile string `toml:"registry_filename_out"`
}

// Load reads the config file at path. A missing file yields the zero config;
// a present but unparsable file is an error.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the conventional config location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "regctl.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "regctl", "regctl.toml")
}
