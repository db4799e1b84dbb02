package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ColorMode controls ANSI color output
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default)
	ColorAlways ColorMode = "always" // Force colors on
	ColorNever  ColorMode = "never"  // Disable colors entirely
)

// DefaultExtensions is the accepted image extension list
const DefaultExtensions = "png,jpg,jpeg,webp"

// DefaultRoots are the game client's card asset folders, relative to the
// web client directory. Used only when neither arguments nor the config
// file name any roots.
var DefaultRoots = []string{
	"public/assets/cards/Pixel_Cards_FREE/Sprites",
	"public/assets/cards",
}

// Config represents the application configuration
type Config struct {
	Roots      []string  `toml:"roots"`
	Extensions []string  `toml:"extensions"`
	Recursive  bool      `toml:"recursive"`
	Color      ColorMode `toml:"color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Roots:      append([]string(nil), DefaultRoots...),
		Extensions: strings.Split(DefaultExtensions, ","),
		Recursive:  true,
		Color:      ColorAuto,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardrename", "config.toml")
}

// Load reads the config file at path. An empty path means the default
// location. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetConfigFilePath()
	}

	config := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

// Validate checks field values
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		c.Color = ColorAuto
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

// Write creates the config file at path with the given config, creating
// parent directories as needed
func Write(path string, config *Config) error {
	if path == "" {
		path = GetConfigFilePath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	return Encode(file, config)
}

// Encode writes config as TOML
func Encode(w io.Writer, config *Config) error {
	if err := toml.NewEncoder(w).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// ExtensionSet is a set of lowercase file extensions with a leading dot
type ExtensionSet map[string]struct{}

// ParseExtensions builds an ExtensionSet from entries like "png", ".JPG" or
// a comma separated list. Blank entries are ignored.
func ParseExtensions(entries ...string) ExtensionSet {
	set := make(ExtensionSet)
	for _, entry := range entries {
		for _, e := range strings.Split(entry, ",") {
			e = strings.TrimLeft(strings.ToLower(strings.TrimSpace(e)), ".")
			if e == "" {
				continue
			}
			set["."+e] = struct{}{}
		}
	}
	return set
}

// Contains reports whether ext (with leading dot) is in the set, ignoring case
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[strings.ToLower(ext)]
	return ok
}
