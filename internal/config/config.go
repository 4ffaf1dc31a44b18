package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the branch naming scheme
const (
	DefaultPrefix    = "ZUP-"
	DefaultSuffixPrd = "-prd"
	DefaultSuffixHml = "-hml"
)

// Config holds the branch naming scheme and display settings. Loaded once
// per invocation and passed into the pipeline; never mutated afterwards.
type Config struct {
	Prefix    string `toml:"prefix"`
	SuffixPrd string `toml:"suffix_prd"`
	SuffixHml string `toml:"suffix_hml"`
	Color     bool   `toml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Prefix:    DefaultPrefix,
		SuffixPrd: DefaultSuffixPrd,
		SuffixHml: DefaultSuffixHml,
		Color:     true,
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "zpick.toml"), nil
}

// Load reads the per-user config file. A missing file, a malformed file or
// unset fields all fall back to defaults; a malformed file additionally
// prints a diagnostic to stderr but is never fatal.
func Load() *Config {
	path, err := configPath()
	if err != nil {
		return DefaultConfig()
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit path, for tests.
func LoadFrom(path string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var file fileConfig
	if err := toml.Unmarshal(data, &file); err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring malformed config %s: %v\n", path, err)
		return cfg
	}

	// Field-by-field fallback: only set fields override defaults
	if file.Prefix != nil {
		cfg.Prefix = *file.Prefix
	}
	if file.SuffixPrd != nil {
		cfg.SuffixPrd = *file.SuffixPrd
	}
	if file.SuffixHml != nil {
		cfg.SuffixHml = *file.SuffixHml
	}
	if file.Color != nil {
		cfg.Color = *file.Color
	}

	return cfg
}

// fileConfig mirrors Config with optional fields so absent keys can be told
// apart from zero values.
type fileConfig struct {
	Prefix    *string `toml:"prefix"`
	SuffixPrd *string `toml:"suffix_prd"`
	SuffixHml *string `toml:"suffix_hml"`
	Color     *bool   `toml:"color"`
}

// Save writes the config to the per-user location, creating the directory
// if needed.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo is Save with an explicit path, for tests.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ValidKeys are the keys accepted by Set.
var ValidKeys = []string{"prefix", "suffix_prd", "suffix_hml", "color"}

// Set assigns a single configuration key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "prefix", "suffix_prd", "suffix_hml":
		if value == "" {
			return fmt.Errorf("%s cannot be empty", key)
		}
		if key == "prefix" {
			c.Prefix = value
		} else if key == "suffix_prd" {
			c.SuffixPrd = value
		} else {
			c.SuffixHml = value
		}
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be true or false, got %q", value)
		}
		c.Color = b
	default:
		return fmt.Errorf("unknown configuration key %q (valid: %s)", key, strings.Join(ValidKeys, ", "))
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "prefix = %q\n", c.Prefix)
	fmt.Fprintf(&b, "suffix_prd = %q\n", c.SuffixPrd)
	fmt.Fprintf(&b, "suffix_hml = %q\n", c.SuffixHml)
	fmt.Fprintf(&b, "color = %v", c.Color)
	return b.String()
}
