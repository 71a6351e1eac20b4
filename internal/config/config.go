// Package config loads the stylemap configuration from TOML and
// watches it for live theme reloads.
package config

import (
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/stylemap/internal/style/core"
)

// Config holds all configurable values.
type Config struct {
	Theme   Theme   `toml:"theme"`
	Font    Font    `toml:"font"`
	Styles  Styles  `toml:"styles"`
	Logging Logging `toml:"logging"`
}

// Theme configures theme-wide colors.
type Theme struct {
	// Foreground is the default text color as a #rrggbb hex string.
	Foreground string `toml:"foreground"`
}

// Font configures the base font all style variants derive from.
type Font struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
}

// Styles configures registry behavior.
type Styles struct {
	// Reserved is the number of protocol-owned built-in style
	// identifiers.
	Reserved int `toml:"reserved"`
}

// Logging configures the diagnostic logger.
type Logging struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme:   Theme{Foreground: "#eaeaea"},
		Font:    Font{Family: "Menlo", Size: 14},
		Styles:  Styles{Reserved: core.DefaultReserved},
		Logging: Logging{Level: "info"},
	}
}

// Load reads the configuration at path, layered over the defaults. A
// missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.Styles.Reserved < 0 {
		return Default(), fmt.Errorf("config file %s: styles.reserved must not be negative", path)
	}
	return cfg, nil
}

// ForegroundColor parses the theme foreground into an ARGB color. An
// unparsable value falls back to the default theme foreground.
func (c Config) ForegroundColor() core.Color {
	col, err := colorful.Hex(c.Theme.Foreground)
	if err != nil {
		col, _ = colorful.Hex(Default().Theme.Foreground)
	}
	r, g, b := col.RGB255()
	return core.ARGB(0xff, r, g, b)
}
