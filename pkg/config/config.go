// Package config loads frontend settings from TOML files, with sensible
// defaults when no file is given.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/colornames"
)

// Config drives the frontends; the language core takes no configuration.
type Config struct {
	Window Window `toml:"window"`
	Canvas Canvas `toml:"canvas"`
	Repl   Repl   `toml:"repl"`
}

// Window configures the desktop frontend's window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Canvas configures the drawing surface shared by both frontends.
// Colors are SVG 1.1 names ("white", "midnightblue") or #rrggbb hex.
type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	PenColor   string `toml:"pen_color"`
}

// Repl configures the interactive shell.
type Repl struct {
	Prompt string `toml:"prompt"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Window: Window{Title: "gologo", Width: 512, Height: 512},
		Canvas: Canvas{Width: 512, Height: 512, Background: "white", PenColor: "black"},
		Repl:   Repl{Prompt: ">> "},
	}
}

// Load reads a TOML file over the defaults, so partial files only
// override the keys they mention.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 {
		return Config{}, fmt.Errorf("loading config %s: canvas size must be positive", path)
	}
	return cfg, nil
}

// ParseColor resolves a color name via the SVG color table, or a #rrggbb
// hex triplet.
func ParseColor(s string) (color.RGBA, error) {
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) != 6 {
			return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
		}
		return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color name %q", s)
}
