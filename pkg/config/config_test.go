package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gologo.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
title = "my turtle"
width = 800
height = 600

[canvas]
background = "midnightblue"
pen_color = "#ff8800"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Window.Title != "my turtle" || cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Canvas.Background != "midnightblue" || cfg.Canvas.PenColor != "#ff8800" {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	// Keys the file does not mention keep their defaults.
	if cfg.Canvas.Width != 512 || cfg.Repl.Prompt != ">> " {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsNonPositiveCanvas(t *testing.T) {
	path := writeConfig(t, "[canvas]\nwidth = 0\n")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted a zero-width canvas")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{input: "black", expected: color.RGBA{0, 0, 0, 255}},
		{input: "White", expected: color.RGBA{255, 255, 255, 255}},
		{input: "midnightblue", expected: color.RGBA{25, 25, 112, 255}},
		{input: "#ff8800", expected: color.RGBA{255, 136, 0, 255}},
		{input: "#000000", expected: color.RGBA{0, 0, 0, 255}},
		{input: "#12345", wantErr: true},
		{input: "#gggggg", wantErr: true},
		{input: "nosuchcolor", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) succeeded with %v", tt.input, c)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if c != tt.expected {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, c, tt.expected)
			}
		})
	}
}
