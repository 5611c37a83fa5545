package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultScene(t *testing.T) {
	cfg := Default()
	if len(cfg.Orbits) != 4 {
		t.Fatalf("orbits = %d, want 4", len(cfg.Orbits))
	}
	if cfg.LabelCount() != 7 {
		t.Fatalf("labels = %d, want 7", cfg.LabelCount())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LabelCount() != Default().LabelCount() {
		t.Fatal("empty path did not return the default scene")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	doc := `
window:
  width: 640
camera:
  projection: perspective
orbits:
  - rotation: [10, 20, 30]
    labels:
      - text: Alpha
        pos: 0.25
        color: "#0af"
      - text: Beta
        pos: 0.75
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 800 || cfg.Window.Title != "oxy-orbits" {
		t.Fatalf("window = %+v, want defaults filled", cfg.Window)
	}
	if cfg.Camera.Projection != "perspective" || cfg.Camera.Zoom != 1 {
		t.Fatalf("camera = %+v", cfg.Camera)
	}
	if len(cfg.Orbits) != 1 || cfg.Orbits[0].Rotation != [3]float64{10, 20, 30} {
		t.Fatalf("orbits = %+v", cfg.Orbits)
	}
	if l := cfg.Orbits[0].Labels[0]; l.Text != "Alpha" || l.Pos != 0.25 || l.Color != "#0af" {
		t.Fatalf("label = %+v", l)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty text", "orbits:\n  - labels:\n      - text: \"\"\n        pos: 0.1\n"},
		{"bad color", "orbits:\n  - labels:\n      - text: A\n        color: teal\n"},
		{"bad projection", "camera:\n  projection: fisheye\n"},
		{"negative zoom", "camera:\n  zoom: -2\n"},
		{"negative size", "window:\n  width: -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("orbits: [\n"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want a parse error", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#eee", color.RGBA{0xee, 0xee, 0xee, 0xff}, false},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}, false},
		{"red", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
