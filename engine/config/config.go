// Package config loads the orbit scene description. A scene is an ordered list of orbits, each
// with a static tilt and the labels that travel along it. Files are YAML; an empty path yields
// the built-in scene.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-orbits/common"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid scene")

// LabelConfig describes one label on an orbit.
type LabelConfig struct {
	Text  string  `yaml:"text"`            // Chip text and registry key
	Pos   float64 `yaml:"pos"`             // Starting position on the path, in [0, 1]
	Color string  `yaml:"color,omitempty"` // Optional chip color, "#rgb" or "#rrggbb"
}

// OrbitConfig describes one orbit ring.
type OrbitConfig struct {
	Rotation [3]float64    `yaml:"rotation"` // Static tilt in degrees around X, Y and Z
	Labels   []LabelConfig `yaml:"labels"`
}

// WindowConfig sizes the host surface.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// CameraConfig selects the projection.
type CameraConfig struct {
	Projection string  `yaml:"projection"` // "orthographic" or "perspective"
	Zoom       float64 `yaml:"zoom"`
}

// SceneConfig is the root of a scene file.
type SceneConfig struct {
	Window WindowConfig  `yaml:"window"`
	Camera CameraConfig  `yaml:"camera"`
	Orbits []OrbitConfig `yaml:"orbits"`
}

// Default returns the built-in scene: four orbits carrying seven labels.
//
// Returns:
//   - SceneConfig: the default scene
func Default() SceneConfig {
	return SceneConfig{
		Window: defaultWindow(),
		Camera: defaultCamera(),
		Orbits: []OrbitConfig{
			{
				Rotation: [3]float64{0, 0, 0},
				Labels: []LabelConfig{
					{Text: "Research", Pos: 0.5},
					{Text: "Design", Pos: 0.1},
				},
			},
			{
				Rotation: [3]float64{45, 45, 0},
				Labels: []LabelConfig{
					{Text: "Strategy", Pos: 0.2},
					{Text: "Culture", Pos: 0.8, Color: "#ffd54f"},
				},
			},
			{
				Rotation: [3]float64{-45, -90, 0},
				Labels: []LabelConfig{
					{Text: "Community", Pos: 0.4},
					{Text: "Archive", Pos: 0.9},
				},
			},
			{
				Rotation: [3]float64{90, 0, 30},
				Labels: []LabelConfig{
					{Text: "Futures", Pos: 0.65, Color: "#80deea"},
				},
			},
		},
	}
}

func defaultWindow() WindowConfig {
	return WindowConfig{Title: "oxy-orbits", Width: 800, Height: 800}
}

func defaultCamera() CameraConfig {
	return CameraConfig{Projection: "orthographic", Zoom: 1}
}

// Load reads a scene file. An empty path returns Default.
//
// Parameters:
//   - path: YAML file path, or empty
//
// Returns:
//   - SceneConfig: the validated scene
//   - error: read, parse or validation failure
func Load(path string) (SceneConfig, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("error reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML scene. Missing window and camera fields take defaults.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - SceneConfig: the validated scene
//   - error: parse or validation failure
func Parse(data []byte) (SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SceneConfig{}, fmt.Errorf("error parsing config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

func (c *SceneConfig) applyDefaults() {
	w, cam := defaultWindow(), defaultCamera()
	c.Window.Title = common.Coalesce(c.Window.Title, w.Title)
	c.Window.Width = common.Coalesce(c.Window.Width, w.Width)
	c.Window.Height = common.Coalesce(c.Window.Height, w.Height)
	c.Camera.Projection = common.Coalesce(c.Camera.Projection, cam.Projection)
	c.Camera.Zoom = common.Coalesce(c.Camera.Zoom, cam.Zoom)
}

// Validate checks every orbit and label. Duplicate label texts are allowed; the registry keeps
// the first.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending location, or nil
func (c SceneConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	switch c.Camera.Projection {
	case "orthographic", "perspective":
	default:
		return fmt.Errorf("%w: camera projection %q", ErrInvalidConfig, c.Camera.Projection)
	}
	if c.Camera.Zoom <= 0 || math.IsInf(c.Camera.Zoom, 0) || math.IsNaN(c.Camera.Zoom) {
		return fmt.Errorf("%w: camera zoom %v", ErrInvalidConfig, c.Camera.Zoom)
	}
	for i, o := range c.Orbits {
		for axis, deg := range o.Rotation {
			if math.IsNaN(deg) || math.IsInf(deg, 0) {
				return fmt.Errorf("%w: orbit %d rotation[%d] is not finite", ErrInvalidConfig, i, axis)
			}
		}
		for j, l := range o.Labels {
			if l.Text == "" {
				return fmt.Errorf("%w: orbit %d label %d has no text", ErrInvalidConfig, i, j)
			}
			if math.IsNaN(l.Pos) || math.IsInf(l.Pos, 0) {
				return fmt.Errorf("%w: orbit %d label %q pos is not finite", ErrInvalidConfig, i, l.Text)
			}
			if l.Color != "" {
				if _, err := ParseColor(l.Color); err != nil {
					return fmt.Errorf("%w: orbit %d label %q: %v", ErrInvalidConfig, i, l.Text, err)
				}
			}
		}
	}
	return nil
}

// LabelCount returns the number of labels across all orbits.
//
// Returns:
//   - int: the label count
func (c SceneConfig) LabelCount() int {
	n := 0
	for _, o := range c.Orbits {
		n += len(o.Labels)
	}
	return n
}

// ParseColor parses a "#rgb" or "#rrggbb" string into an opaque color.
//
// Parameters:
//   - s: the hex color
//
// Returns:
//   - color.RGBA: the parsed color
//   - error: if s is not a hex color
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
