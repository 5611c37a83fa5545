package scene

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
)

func TestNewStageFromConfig(t *testing.T) {
	tests := []struct {
		name       string
		projection string
		want       camera.Projection
	}{
		{"orthographic", "orthographic", camera.Orthographic},
		{"perspective", "perspective", camera.Perspective},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Camera.Projection = tt.projection
			cfg.Camera.Zoom = 1.5

			s := NewStageFromConfig(cfg, WithSeed(3))
			if got := s.Camera().Projection(); got != tt.want {
				t.Fatalf("projection = %v, want %v", got, tt.want)
			}
			if len(s.Orbits()) != 4 || s.LabelCount() != 7 {
				t.Fatalf("orbits=%d labels=%d, want 4/7", len(s.Orbits()), s.LabelCount())
			}
		})
	}
}
