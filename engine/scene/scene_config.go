package scene

import (
	"github.com/Carmen-Shannon/oxy-orbits/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbits/engine/config"
)

// NewCameraFromConfig builds the stage camera described by cfg. Unknown projections fall
// back to orthographic; Validate rejects them before this point.
//
// Parameters:
//   - cfg: the camera section of a scene config
//
// Returns:
//   - camera.Camera: the camera
func NewCameraFromConfig(cfg config.CameraConfig) camera.Camera {
	proj := camera.Orthographic
	if cfg.Projection == "perspective" {
		proj = camera.Perspective
	}
	return camera.NewCamera(
		camera.WithProjection(proj),
		camera.WithZoom(cfg.Zoom),
	)
}

// NewStageFromConfig builds a camera and stage from cfg and mounts every configured orbit.
//
// Parameters:
//   - cfg: a validated scene config
//   - options: functional options for the stage
//
// Returns:
//   - Stage: the loaded stage
func NewStageFromConfig(cfg config.SceneConfig, options ...StageBuilderOption) Stage {
	s := NewStage(NewCameraFromConfig(cfg.Camera), options...)
	s.Load(cfg)
	return s
}
