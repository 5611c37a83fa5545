package drag

// ControllerBuilderOption is a functional option for configuring a Controller during construction.
type ControllerBuilderOption func(*controller)

// WithSensitivity sets the pixels-per-radian divisor. Non-positive values are ignored.
//
// Parameters:
//   - pixelsPerRadian: drag distance that produces one radian of rotation
//
// Returns:
//   - ControllerBuilderOption: functional option to set the sensitivity
func WithSensitivity(pixelsPerRadian float64) ControllerBuilderOption {
	return func(c *controller) {
		if pixelsPerRadian > 0 {
			c.sensitivity = pixelsPerRadian
		}
	}
}

// WithSmoothing sets the per-frame lerp factor. Values outside (0, 1] are ignored.
//
// Parameters:
//   - factor: fraction of the remaining distance covered per Update
//
// Returns:
//   - ControllerBuilderOption: functional option to set the smoothing
func WithSmoothing(factor float64) ControllerBuilderOption {
	return func(c *controller) {
		if factor > 0 && factor <= 1 {
			c.smoothing = factor
		}
	}
}
