package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyP     = 80  // P key (ASCII), pauses label motion
	KeyR     = 82  // R key (ASCII), resets the drag rotation
	KeyQ     = 81  // Q key (ASCII), quits
	KeySpace = 32  // Spacebar (ASCII), pauses label motion
	KeyEsc   = 256 // Escape key (GLFW)
)
