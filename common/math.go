package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Lerp linearly interpolates from a toward b by factor t.
//
// Parameters:
//   - a: the starting value
//   - b: the target value
//   - t: interpolation factor, 0 returns a and 1 returns b
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec3 applies Lerp component-wise.
//
// Parameters:
//   - a: the starting vector
//   - b: the target vector
//   - t: interpolation factor
//
// Returns:
//   - mgl64.Vec3: the interpolated vector
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// WrapUnit folds t into [0, 1) so that any real parameter addresses a point on a periodic curve.
//
// Parameters:
//   - t: any finite real value
//
// Returns:
//   - float64: t modulo 1, always in [0, 1)
func WrapUnit(t float64) float64 {
	w := t - math.Floor(t)
	// t - floor(t) rounds up to exactly 1 for tiny negative inputs.
	if w >= 1 {
		return 0
	}
	return w
}

// DegreesToRadians converts an Euler triple from degrees to radians.
//
// Parameters:
//   - deg: rotation around X, Y and Z in degrees
//
// Returns:
//   - mgl64.Vec3: the same rotation in radians
func DegreesToRadians(deg mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{mgl64.DegToRad(deg[0]), mgl64.DegToRad(deg[1]), mgl64.DegToRad(deg[2])}
}

// EulerXYZ builds a homogeneous rotation matrix from Euler angles applied in XYZ order,
// i.e. R = Rx * Ry * Rz. A point is rotated around Z first, then Y, then X.
//
// Parameters:
//   - rot: rotation angles in radians around X, Y and Z
//
// Returns:
//   - mgl64.Mat4: the rotation matrix (column-major)
func EulerXYZ(rot mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(rot[0]).
		Mul4(mgl64.HomogRotate3DY(rot[1])).
		Mul4(mgl64.HomogRotate3DZ(rot[2]))
}

// ComposeTRS builds a model matrix from translation, XYZ Euler rotation and scale (T * R * S).
//
// Parameters:
//   - pos: translation
//   - rot: rotation in radians (XYZ order)
//   - scale: scale factors
//
// Returns:
//   - mgl64.Mat4: the model matrix
func ComposeTRS(pos, rot, scale mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(pos[0], pos[1], pos[2]).
		Mul4(EulerXYZ(rot)).
		Mul4(mgl64.Scale3D(scale[0], scale[1], scale[2]))
}

// MatrixPosition extracts the translation column of a model matrix.
//
// Parameters:
//   - m: a homogeneous transform
//
// Returns:
//   - mgl64.Vec3: the translation component
func MatrixPosition(m mgl64.Mat4) mgl64.Vec3 {
	return m.Col(3).Vec3()
}

// Finite reports whether every component of v is a finite number.
func Finite(v mgl64.Vec3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}
