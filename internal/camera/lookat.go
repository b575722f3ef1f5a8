package camera

import (
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/mathutil"
)

const epsilon = 1e-12

var (
	// WorldUp is the fixed up reference: Z-up world.
	WorldUp = r3.Vec{Z: 1}

	worldY = r3.Vec{Y: 1}
	worldX = r3.Vec{X: 1}
)

// Pose is a camera position and orientation. The camera looks down its
// local -Z axis with local +Y up.
type Pose struct {
	Position r3.Vec
	Right    r3.Vec
	Up       r3.Vec
	Forward  r3.Vec
}

// LookAt aims a camera at position towards target using WorldUp.
func LookAt(position, target r3.Vec) (Pose, error) {
	return LookAtUp(position, target, WorldUp)
}

// LookAtUp is LookAt with an explicit up reference. When forward is parallel
// to up, +Y (or +X if up is +Y) resolves the roll instead.
func LookAtUp(position, target, up r3.Vec) (Pose, error) {
	dir := r3.Sub(target, position)
	if r3.Norm(dir) < epsilon {
		return Pose{}, &DegenerateDirectionError{Position: position, Target: target}
	}
	forward := r3.Unit(dir)

	if r3.Norm(up) < epsilon {
		up = WorldUp
	}
	up = r3.Unit(up)

	right := r3.Cross(forward, up)
	if r3.Norm(right) < 1e-9 {
		alt := worldY
		if r3.Norm(r3.Cross(up, worldY)) < 1e-9 {
			alt = worldX
		}
		right = r3.Cross(forward, alt)
	}
	right = r3.Unit(right)
	camUp := r3.Cross(right, forward)

	return Pose{
		Position: position,
		Right:    right,
		Up:       camUp,
		Forward:  forward,
	}, nil
}

// Rotation returns the camera-to-world rotation: columns are local X, Y, Z
// (right, up, back) in world space.
func (p Pose) Rotation() mathutil.Mat3 {
	return mathutil.Mat3FromColumns(p.Right, p.Up, r3.Scale(-1, p.Forward))
}

// Quaternion returns Rotation as a unit quaternion.
func (p Pose) Quaternion() mathutil.Quat {
	return mathutil.Mat3ToQuat(p.Rotation())
}

// Euler returns Rotation as XYZ Euler angles in radians.
func (p Pose) Euler() (x, y, z float64) {
	return p.Rotation().EulerXYZ()
}

// View returns the world-to-camera transform.
func (p Pose) View() mathutil.Mat4 {
	return mathutil.RigidInverse(p.Rotation(), p.Position)
}
