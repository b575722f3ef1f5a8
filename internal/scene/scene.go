// Package scene holds the objects of one render: meshes, a camera and lights.
// Objects are referenced through the handles returned when they are added.
package scene

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/bounds"
	"stillshot/internal/camera"
	"stillshot/internal/mathutil"
	"stillshot/internal/mesh"
)

// DefaultLightPosition is where a scene's first point light goes.
var DefaultLightPosition = r3.Vec{X: 5, Y: -5, Z: 10}

// DefaultFocalLength is the lens of a camera created by EnsureCamera, in mm.
const DefaultFocalLength = 50.0

// ErrEmptyScene is returned when framing a scene with no geometry.
var ErrEmptyScene = errors.New("scene: no geometry")

// Light is a point light.
type Light struct {
	Position  r3.Vec
	Intensity float64
}

// Camera is a perspective camera.
type Camera struct {
	Pose camera.Pose
	FOV  float64 // horizontal field of view, radians
}

// NewCamera returns a camera at the origin looking down -Z.
func NewCamera(fov float64) *Camera {
	pose, _ := camera.LookAt(r3.Vec{}, r3.Vec{Z: -1})
	return &Camera{Pose: pose, FOV: fov}
}

// AimAt moves the camera to position and orients it towards target.
func (c *Camera) AimAt(position, target r3.Vec) error {
	pose, err := camera.LookAt(position, target)
	if err != nil {
		return err
	}
	c.Pose = pose
	return nil
}

// PlaceSpherical puts the camera at s around target, looking at target.
func (c *Camera) PlaceSpherical(s camera.Spherical, target r3.Vec) error {
	return c.AimAt(s.Around(target), target)
}

// Scene is one render's worth of objects.
type Scene struct {
	Meshes     []*mesh.Mesh
	Camera     *Camera
	Lights     []Light
	Background color.NRGBA
}

// New returns an empty scene with a transparent background.
func New() *Scene {
	return &Scene{}
}

// AddMesh adds m and returns it as the handle.
func (s *Scene) AddMesh(m *mesh.Mesh) *mesh.Mesh {
	s.Meshes = append(s.Meshes, m)
	return m
}

// AddLight adds a point light.
func (s *Scene) AddLight(l Light) {
	if l.Intensity == 0 {
		l.Intensity = 1
	}
	s.Lights = append(s.Lights, l)
}

// EnsureCamera returns the scene camera, creating a 50mm one if absent.
func (s *Scene) EnsureCamera() *Camera {
	if s.Camera == nil {
		fov, _ := camera.FieldOfView(DefaultFocalLength, camera.DefaultSensorWidth)
		s.Camera = NewCamera(fov)
	}
	return s.Camera
}

// EnsureLight adds a default point light if the scene has none.
func (s *Scene) EnsureLight() {
	if len(s.Lights) == 0 {
		s.AddLight(Light{Position: DefaultLightPosition, Intensity: 1})
	}
}

// TriangleCount sums faces across meshes.
func (s *Scene) TriangleCount() int {
	n := 0
	for _, m := range s.Meshes {
		n += m.TriangleCount()
	}
	return n
}

// Bounds returns the union of all mesh bounds.
func (s *Scene) Bounds() bounds.Box {
	b := bounds.New()
	for _, m := range s.Meshes {
		b = b.Union(m.Bounds())
	}
	return b
}

// FrameAll places the camera along direction so the whole scene fits its
// field of view.
func (s *Scene) FrameAll(direction r3.Vec) error {
	box := s.Bounds()
	if box.Empty() {
		return ErrEmptyScene
	}
	cam := s.EnsureCamera()
	pose, err := camera.Frame(box, direction, cam.FOV)
	if err != nil {
		return fmt.Errorf("scene: frame: %w", err)
	}
	cam.Pose = pose
	return nil
}

// Describe returns a one-line summary of the camera pose.
func (c *Camera) Describe() string {
	x, y, z := c.Pose.Euler()
	p := c.Pose.Position
	return fmt.Sprintf("camera (%.3f, %.3f, %.3f) rot (%.2f°, %.2f°, %.2f°) fov %.2f°",
		p.X, p.Y, p.Z,
		mathutil.Rad2Deg(x), mathutil.Rad2Deg(y), mathutil.Rad2Deg(z),
		mathutil.Rad2Deg(c.FOV))
}
