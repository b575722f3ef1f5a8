package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/camera"
	"stillshot/internal/mesh"
)

func cube(size float64) *mesh.Mesh {
	m := mesh.New("cube")
	h := size / 2
	m.AddTriangle(r3.Vec{X: -h, Y: -h, Z: -h}, r3.Vec{X: h, Y: -h, Z: -h}, r3.Vec{X: h, Y: h, Z: h})
	m.AddTriangle(r3.Vec{X: -h, Y: h, Z: h}, r3.Vec{X: -h, Y: -h, Z: h}, r3.Vec{X: h, Y: h, Z: -h})
	return m
}

func TestEnsureCameraCreatesOnce(t *testing.T) {
	s := New()
	c := s.EnsureCamera()
	require.NotNil(t, c)
	assert.Same(t, c, s.EnsureCamera())
	assert.InDelta(t, 39.5978, c.FOV*180/math.Pi, 1e-3)
}

func TestEnsureLight(t *testing.T) {
	s := New()
	s.EnsureLight()
	s.EnsureLight()
	require.Len(t, s.Lights, 1)
	assert.Equal(t, DefaultLightPosition, s.Lights[0].Position)
	assert.Equal(t, 1.0, s.Lights[0].Intensity)
}

func TestAddMeshReturnsHandle(t *testing.T) {
	s := New()
	m := cube(2)
	h := s.AddMesh(m)
	assert.Same(t, m, h)
	assert.Equal(t, 2, s.TriangleCount())
}

func TestPlaceSpherical(t *testing.T) {
	c := NewCamera(math.Pi / 3)
	require.NoError(t, c.PlaceSpherical(camera.Spherical{Radius: 500, Polar: math.Pi / 2}, r3.Vec{}))
	assert.InDelta(t, 500, c.Pose.Position.X, 1e-9)
	assert.InDelta(t, -1, c.Pose.Forward.X, 1e-9)
}

func TestAimAtDegenerate(t *testing.T) {
	c := NewCamera(1)
	before := c.Pose
	err := c.AimAt(r3.Vec{X: 1}, r3.Vec{X: 1})
	var degenerate *camera.DegenerateDirectionError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, before, c.Pose)
}

func TestFrameAll(t *testing.T) {
	s := New()
	s.AddMesh(cube(10))
	s.Camera = NewCamera(math.Pi / 2)
	require.NoError(t, s.FrameAll(r3.Vec{Y: -1}))
	assert.InDelta(t, -10, s.Camera.Pose.Position.Y, 1e-9)
	assert.Contains(t, s.Camera.Describe(), "camera (0.000, -10.000, 0.000)")
}

func TestFrameAllEmpty(t *testing.T) {
	assert.ErrorIs(t, New().FrameAll(r3.Vec{X: 1}), ErrEmptyScene)
}
