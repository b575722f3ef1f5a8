package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/bounds"
	"stillshot/internal/mathutil"
)

const tol = 1e-9

func matNear(t *testing.T, want, got mathutil.Mat3, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d: want %v got %v", i, want, got)
	}
}

// eulerMat composes Rz(z)·Ry(y)·Rx(x) from axis quaternions.
func eulerMat(x, y, z float64) mathutil.Mat3 {
	axis := func(ax r3.Vec, a float64) mathutil.Mat3 {
		s, c := math.Sincos(a / 2)
		return mathutil.QuatToMat3(mathutil.Quat{ax.X * s, ax.Y * s, ax.Z * s, c})
	}
	return mathutil.Mat3Mul(mathutil.Mat3Mul(axis(r3.Vec{Z: 1}, z), axis(r3.Vec{Y: 1}, y)), axis(r3.Vec{X: 1}, x))
}

func vecNear(t *testing.T, want, got r3.Vec) {
	t.Helper()
	assert.InDelta(t, 0, r3.Norm(r3.Sub(want, got)), tol, "want %v got %v", want, got)
}

func TestCartesianPreservesRadius(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1, 500, 1e6} {
		for theta := 0.0; theta <= math.Pi; theta += math.Pi / 7 {
			for phi := 0.0; phi < 2*math.Pi; phi += math.Pi / 5 {
				p := Spherical{Radius: r, Polar: theta, Azimuth: phi}.Cartesian()
				assert.True(t, scalar.EqualWithinAbsOrRel(r3.Norm(p), r, 1e-9, 1e-12),
					"r=%g θ=%g φ=%g norm=%g", r, theta, phi, r3.Norm(p))
			}
		}
	}
}

func TestCartesianPoles(t *testing.T) {
	for _, phi := range []float64{0, 1, 2.5, 6} {
		vecNear(t, r3.Vec{Z: 7}, Spherical{Radius: 7, Polar: 0, Azimuth: phi}.Cartesian())
		vecNear(t, r3.Vec{Z: -7}, Spherical{Radius: 7, Polar: math.Pi, Azimuth: phi}.Cartesian())
	}
}

func TestCartesianEquator(t *testing.T) {
	vecNear(t, r3.Vec{X: 500}, Spherical{Radius: 500, Polar: math.Pi / 2}.Cartesian())
	vecNear(t, r3.Vec{Y: 500}, Spherical{Radius: 500, Polar: math.Pi / 2, Azimuth: math.Pi / 2}.Cartesian())
}

func TestCartesianWrapsOutOfRange(t *testing.T) {
	in := Spherical{Radius: 3, Polar: 1, Azimuth: 0.5}
	wrapped := Spherical{Radius: 3, Polar: 1, Azimuth: 0.5 + 2*math.Pi}
	vecNear(t, in.Cartesian(), wrapped.Cartesian())
	assert.Error(t, wrapped.Validate())
}

func TestAround(t *testing.T) {
	c := r3.Vec{X: 1, Y: 2, Z: 3}
	vecNear(t, r3.Vec{X: 1, Y: 2, Z: 13}, Spherical{Radius: 10}.Around(c))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Spherical{Radius: 1, Polar: math.Pi, Azimuth: 0}.Validate())

	cases := map[string]Spherical{
		"radius":          {Radius: -1},
		"polar angle":     {Radius: 1, Polar: 3.2},
		"azimuthal angle": {Radius: 1, Azimuth: 2 * math.Pi},
		"nan":             {Radius: math.NaN()},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			var rangeErr *InvalidAngleRangeError
			require.ErrorAs(t, s.Validate(), &rangeErr)
		})
	}
}

func TestToSphericalInverse(t *testing.T) {
	s := Spherical{Radius: 12, Polar: 0.9, Azimuth: 4.0}
	got := ToSpherical(s.Cartesian())
	assert.InDelta(t, s.Radius, got.Radius, tol)
	assert.InDelta(t, s.Polar, got.Polar, tol)
	assert.InDelta(t, s.Azimuth, got.Azimuth, tol)
	assert.Equal(t, Spherical{}, ToSpherical(r3.Vec{}))
}

func TestLookAtDownNegativeZ(t *testing.T) {
	pose, err := LookAt(r3.Vec{}, r3.Vec{Z: -10})
	require.NoError(t, err)
	vecNear(t, r3.Vec{Z: -1}, pose.Forward)
	// Looking straight down -Z is the rest orientation of the camera.
	matNear(t, mathutil.Mat3Diag(1, 1, 1), pose.Rotation(), tol)
}

func TestLookAtKeepsUpright(t *testing.T) {
	pose, err := LookAt(r3.Vec{X: 500}, r3.Vec{})
	require.NoError(t, err)
	vecNear(t, r3.Vec{X: -1}, pose.Forward)
	vecNear(t, r3.Vec{Z: 1}, pose.Up)
	vecNear(t, r3.Vec{Y: 1}, pose.Right)

	// Right-handed: right × up = back.
	vecNear(t, r3.Scale(-1, pose.Forward), r3.Cross(pose.Right, pose.Up))
	vecNear(t, r3.Vec{X: -1}, pose.Rotation().MulVec3(r3.Vec{Z: -1}))
}

func TestLookAtOrthonormal(t *testing.T) {
	positions := []r3.Vec{
		{X: 3, Y: -4, Z: 5},
		{X: -1, Y: -1, Z: -1},
		{Z: 100},
		{X: 0.001, Y: 0, Z: -3},
	}
	for _, p := range positions {
		pose, err := LookAt(p, r3.Vec{X: 0.5})
		require.NoError(t, err)
		assert.InDelta(t, 1, r3.Norm(pose.Forward), tol)
		assert.InDelta(t, 1, r3.Norm(pose.Right), tol)
		assert.InDelta(t, 1, r3.Norm(pose.Up), tol)
		assert.InDelta(t, 0, r3.Dot(pose.Forward, pose.Right), tol)
		assert.InDelta(t, 0, r3.Dot(pose.Forward, pose.Up), tol)
		assert.InDelta(t, 0, r3.Dot(pose.Right, pose.Up), tol)
		assert.False(t, math.IsNaN(pose.Up.X))
	}
}

func TestLookAtDegenerate(t *testing.T) {
	for _, p := range []r3.Vec{{}, {X: 1, Y: 2, Z: 3}, {X: -1e6}} {
		_, err := LookAt(p, p)
		var degenerate *DegenerateDirectionError
		require.True(t, errors.As(err, &degenerate), "position %v", p)
		assert.Equal(t, p, degenerate.Position)
	}
}

func TestLookAtUpParallelToY(t *testing.T) {
	pose, err := LookAtUp(r3.Vec{}, r3.Vec{Y: 5}, r3.Vec{Y: 1})
	require.NoError(t, err)
	vecNear(t, r3.Vec{Y: 1}, pose.Forward)
	assert.InDelta(t, 0, r3.Dot(pose.Up, pose.Forward), tol)
}

func TestViewMapsTargetOntoNegativeZ(t *testing.T) {
	pose, err := LookAt(r3.Vec{X: 3, Y: 4, Z: 5}, r3.Vec{})
	require.NoError(t, err)
	local := pose.View().MulPoint(r3.Vec{})
	vecNear(t, r3.Vec{Z: -math.Sqrt(50)}, local)
	vecNear(t, r3.Vec{}, pose.View().MulPoint(pose.Position))
}

func TestQuaternionMatchesRotation(t *testing.T) {
	pose, err := LookAt(r3.Vec{X: 7, Y: -7, Z: 5}, r3.Vec{})
	require.NoError(t, err)
	matNear(t, pose.Rotation(), mathutil.QuatToMat3(pose.Quaternion()), 1e-9)

	x, y, z := pose.Euler()
	matNear(t, pose.Rotation(), eulerMat(x, y, z), 1e-9)
}

func TestFramingDistance(t *testing.T) {
	d, err := FramingDistance(10, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, 1e-12)
}

func TestFramingDistanceMonotonic(t *testing.T) {
	prev := 0.0
	for dim := 1.0; dim <= 100; dim += 7 {
		d, err := FramingDistance(dim, 0.8)
		require.NoError(t, err)
		assert.Greater(t, d, prev)
		prev = d
	}

	prev = math.Inf(1)
	for fov := 0.1; fov < math.Pi; fov += 0.2 {
		d, err := FramingDistance(10, fov)
		require.NoError(t, err)
		assert.Less(t, d, prev)
		prev = d
	}
}

func TestFramingDistanceRejectsFOV(t *testing.T) {
	for _, fov := range []float64{0, -1, math.Pi, 4, math.NaN()} {
		_, err := FramingDistance(10, fov)
		var fovErr *InvalidFieldOfViewError
		require.ErrorAs(t, err, &fovErr, "fov %g", fov)
	}
}

func TestFramingFOVInvertsDistance(t *testing.T) {
	d, err := FramingDistance(42, 0.7)
	require.NoError(t, err)
	fov, err := FramingFOV(42, d)
	require.NoError(t, err)
	assert.InDelta(t, 0.7, fov, 1e-12)

	_, err = FramingFOV(42, 0)
	assert.Error(t, err)
}

func TestFocalLength(t *testing.T) {
	fov, err := FieldOfView(50, DefaultSensorWidth)
	require.NoError(t, err)
	assert.InDelta(t, 39.5978, mathutil.Rad2Deg(fov), 1e-3)

	focal, err := FocalLength(fov, DefaultSensorWidth)
	require.NoError(t, err)
	assert.InDelta(t, 50, focal, 1e-9)

	_, err = FieldOfView(0, DefaultSensorWidth)
	assert.Error(t, err)
	_, err = FocalLength(math.Pi, DefaultSensorWidth)
	assert.Error(t, err)
}

func TestFrame(t *testing.T) {
	box := bounds.FromPoints([]r3.Vec{{X: -5, Y: -5, Z: -5}, {X: 5, Y: 5, Z: 5}})
	pose, err := Frame(box, r3.Vec{X: 2}, math.Pi/2)
	require.NoError(t, err)
	// framing distance 5 plus half the box depth.
	vecNear(t, r3.Vec{X: 10}, pose.Position)
	vecNear(t, r3.Vec{X: -1}, pose.Forward)

	_, err = Frame(box, r3.Vec{}, math.Pi/2)
	var degenerate *DegenerateDirectionError
	assert.ErrorAs(t, err, &degenerate)

	_, err = Frame(box, r3.Vec{X: 1}, 0)
	var fovErr *InvalidFieldOfViewError
	assert.ErrorAs(t, err, &fovErr)
}

func TestFrameZeroSizeBounds(t *testing.T) {
	point := bounds.FromPoints([]r3.Vec{{X: 1, Y: 2, Z: 3}})
	_, err := Frame(point, r3.Vec{X: 1}, math.Pi/2)
	assert.ErrorIs(t, err, ErrZeroSizeBounds)

	_, err = Frame(bounds.New(), r3.Vec{X: 1}, math.Pi/2)
	assert.ErrorIs(t, err, ErrZeroSizeBounds)

	// A flat box still has an extent and frames fine.
	flat := bounds.FromPoints([]r3.Vec{{}, {X: 2, Y: 1}})
	_, err = Frame(flat, r3.Vec{Z: 1}, math.Pi/2)
	assert.NoError(t, err)
}
