package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

var identity = Mat3Diag(1, 1, 1)

// axisRot is the right-handed rotation by a around a unit axis.
func axisRot(axis r3.Vec, a float64) Mat3 {
	s, c := math.Sincos(a / 2)
	return QuatToMat3(Quat{axis.X * s, axis.Y * s, axis.Z * s, c})
}

func rotX(a float64) Mat3 { return axisRot(r3.Vec{X: 1}, a) }
func rotY(a float64) Mat3 { return axisRot(r3.Vec{Y: 1}, a) }
func rotZ(a float64) Mat3 { return axisRot(r3.Vec{Z: 1}, a) }

func matNear(t *testing.T, want, got Mat3, tol float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "element %d: want %v got %v", i, want, got)
	}
}

func TestQuatToMat3AxisRotations(t *testing.T) {
	c, s := math.Cos(0.3), math.Sin(0.3)
	matNear(t, Mat3{1, 0, 0, 0, c, -s, 0, s, c}, rotX(0.3), 1e-12)
	matNear(t, Mat3{c, 0, s, 0, 1, 0, -s, 0, c}, rotY(0.3), 1e-12)
	matNear(t, Mat3{c, -s, 0, s, c, 0, 0, 0, 1}, rotZ(0.3), 1e-12)
}

func TestMat3ToQuatRoundTrip(t *testing.T) {
	cases := []Mat3{
		identity,
		rotX(math.Pi),
		rotY(math.Pi),
		rotZ(math.Pi),
		Mat3Mul(rotZ(2.1), rotX(-0.7)),
		Mat3Mul(rotY(3.0), rotZ(1.4)),
	}
	for _, m := range cases {
		q := Mat3ToQuat(m)
		assert.GreaterOrEqual(t, q[3], 0.0)
		matNear(t, m, QuatToMat3(q), 1e-9)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Quat{0, 0, 0, 1}, Quat{}.Normalize())
	q := Quat{0, 0, 3, 4}.Normalize()
	assert.InDelta(t, 0.6, q[2], 1e-12)
	assert.InDelta(t, 0.8, q[3], 1e-12)
}

func TestEulerXYZRecoversAngles(t *testing.T) {
	m := Mat3Mul(Mat3Mul(rotZ(0.4), rotY(-0.3)), rotX(1.1))
	x, y, z := m.EulerXYZ()
	assert.InDelta(t, 1.1, x, 1e-12)
	assert.InDelta(t, -0.3, y, 1e-12)
	assert.InDelta(t, 0.4, z, 1e-12)
}

func TestEulerXYZGimbalLock(t *testing.T) {
	m := Mat3Mul(rotY(math.Pi/2), rotX(0.5))
	x, y, z := m.EulerXYZ()
	assert.InDelta(t, math.Pi/2, y, 1e-9)
	assert.Equal(t, 0.0, z)
	matNear(t, m, Mat3Mul(rotY(y), rotX(x)), 1e-9)
}

func TestFromColumnsAndTranspose(t *testing.T) {
	a := r3.Vec{X: 1, Y: 2, Z: 3}
	b := r3.Vec{X: 4, Y: 5, Z: 6}
	c := r3.Vec{X: 7, Y: 8, Z: 9}
	m := Mat3FromColumns(a, b, c)
	assert.Equal(t, a, m.MulVec3(r3.Vec{X: 1}))
	assert.Equal(t, c, m.MulVec3(r3.Vec{Z: 1}))
	assert.Equal(t, r3.Vec{X: 1, Y: 4, Z: 7}, m.Transpose().MulVec3(r3.Vec{X: 1}))
	assert.Equal(t, Mat3{2, 0, 0, 0, 3, 0, 0, 0, 4}, Mat3Diag(2, 3, 4))
}

func TestRigidInverse(t *testing.T) {
	r := Mat3Mul(rotZ(0.8), rotX(0.3))
	tr := r3.Vec{X: 10, Y: -4, Z: 2}
	fwd := FromMat3Translation(r, tr)
	inv := RigidInverse(r, tr)
	assert.True(t, Mat4Mul(inv, fwd).IsIdentity())
	assert.False(t, fwd.IsIdentity())

	p := r3.Vec{X: 3, Y: 1, Z: -5}
	back := inv.MulPoint(fwd.MulPoint(p))
	assert.InDelta(t, 0, r3.Norm(r3.Sub(back, p)), 1e-12)
}

func TestDegrees(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Deg2Rad(90), 1e-15)
	assert.InDelta(t, 90, Rad2Deg(Deg2Rad(90)), 1e-12)
}
