package mathutil

import "gonum.org/v1/gonum/spatial/r3"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type for zero heap allocation.
type Mat3 [9]float64

// Mat3Diag returns a diagonal (scale) matrix.
func Mat3Diag(x, y, z float64) Mat3 {
	return Mat3{x, 0, 0, 0, y, 0, 0, 0, z}
}

// Mat3FromColumns builds a matrix whose columns are a, b and c.
// A camera basis (right, up, back) maps local axes to world this way.
func Mat3FromColumns(a, b, c r3.Vec) Mat3 {
	return Mat3{
		a.X, b.X, c.X,
		a.Y, b.Y, c.Y,
		a.Z, b.Z, c.Z,
	}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec3 returns M × v.
func (m Mat3) MulVec3(v r3.Vec) r3.Vec {
	return r3.Vec{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}
