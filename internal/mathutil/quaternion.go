package mathutil

import "math"

// Quat represents a quaternion (x, y, z, w).
type Quat [4]float64

// QuatToMat3 converts a quaternion to a 3×3 rotation matrix.
func QuatToMat3(q Quat) Mat3 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3{
		1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy),
		2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx),
		2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy),
	}
}

// Mat3ToQuat converts a rotation matrix to a unit quaternion with w >= 0.
// Uses Shepperd's method: branch on the largest diagonal term for stability.
func Mat3ToQuat(m Mat3) Quat {
	var q Quat
	trace := m[0] + m[4] + m[8]
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1)
		q = Quat{(m[7] - m[5]) * s, (m[2] - m[6]) * s, (m[3] - m[1]) * s, 0.25 / s}
	case m[0] > m[4] && m[0] > m[8]:
		s := 2 * math.Sqrt(1+m[0]-m[4]-m[8])
		q = Quat{0.25 * s, (m[1] + m[3]) / s, (m[2] + m[6]) / s, (m[7] - m[5]) / s}
	case m[4] > m[8]:
		s := 2 * math.Sqrt(1+m[4]-m[0]-m[8])
		q = Quat{(m[1] + m[3]) / s, 0.25 * s, (m[5] + m[7]) / s, (m[2] - m[6]) / s}
	default:
		s := 2 * math.Sqrt(1+m[8]-m[0]-m[4])
		q = Quat{(m[2] + m[6]) / s, (m[5] + m[7]) / s, 0.25 * s, (m[3] - m[1]) / s}
	}
	if q[3] < 0 {
		q = Quat{-q[0], -q[1], -q[2], -q[3]}
	}
	return q.Normalize()
}

// Normalize returns q scaled to unit length. The zero quaternion maps to identity.
func (q Quat) Normalize() Quat {
	l := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l < 1e-12 {
		return Quat{0, 0, 0, 1}
	}
	return Quat{q[0] / l, q[1] / l, q[2] / l, q[3] / l}
}
