package mathutil

import "math"

// EulerXYZ decomposes m = Rz(z) @ Ry(y) @ Rx(x) into (x, y, z) radians.
// At gimbal lock (|y| = 90°) z is reported as 0.
func (m Mat3) EulerXYZ() (x, y, z float64) {
	sy := -m[6]
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	y = math.Asin(sy)
	if math.Abs(sy) < 1-1e-9 {
		x = math.Atan2(m[7], m[8])
		z = math.Atan2(m[3], m[0])
		return x, y, z
	}
	x = math.Atan2(-m[5], m[4])
	return x, y, 0
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float64) float64 {
	return r * 180 / math.Pi
}
