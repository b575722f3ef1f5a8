// Package camera places a camera in world space: spherical positioning,
// look-at orientation and bounding-box framing. Every function here is pure.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Spherical is a point relative to an origin. Polar is measured from +Z,
// Azimuth from +X towards +Y. Angles in radians.
type Spherical struct {
	Radius  float64
	Polar   float64
	Azimuth float64
}

// Cartesian converts s to (x, y, z). Angles outside their documented domain
// are not rejected; they wrap through the trigonometric functions.
func (s Spherical) Cartesian() r3.Vec {
	sinP, cosP := math.Sincos(s.Polar)
	sinA, cosA := math.Sincos(s.Azimuth)
	return r3.Vec{
		X: s.Radius * sinP * cosA,
		Y: s.Radius * sinP * sinA,
		Z: s.Radius * cosP,
	}
}

// Around returns the Cartesian position offset by center.
func (s Spherical) Around(center r3.Vec) r3.Vec {
	return r3.Add(center, s.Cartesian())
}

// Validate is the strict mode: radius >= 0, polar in [0, π], azimuth in [0, 2π).
func (s Spherical) Validate() error {
	switch {
	case !(s.Radius >= 0) || math.IsInf(s.Radius, 0):
		return &InvalidAngleRangeError{Field: "radius", Value: s.Radius, Range: "[0, +inf)"}
	case !(s.Polar >= 0 && s.Polar <= math.Pi):
		return &InvalidAngleRangeError{Field: "polar angle", Value: s.Polar, Range: "[0, π]"}
	case !(s.Azimuth >= 0 && s.Azimuth < 2*math.Pi):
		return &InvalidAngleRangeError{Field: "azimuthal angle", Value: s.Azimuth, Range: "[0, 2π)"}
	}
	return nil
}

// ToSpherical is the inverse of Cartesian. The origin maps to the zero value.
func ToSpherical(p r3.Vec) Spherical {
	r := r3.Norm(p)
	if r == 0 {
		return Spherical{}
	}
	az := math.Atan2(p.Y, p.X)
	if az < 0 {
		az += 2 * math.Pi
	}
	return Spherical{
		Radius:  r,
		Polar:   math.Acos(math.Max(-1, math.Min(1, p.Z/r))),
		Azimuth: az,
	}
}
