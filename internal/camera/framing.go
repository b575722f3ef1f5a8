package camera

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/bounds"
)

// DefaultSensorWidth is a full-frame sensor width in millimetres.
const DefaultSensorWidth = 36.0

func checkFOV(fov float64) error {
	if !(fov > 0 && fov < math.Pi) {
		return &InvalidFieldOfViewError{FOV: fov}
	}
	return nil
}

// FramingDistance returns the distance at which an object of maxDimension
// exactly fills fov: maxDimension / (2·tan(fov/2)).
func FramingDistance(maxDimension, fov float64) (float64, error) {
	if err := checkFOV(fov); err != nil {
		return 0, err
	}
	return maxDimension / (2 * math.Tan(fov/2)), nil
}

// FramingFOV is the fixed-distance counterpart of FramingDistance: the field
// of view that fits maxDimension at distance.
func FramingFOV(maxDimension, distance float64) (float64, error) {
	if !(distance > 0) {
		return 0, fmt.Errorf("camera: framing distance %g must be positive", distance)
	}
	return 2 * math.Atan(maxDimension/(2*distance)), nil
}

// FocalLength converts a field of view to a lens focal length in the units of sensorWidth.
func FocalLength(fov, sensorWidth float64) (float64, error) {
	if err := checkFOV(fov); err != nil {
		return 0, err
	}
	return sensorWidth / (2 * math.Tan(fov/2)), nil
}

// FieldOfView converts a lens focal length to a field of view.
func FieldOfView(focal, sensorWidth float64) (float64, error) {
	if !(focal > 0) {
		return 0, fmt.Errorf("camera: focal length %g must be positive", focal)
	}
	return 2 * math.Atan(sensorWidth/(2*focal)), nil
}

// Frame places a camera along direction from the box center so that the
// box's near extent sits at the framing distance, looking at the center.
func Frame(box bounds.Box, direction r3.Vec, fov float64) (Pose, error) {
	if box.Empty() || !(box.MaxDimension() > 0) {
		return Pose{}, ErrZeroSizeBounds
	}
	dist, err := FramingDistance(box.MaxDimension(), fov)
	if err != nil {
		return Pose{}, err
	}
	if r3.Norm(direction) < epsilon {
		c := box.Center()
		return Pose{}, &DegenerateDirectionError{Position: c, Target: c}
	}
	center := box.Center()
	offset := dist + box.MaxDimension()/2
	pos := r3.Add(center, r3.Scale(offset, r3.Unit(direction)))
	return LookAt(pos, center)
}
