package camera

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrZeroSizeBounds is returned when framing a box with no extent, such as
// a single point or an empty box.
var ErrZeroSizeBounds = errors.New("camera: cannot frame zero-size bounds")

// DegenerateDirectionError is returned when a look-at has no direction:
// the camera sits on its target.
type DegenerateDirectionError struct {
	Position r3.Vec
	Target   r3.Vec
}

func (e *DegenerateDirectionError) Error() string {
	return fmt.Sprintf("camera: degenerate look-at direction: position %v equals target %v", e.Position, e.Target)
}

// InvalidFieldOfViewError is returned for a field of view outside (0, π).
type InvalidFieldOfViewError struct {
	FOV float64
}

func (e *InvalidFieldOfViewError) Error() string {
	return fmt.Sprintf("camera: field of view %g rad outside (0, π)", e.FOV)
}

// InvalidAngleRangeError is returned by Spherical.Validate.
type InvalidAngleRangeError struct {
	Field string
	Value float64
	Range string
}

func (e *InvalidAngleRangeError) Error() string {
	return fmt.Sprintf("camera: %s %g outside %s", e.Field, e.Value, e.Range)
}
