// Package orbit generates turntable camera positions around a target.
package orbit

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"stillshot/internal/camera"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inoutsine":  ease.InOutSine,
	"inoutquad":  ease.InOutQuad,
	"inoutcubic": ease.InOutCubic,
}

// Easings lists the accepted easing names.
func Easings() []string {
	names := make([]string, 0, len(easings))
	for k := range easings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Config describes a sweep of the azimuthal angle at fixed radius and polar angle.
type Config struct {
	Frames       int
	Radius       float64
	Polar        float64
	StartAzimuth float64
	EndAzimuth   float64
	Easing       string
}

// Frames returns one spherical position per frame. Frame 0 sits at
// StartAzimuth and the last frame at EndAzimuth, except on a full turn where
// frames are spaced 2π/Frames apart. Azimuths are wrapped into [0, 2π).
func Frames(cfg Config) ([]camera.Spherical, error) {
	if cfg.Frames < 1 {
		return nil, fmt.Errorf("orbit: frame count %d must be at least 1", cfg.Frames)
	}
	name := strings.ToLower(cfg.Easing)
	if name == "" {
		name = "linear"
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("orbit: unknown easing %q (want one of %s)", cfg.Easing, strings.Join(Easings(), ", "))
	}

	out := make([]camera.Spherical, cfg.Frames)
	if cfg.Frames == 1 {
		out[0] = camera.Spherical{Radius: cfg.Radius, Polar: cfg.Polar, Azimuth: wrap(cfg.StartAzimuth)}
		return out, nil
	}

	// A full turn ends where it started, so the last frame stops one step
	// short of EndAzimuth.
	span := cfg.Frames - 1
	if FullTurn(cfg.StartAzimuth, cfg.EndAzimuth) {
		span = cfg.Frames
	}

	// The tween runs over progress in [0, 1]; the angle itself stays float64.
	sweep := cfg.EndAzimuth - cfg.StartAzimuth
	tw := gween.New(0, 1, float32(span), fn)
	for i := range out {
		p, _ := tw.Set(float32(i))
		out[i] = camera.Spherical{
			Radius:  cfg.Radius,
			Polar:   cfg.Polar,
			Azimuth: wrap(cfg.StartAzimuth + float64(p)*sweep),
		}
	}
	return out, nil
}

// FullTurn reports whether a sweep from start to end covers exactly 2π.
func FullTurn(start, end float64) bool {
	return math.Abs(math.Abs(end-start)-2*math.Pi) < 1e-9
}

func wrap(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
