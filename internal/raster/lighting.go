package raster

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/scene"
)

// LightConfig holds the shading parameters shared by every face.
type LightConfig struct {
	Lights    []scene.Light
	Eye       r3.Vec
	Ambient   float64
	Hemi      float64
	Direct    float64
	SpecInt   float64
	SpecPow   float64
	Exposure  float64

	gamma    float64
	invGamma float64
	toLinear [256]float64
}

// DefaultLightConfig returns the standard studio lighting for the given
// lights and eye position.
func DefaultLightConfig(lights []scene.Light, eye r3.Vec) LightConfig {
	lc := LightConfig{
		Lights:   lights,
		Eye:      eye,
		Ambient:  0.35,
		Hemi:     0.30,
		Direct:   1.20,
		SpecInt:  0.35,
		SpecPow:  16.0,
		Exposure: 1.05,
	}
	lc.SetGamma(DefaultGamma)
	return lc
}

// DefaultGamma approximates the sRGB transfer curve.
const DefaultGamma = 2.2

// SetGamma sets the display gamma used to decode base colors to linear and
// encode shaded results back. Non-positive values fall back to DefaultGamma.
func (lc *LightConfig) SetGamma(g float64) {
	if !(g > 0) {
		g = DefaultGamma
	}
	lc.gamma = g
	lc.invGamma = 1 / g
	for i := range lc.toLinear {
		lc.toLinear[i] = math.Pow(float64(i)/255, g)
	}
}

// Gamma returns the display gamma.
func (lc *LightConfig) Gamma() float64 {
	return lc.gamma
}

// ComputeShade returns the combined lighting scalar for a face with unit
// normal at point p.
func (lc *LightConfig) ComputeShade(normal, p r3.Vec) float64 {
	view := r3.Sub(lc.Eye, p)
	if r3.Norm(view) > 1e-12 {
		view = r3.Unit(view)
	}
	// Double-sided: orient the normal towards the viewer.
	if r3.Dot(normal, view) < 0 {
		normal = r3.Scale(-1, normal)
	}

	// Hemisphere fill, Z-up sky
	hemi := (normal.Z*0.5 + 0.5) * lc.Hemi

	shade := lc.Ambient + hemi
	for _, l := range lc.Lights {
		toLight := r3.Sub(l.Position, p)
		if r3.Norm(toLight) < 1e-12 {
			continue
		}
		ld := r3.Unit(toLight)

		// Lambertian
		ndl := math.Abs(r3.Dot(normal, ld))
		shade += ndl * lc.Direct * l.Intensity

		// Blinn-Phong specular
		half := r3.Add(ld, view)
		if r3.Norm(half) < 1e-12 {
			continue
		}
		ndh := r3.Dot(normal, r3.Unit(half))
		if ndh < 0 {
			ndh = 0
		}
		shade += math.Pow(ndh, lc.SpecPow) * lc.SpecInt * l.Intensity
	}
	return shade
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// ShadeColor lights an sRGB base color and returns the tone-mapped sRGB result.
func (lc *LightConfig) ShadeColor(r, g, b uint8, shade float64) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	out := func(c uint8) uint8 {
		return clamp255(math.Pow(ACESTonemap(lc.toLinear[c]*k), lc.invGamma) * 255)
	}
	return out(r), out(g), out(b)
}
