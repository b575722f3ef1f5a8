// Package raster is a flat-shaded, z-buffered software rasterizer.
package raster

import (
	"errors"
	"fmt"
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/camera"
	"stillshot/internal/mathutil"
	"stillshot/internal/scene"
)

// NearPlane is the minimum view depth; faces crossing it are dropped.
const NearPlane = 1e-3

// ErrNoCamera is returned when rendering a scene without a camera.
var ErrNoCamera = errors.New("raster: scene has no camera")

// Stats reports what a render touched.
type Stats struct {
	Triangles int // faces submitted
	Drawn     int // faces that wrote at least one pixel
	Culled    int // faces behind or crossing the near plane
	Pixels    int // pixels covered by geometry
}

// Projector maps world points to pixel coordinates for one camera.
type Projector struct {
	view  mathutil.Mat4
	focal float64
	halfW float64
	halfH float64
}

// NewProjector builds a perspective projection. fov is horizontal, radians.
func NewProjector(pose camera.Pose, fov float64, width, height int) (*Projector, error) {
	if !(fov > 0 && fov < math.Pi) {
		return nil, &camera.InvalidFieldOfViewError{FOV: fov}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("raster: invalid size %dx%d", width, height)
	}
	halfW := float64(width) / 2
	return &Projector{
		view:  pose.View(),
		focal: halfW / math.Tan(fov/2),
		halfW: halfW,
		halfH: float64(height) / 2,
	}, nil
}

// Project returns pixel x, y and view depth (distance along the view axis).
func (p *Projector) Project(v r3.Vec) (x, y, depth float64) {
	l := p.view.MulPoint(v)
	depth = -l.Z
	if depth <= 0 {
		return 0, 0, depth
	}
	x = p.halfW + p.focal*l.X/depth
	y = p.halfH - p.focal*l.Y/depth
	return x, y, depth
}

// Render rasterizes every mesh of s at width×height and returns the image.
func Render(s *scene.Scene, width, height int) (*image.NRGBA, Stats, error) {
	var st Stats
	if s.Camera == nil {
		return nil, st, ErrNoCamera
	}
	cam := s.Camera
	proj, err := NewProjector(cam.Pose, cam.FOV, width, height)
	if err != nil {
		return nil, st, err
	}

	fb := NewFrameBuffer(width, height, s.Background)
	lc := DefaultLightConfig(s.Lights, cam.Pose.Position)

	var tri ScreenTri
	for _, m := range s.Meshes {
		for _, t := range m.Triangles {
			st.Triangles++

			behind := false
			for k, v := range t.V {
				x, y, depth := proj.Project(v)
				if depth < NearPlane {
					behind = true
					break
				}
				tri.X[k], tri.Y[k], tri.Z[k] = x, y, 1/depth
			}
			if behind {
				st.Culled++
				continue
			}

			n := t.FaceNormal()
			centroid := r3.Scale(1.0/3, r3.Add(r3.Add(t.V[0], t.V[1]), t.V[2]))
			shade := lc.ComputeShade(n, centroid)
			cr, cg, cb := lc.ShadeColor(m.Color.R, m.Color.G, m.Color.B, shade)

			if RasterizeTriangle(fb, &tri, cr, cg, cb, m.Color.A) > 0 {
				st.Drawn++
			}
		}
	}
	st.Pixels = fb.Covered()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, fb.Color)
	return img, st, nil
}
