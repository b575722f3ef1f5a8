package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/camera"
	"stillshot/internal/config"
	"stillshot/internal/gltfmesh"
	"stillshot/internal/mesh"
	"stillshot/internal/scene"
	"stillshot/internal/stl"
	"stillshot/internal/triples"
)

// loadModel reads a model file, choosing the importer by extension.
func loadModel(path string, scale float64) ([]*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		m, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		if m.Name == "" {
			m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return []*mesh.Mesh{m}, nil
	case ".gltf", ".glb":
		return gltfmesh.Load(path)
	case ".csv":
		return triples.Load(path, scale)
	}
	return nil, fmt.Errorf("unsupported model format %q (want .stl, .gltf, .glb or .csv)", filepath.Ext(path))
}

// buildScene assembles meshes, the point light and a placed camera.
func buildScene(cfg config.Config, meshes []*mesh.Mesh) (*scene.Scene, error) {
	s := scene.New()
	for _, m := range meshes {
		s.AddMesh(m)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	s.Background = bg
	s.AddLight(scene.Light{Position: cfg.LightVec(), Intensity: 1})

	cam := s.EnsureCamera()
	cam.FOV = cfg.FOVRadians()

	if cfg.AutoFrame {
		if err := s.FrameAll(viewDirection(cfg)); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err := cam.PlaceSpherical(cfg.Spherical(), cfg.TargetVec()); err != nil {
		return nil, err
	}
	return s, nil
}

// viewDirection is the unit direction from the target towards the camera
// given by the configured angles, ignoring the radius.
func viewDirection(cfg config.Config) r3.Vec {
	sph := cfg.Spherical()
	sph.Radius = 1
	return sph.Cartesian()
}

// orbitCenter returns the orbit target and radius. With auto-frame the orbit
// circles the scene bounds at framing distance.
func orbitCenter(cfg config.Config, s *scene.Scene) (r3.Vec, float64, error) {
	if !cfg.AutoFrame {
		return cfg.TargetVec(), cfg.Radius, nil
	}
	box := s.Bounds()
	if box.Empty() {
		return r3.Vec{}, 0, scene.ErrEmptyScene
	}
	dist, err := camera.FramingDistance(box.MaxDimension(), cfg.FOVRadians())
	if err != nil {
		return r3.Vec{}, 0, err
	}
	return box.Center(), dist + box.MaxDimension()/2, nil
}
