package stl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/unixpickle/model3d/model3d"

	"stillshot/internal/mesh"
)

// WriteBinary encodes the faces of m as binary STL.
func WriteBinary(w io.Writer, m *mesh.Mesh) error {
	tris := make([]*model3d.Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		tris[i] = &model3d.Triangle{toCoord(t.V[0]), toCoord(t.V[1]), toCoord(t.V[2])}
	}
	return model3d.WriteSTL(w, tris)
}

// Save writes m to path as binary STL, creating parent directories.
func Save(path string, m *mesh.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("stl: save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("stl: save %s: %w", path, err)
	}
	if err := WriteBinary(f, m); err != nil {
		f.Close()
		return fmt.Errorf("stl: save %s: %w", path, err)
	}
	return f.Close()
}
