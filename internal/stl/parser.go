// Package stl reads and writes STL files through model3d.
package stl

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"strings"

	"github.com/unixpickle/model3d/model3d"
	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/mesh"
)

const (
	headerSize   = 80
	triangleSize = 50 // normal + 3 vertices (12 float32) + attribute word
)

// Parse reads an STL file, detecting binary or ASCII encoding.
func Parse(path string) (*mesh.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stl: read %s: %w", path, err)
	}
	m, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("stl: parse %s: %w", path, err)
	}
	return m, nil
}

// Decode parses STL bytes. A buffer whose length matches its triangle count
// is binary even if the header begins with "solid", as many exporters do.
func Decode(data []byte) (*mesh.Mesh, error) {
	bin := isBinary(data)
	if !bin && !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid")) {
		return nil, fmt.Errorf("unrecognized STL encoding (%d bytes)", len(data))
	}
	name := solidName(data, bin)

	src := data
	if bin && bytes.HasPrefix(data, []byte("solid")) {
		// model3d sniffs a leading "solid" as ASCII; the header is free text.
		src = make([]byte, len(data))
		copy(src[headerSize:], data[headerSize:])
	}
	tris, err := model3d.ReadSTL(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	m := mesh.New(name)
	m.Triangles = make([]mesh.Triangle, 0, len(tris))
	for _, t := range tris {
		m.Triangles = append(m.Triangles, mesh.Triangle{
			V: [3]r3.Vec{fromCoord(t[0]), fromCoord(t[1]), fromCoord(t[2])},
		})
	}
	return m, nil
}

func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	n := binary.LittleEndian.Uint32(data[headerSize:])
	return uint64(len(data)) == uint64(headerSize+4)+uint64(n)*triangleSize
}

// solidName returns the model name from the "solid" line or binary header.
func solidName(data []byte, bin bool) string {
	head := data
	if bin {
		head = data[:headerSize]
	}
	head = bytes.TrimLeft(head, " \t\r\n")
	if i := bytes.IndexAny(head, "\r\n"); i >= 0 {
		head = head[:i]
	}
	s := strings.TrimSpace(string(bytes.TrimRight(head, "\x00")))
	if !strings.HasPrefix(s, "solid") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(s, "solid"))
}

func fromCoord(c model3d.Coord3D) r3.Vec {
	return r3.Vec{X: c.X, Y: c.Y, Z: c.Z}
}

func toCoord(v r3.Vec) model3d.Coord3D {
	return model3d.XYZ(v.X, v.Y, v.Z)
}
