// Package triples builds face meshes from a flat vertex table. Each row is
// "id, x, y, z, nx, ny, nz"; every three consecutive rows form one face.
package triples

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"stillshot/internal/mesh"
)

// DefaultScale is applied to vertex coordinates (table units to scene units).
const DefaultScale = 100.0

// Row is one vertex record.
type Row struct {
	ID     int
	Pos    r3.Vec
	Normal r3.Vec
}

// ErrIncompleteFace is returned when the row count is not a multiple of three.
var ErrIncompleteFace = errors.New("triples: row count is not a multiple of 3")

// Load reads a CSV vertex table from path.
func Load(path string, scale float64) ([]*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("triples: open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("triples: parse %s: %w", path, err)
	}
	return Build(rows, scale)
}

// ReadRows parses CSV records. A leading header row (non-numeric id) and
// lines starting with '#' are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 7
	cr.TrimLeadingSpace = true

	var rows []Row
	for n := 1; ; n++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var vals [7]float64
		bad := -1
		for i, s := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				bad = i
				break
			}
			vals[i] = v
		}
		if bad >= 0 {
			if len(rows) == 0 && n == 1 {
				continue
			}
			return nil, fmt.Errorf("record %d: field %d: invalid number %q", n, bad+1, rec[bad])
		}

		rows = append(rows, Row{
			ID:     int(vals[0]),
			Pos:    r3.Vec{X: vals[1], Y: vals[2], Z: vals[3]},
			Normal: r3.Vec{X: vals[4], Y: vals[5], Z: vals[6]},
		})
	}
	return rows, nil
}

// Build groups rows into faces, one mesh per face named by the first row's
// id. Positions are multiplied by scale; normals are kept as given.
func Build(rows []Row, scale float64) ([]*mesh.Mesh, error) {
	if len(rows)%3 != 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrIncompleteFace, len(rows))
	}
	if scale == 0 {
		scale = DefaultScale
	}

	meshes := make([]*mesh.Mesh, 0, len(rows)/3)
	for i := 0; i < len(rows); i += 3 {
		trio := rows[i : i+3]
		m := mesh.New(strconv.Itoa(trio[0].ID))
		m.Triangles = append(m.Triangles, mesh.Triangle{
			V: [3]r3.Vec{
				r3.Scale(scale, trio[0].Pos),
				r3.Scale(scale, trio[1].Pos),
				r3.Scale(scale, trio[2].Pos),
			},
			Normal: trio[0].Normal,
		})
		meshes = append(meshes, m)
	}
	return meshes, nil
}
