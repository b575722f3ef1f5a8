package triples

import (
	"strings"

	"stillshot/internal/mesh"
)

// sampleCSV is a six-face fan around a shared apex.
const sampleCSV = `id,x,y,z,nx,ny,nz
0,-56.8390007019043,10.87399959564209,0,0,0,-1
0,-56.71500015258789,10.107999801635742,0,0,0,-1
0,-62.29999923706055,6.566999912261963,0,0,0,-1
1,-56.71500015258789,10.107999801635742,0,0,0,-1
1,-56.67100143432617,9.154000282287598,0,0,0,-1
1,-62.29999923706055,6.566999912261963,0,0,0,-1
2,-56.67100143432617,9.154000282287598,0,0,0,-1
2,-56.678001403808594,8.61299991607666,0,0,0,-1
2,-62.29999923706055,6.566999912261963,0,0,0,-1
3,-62.15700149536133,6.364999771118164,0,0,0,-1
3,-62.29999923706055,6.566999912261963,0,0,0,-1
3,-56.678001403808594,8.61299991607666,0,0,0,-1
4,-56.75600051879883,7.420000076293945,0,0,0,-1
4,-62.15700149536133,6.364999771118164,0,0,0,-1
4,-56.678001403808594,8.61299991607666,0,0,0,-1
5,-56.922000885009766,6.0920000076293945,0,0,0,-1
5,-62.15700149536133,6.364999771118164,0,0,0,-1
5,-56.75600051879883,7.420000076293945,0,0,0,-1
`

// Sample returns the built-in table as face meshes.
func Sample(scale float64) ([]*mesh.Mesh, error) {
	rows, err := ReadRows(strings.NewReader(sampleCSV))
	if err != nil {
		return nil, err
	}
	return Build(rows, scale)
}
