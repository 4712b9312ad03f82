package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Icosahedron returns a unit-radius icosahedron with flat normals.
func Icosahedron(color [3]float32) *Data {
	t := float32((1 + math.Sqrt(5)) / 2)
	s := float32(1 / math.Sqrt(float64(1+t*t)))

	corners := [12][3]float32{
		{-1, t, 0}, {1, t, 0}, {-1, -t, 0}, {1, -t, 0},
		{0, -1, t}, {0, 1, t}, {0, -1, -t}, {0, 1, -t},
		{t, 0, -1}, {t, 0, 1}, {-t, 0, -1}, {-t, 0, 1},
	}
	for i := range corners {
		for j := range corners[i] {
			corners[i][j] *= s
		}
	}

	faces := [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	data := &Data{Name: "icosahedron", Vertices: make([]Vertex, 0, len(faces)*3)}
	for _, f := range faces {
		a, b, c := corners[f[0]], corners[f[1]], corners[f[2]]
		n, _ := faceNormal(a, b, c)
		for _, p := range [3][3]float32{a, b, c} {
			data.Vertices = append(data.Vertices, Vertex{Position: p, Normal: n, Color: color})
		}
	}
	return data
}

// WriteOBJ writes d as an OBJ triangle list with per-corner normals.
// Colors are not representable and are dropped.
func WriteOBJ(w io.Writer, d *Data) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", d.Name)
	for _, v := range d.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range d.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	for i := 0; i+2 < len(d.Vertices); i += 3 {
		// OBJ indices are 1-based.
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", i+1, i+1, i+2, i+2, i+3, i+3)
	}
	return bw.Flush()
}
