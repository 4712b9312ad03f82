package mesh

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
)

// ErrNoFaces is returned for OBJ files without any usable face.
var ErrNoFaces = errors.New("mesh has no faces")

// LoadOBJ reads a Wavefront OBJ file and flattens it into a triangle list
// tinted with color. Polygons are fanned into triangles. Normals from the
// file are used when every corner has one, otherwise the flat face normal.
// Materials and texture coordinates are ignored.
func LoadOBJ(path string, color [3]float32) (*Data, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := DecodeOBJ(src, name, color)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return data, nil
}

// DecodeOBJ is LoadOBJ on in-memory contents.
func DecodeOBJ(src []byte, name string, color [3]float32) (*Data, error) {
	// The decoder wants faces to belong to an object; files exported without
	// an "o" line get a synthetic one.
	objSrc := append([]byte("o "+name+"\n"), src...)

	dec, err := obj.DecodeReader(bytes.NewReader(objSrc), strings.NewReader(""))
	if err != nil {
		return nil, err
	}

	data := &Data{Name: name}
	for _, o := range dec.Objects {
		for fi, face := range o.Faces {
			tris, err := triangulate(dec, face)
			if err != nil {
				return nil, fmt.Errorf("object %q face %d: %w", o.Name, fi, err)
			}
			for _, v := range tris {
				v.Color = color
				data.Vertices = append(data.Vertices, v)
			}
		}
	}

	if len(data.Vertices) == 0 {
		return nil, ErrNoFaces
	}
	return data, nil
}

// triangulate fans a polygon face around its first corner.
func triangulate(dec *obj.Decoder, face obj.Face) ([]Vertex, error) {
	n := len(face.Vertices)
	if n < 3 {
		return nil, fmt.Errorf("face has %d vertices", n)
	}

	positions := make([][3]float32, n)
	for i, idx := range face.Vertices {
		p, ok := lookup(dec.Vertices, idx)
		if !ok {
			return nil, fmt.Errorf("vertex index %d out of range", idx)
		}
		positions[i] = p
	}

	normals := make([][3]float32, n)
	haveNormals := len(face.Normals) == n
	if haveNormals {
		for i, idx := range face.Normals {
			nrm, ok := lookup(dec.Normals, idx)
			if !ok {
				haveNormals = false
				break
			}
			normals[i] = nrm
		}
	}

	out := make([]Vertex, 0, (n-2)*3)
	for i := 1; i+1 < n; i++ {
		corners := [3]int{0, i, i + 1}
		flat, ok := faceNormal(positions[0], positions[i], positions[i+1])
		if !ok && !haveNormals {
			// Degenerate and nothing to shade it with.
			continue
		}
		for _, c := range corners {
			v := Vertex{Position: positions[c], Normal: flat}
			if haveNormals {
				v.Normal = normals[c]
			}
			out = append(out, v)
		}
	}
	return out, nil
}

func lookup(arr []float32, idx int) ([3]float32, bool) {
	if idx < 0 || 3*idx+2 >= len(arr) {
		return [3]float32{}, false
	}
	return [3]float32{arr[3*idx], arr[3*idx+1], arr[3*idx+2]}, true
}
