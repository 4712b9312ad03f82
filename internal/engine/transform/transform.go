// Package transform computes the per-object matrices of the mesh scene.
//
// Two backends exist: Float32 works in single precision with mgl32 and
// Float64 works in double precision with mgl64, narrowing the result for
// upload. Both produce column-major matrices ready for glUniformMatrix*.
package transform

import (
	"errors"
	"math"
)

// ErrSingular is returned when a model matrix cannot be inverted to build
// its normal matrix.
var ErrSingular = errors.New("model matrix is singular")

// View describes the camera.
type View struct {
	Eye    [3]float32
	Target [3]float32
	Up     [3]float32
}

// Projection describes a perspective frustum.
type Projection struct {
	FOV    float32 // vertical, degrees
	Aspect float32
	Near   float32
	Far    float32
}

// Placement positions one object in the world: scale, then rotate about
// Axis by Angle radians, then translate.
type Placement struct {
	Translation [3]float32
	Axis        [3]float32
	Angle       float32
	Scale       float32
}

// Identity is the placement that leaves geometry where it is.
var Identity = Placement{Axis: [3]float32{0, 1, 0}, Scale: 1}

// Matrices are the uniforms needed to draw one object.
type Matrices struct {
	MVP    [16]float32
	Model  [16]float32
	Normal [9]float32
}

// Backend computes matrices for an object.
type Backend interface {
	Name() string
	Compute(v View, p Projection, obj Placement) (Matrices, error)
}

// InstanceStep is the rotation added per instance, in radians (36 degrees).
const InstanceStep = math.Pi / 5

// instanceColumns is the width of the instance grid.
const instanceColumns = 5

// Instances lays out n copies on a grid five wide, centred on X and
// receding along -Z, spacing units apart. Copy i is rotated i*36 degrees
// about Y.
func Instances(n int, spacing float32) []Placement {
	out := make([]Placement, n)
	cols := min(n, instanceColumns)
	half := float32(cols-1) / 2
	for i := range out {
		col, row := i%instanceColumns, i/instanceColumns
		out[i] = Placement{
			Translation: [3]float32{(float32(col) - half) * spacing, 0, -float32(row) * spacing},
			Axis:        [3]float32{0, 1, 0},
			Angle:       float32(i) * InstanceStep,
			Scale:       1,
		}
	}
	return out
}
