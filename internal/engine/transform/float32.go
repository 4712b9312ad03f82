package transform

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Float32 computes matrices in single precision.
type Float32 struct{}

// Name implements Backend.
func (Float32) Name() string { return "mgl32" }

// Compute implements Backend.
func (Float32) Compute(v View, p Projection, obj Placement) (Matrices, error) {
	proj := mgl32.Perspective(mgl32.DegToRad(p.FOV), p.Aspect, p.Near, p.Far)
	view := mgl32.LookAtV(v.Eye, v.Target, v.Up)
	model := model32(obj)

	normal, err := normal32(model)
	if err != nil {
		return Matrices{}, err
	}

	return Matrices{
		MVP:    proj.Mul4(view).Mul4(model),
		Model:  model,
		Normal: normal,
	}, nil
}

func model32(obj Placement) mgl32.Mat4 {
	t := obj.Translation
	m := mgl32.Translate3D(t[0], t[1], t[2])
	if obj.Angle != 0 {
		m = m.Mul4(mgl32.HomogRotate3D(obj.Angle, mgl32.Vec3(obj.Axis).Normalize()))
	}
	return m.Mul4(mgl32.Scale3D(obj.Scale, obj.Scale, obj.Scale))
}

// normal32 returns the inverse-transpose of the model's upper 3x3.
func normal32(model mgl32.Mat4) (mgl32.Mat3, error) {
	m3 := model.Mat3()
	if det := m3.Det(); det == 0 {
		return mgl32.Mat3{}, ErrSingular
	}
	return m3.Inv().Transpose(), nil
}
