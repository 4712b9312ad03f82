package transform

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Float64 computes matrices in double precision and narrows the result.
type Float64 struct{}

// Name implements Backend.
func (Float64) Name() string { return "mgl64" }

// Compute implements Backend.
func (Float64) Compute(v View, p Projection, obj Placement) (Matrices, error) {
	proj := mgl64.Perspective(mgl64.DegToRad(float64(p.FOV)), float64(p.Aspect), float64(p.Near), float64(p.Far))
	view := mgl64.LookAtV(widen(v.Eye), widen(v.Target), widen(v.Up))
	model := model64(obj)

	m3 := model.Mat3()
	if m3.Det() == 0 {
		return Matrices{}, ErrSingular
	}
	normal := m3.Inv().Transpose()

	mvp := proj.Mul4(view).Mul4(model)

	var out Matrices
	narrow(out.MVP[:], mvp[:])
	narrow(out.Model[:], model[:])
	narrow(out.Normal[:], normal[:])
	return out, nil
}

func model64(obj Placement) mgl64.Mat4 {
	t := widen(obj.Translation)
	s := float64(obj.Scale)
	m := mgl64.Translate3D(t[0], t[1], t[2])
	if obj.Angle != 0 {
		m = m.Mul4(mgl64.HomogRotate3D(float64(obj.Angle), widen(obj.Axis).Normalize()))
	}
	return m.Mul4(mgl64.Scale3D(s, s, s))
}

func widen(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func narrow(dst []float32, src []float64) {
	for i, f := range src {
		dst[i] = float32(f)
	}
}
