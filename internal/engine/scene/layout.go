package scene

import (
	"fmt"

	"github.com/Faultbox/meshdemo/internal/engine/transform"
)

// Target says which buffer a draw call uses.
type Target int

const (
	TargetMesh Target = iota
	TargetGround
)

// DrawCall is one object's draw for one frame.
type DrawCall struct {
	Target   Target
	Matrices transform.Matrices
}

// Layout is where things stand in the scene, independent of the GPU.
type Layout struct {
	Placements []transform.Placement
	Ground     transform.Placement
	FOV        float32
	Near       float32
	Far        float32
}

// NewLayout places cfg.Instances mesh copies and the ground plane.
// Ground vertices already sit at their final height, so it is drawn with
// the identity placement.
func NewLayout(cfg Config) Layout {
	return Layout{
		Placements: transform.Instances(cfg.Instances, cfg.Spacing),
		Ground:     transform.Identity,
		FOV:        cfg.FOV,
		Near:       cfg.Near,
		Far:        cfg.Far,
	}
}

// Plan computes projection * view * model for every object: the mesh
// copies first, then the ground.
func (l *Layout) Plan(backend transform.Backend, view transform.View, aspect float32) ([]DrawCall, error) {
	if aspect <= 0 {
		return nil, fmt.Errorf("invalid aspect ratio %g", aspect)
	}
	proj := transform.Projection{FOV: l.FOV, Aspect: aspect, Near: l.Near, Far: l.Far}

	calls := make([]DrawCall, 0, len(l.Placements)+1)
	for i, p := range l.Placements {
		m, err := backend.Compute(view, proj, p)
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", i, err)
		}
		calls = append(calls, DrawCall{Target: TargetMesh, Matrices: m})
	}

	m, err := backend.Compute(view, proj, l.Ground)
	if err != nil {
		return nil, fmt.Errorf("ground: %w", err)
	}
	return append(calls, DrawCall{Target: TargetGround, Matrices: m}), nil
}
