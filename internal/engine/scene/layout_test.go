package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/meshdemo/internal/engine/transform"
)

func testConfig() Config {
	return Config{
		Instances: 10,
		Spacing:   2.5,
		FOV:       45,
		Near:      0.1,
		Far:       100,
	}
}

var testView = transform.View{Eye: [3]float32{0, 1, 8}, Target: [3]float32{0, 1, 7}, Up: [3]float32{0, 1, 0}}

func TestPlanDrawsEveryInstanceThenGround(t *testing.T) {
	layout := NewLayout(testConfig())

	for _, be := range []transform.Backend{transform.Float32{}, transform.Float64{}} {
		t.Run(be.Name(), func(t *testing.T) {
			calls, err := layout.Plan(be, testView, 1.5)
			if err != nil {
				t.Fatalf("Plan: %v", err)
			}
			if len(calls) != 11 {
				t.Fatalf("expected 10 mesh draws + 1 ground draw, got %d", len(calls))
			}
			for i, c := range calls[:10] {
				if c.Target != TargetMesh {
					t.Errorf("call %d: expected mesh target", i)
				}
			}
			if calls[10].Target != TargetGround {
				t.Error("last call should draw the ground")
			}

			// Copies differ in their model matrix.
			if calls[0].Matrices.Model == calls[1].Matrices.Model {
				t.Error("instances 0 and 1 share a model matrix")
			}
		})
	}
}

func TestPlanGroundUsesIdentityModel(t *testing.T) {
	layout := NewLayout(testConfig())
	calls, err := layout.Plan(transform.Float32{}, testView, 1.5)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}

	ground := calls[len(calls)-1].Matrices.Model
	for i, v := range ground {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		if v != want {
			t.Fatalf("ground model[%d] = %f, want identity", i, v)
		}
	}
}

func TestPlanRejectsBadAspect(t *testing.T) {
	layout := NewLayout(testConfig())
	if _, err := layout.Plan(transform.Float32{}, testView, 0); err == nil {
		t.Error("expected error for zero aspect")
	}
}

func TestPlanPropagatesSingular(t *testing.T) {
	layout := NewLayout(testConfig())
	layout.Placements[3].Scale = 0

	_, err := layout.Plan(transform.Float32{}, testView, 1.5)
	if !errors.Is(err, transform.ErrSingular) {
		t.Errorf("expected ErrSingular, got %v", err)
	}
}
