// Package scene draws the lit mesh scene: a row of mesh copies standing on
// a ground plane, seen through a free camera.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/meshdemo/internal/engine/camera"
	"github.com/Faultbox/meshdemo/internal/engine/mesh"
	"github.com/Faultbox/meshdemo/internal/engine/shader"
	"github.com/Faultbox/meshdemo/internal/engine/shaders"
	"github.com/Faultbox/meshdemo/internal/engine/transform"
	"github.com/Faultbox/meshdemo/internal/logger"
)

// Config contains scene configuration options.
type Config struct {
	Instances   int
	Spacing     float32
	FOV         float32 // degrees
	Near        float32
	Far         float32
	LightDir    [3]float32
	GroundSize  float32
	GroundY     float32
	GroundColor [3]float32
	ClearColor  [4]float32
}

// Scene owns the GPU resources of the lit scene.
type Scene struct {
	config  Config
	layout  Layout
	backend transform.Backend
	camera  *camera.FreeCamera

	program *shader.Program
	mesh    *mesh.Buffer
	ground  *mesh.Buffer

	log *zap.Logger
}

// New uploads the mesh and ground plane and compiles the lit shaders.
// Requires a current OpenGL context.
func New(cfg Config, data *mesh.Data, cam *camera.FreeCamera, backend transform.Backend) (*Scene, error) {
	s := &Scene{
		config:  cfg,
		layout:  NewLayout(cfg),
		backend: backend,
		camera:  cam,
		log:     logger.Named("scene"),
	}

	var err error
	s.program, err = shader.NewProgram(shaders.LitVertexShader, shaders.LitFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}

	s.mesh, err = mesh.Upload(data.Vertices)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("mesh %q: %w", data.Name, err)
	}

	s.ground, err = mesh.Upload(mesh.GroundPlane(cfg.GroundSize, cfg.GroundY, cfg.GroundColor))
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("ground plane: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	s.log.Info("scene ready",
		zap.String("mesh", data.Name),
		zap.Int("triangles", data.Triangles()),
		zap.Int32("vertices", s.mesh.Count()+s.ground.Count()),
		zap.Int("instances", len(s.layout.Placements)),
		zap.String("math", backend.Name()),
	)
	return s, nil
}

// Draw clears the framebuffer and draws every mesh copy and the ground.
func (s *Scene) Draw(aspect float32) error {
	calls, err := s.layout.Plan(s.backend, s.view(), aspect)
	if err != nil {
		return err
	}

	c := s.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	s.program.Use()
	s.program.SetVec3("uLightDir", s.config.LightDir)
	s.program.SetVec3("uCameraPos", s.camera.Position)

	for i := range calls {
		call := &calls[i]
		s.program.SetMat4("uMVP", &call.Matrices.MVP)
		s.program.SetMat4("uModel", &call.Matrices.Model)
		s.program.SetMat3("uNormal", &call.Matrices.Normal)

		switch call.Target {
		case TargetGround:
			s.ground.Draw()
		default:
			s.mesh.Draw()
		}
	}
	return nil
}

func (s *Scene) view() transform.View {
	return transform.View{
		Eye:    s.camera.Position,
		Target: s.camera.Target(),
		Up:     s.camera.Up,
	}
}

// Close releases GPU resources.
func (s *Scene) Close() {
	if s.mesh != nil {
		s.mesh.Delete()
	}
	if s.ground != nil {
		s.ground.Delete()
	}
	if s.program != nil {
		s.program.Delete()
	}
}
