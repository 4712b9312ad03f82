package demo

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/meshdemo/internal/engine/input"
	"github.com/Faultbox/meshdemo/internal/engine/mesh"
	"github.com/Faultbox/meshdemo/internal/engine/shader"
	"github.com/Faultbox/meshdemo/internal/engine/shaders"
)

// Triangle draws one green triangle on black.
type Triangle struct {
	program *shader.Program
	buffer  *mesh.Buffer
}

// NewTriangle is the FrameFactory of the first demo.
func NewTriangle(*Demo) (Frame, error) {
	program, err := shader.NewProgram(shaders.TriangleVertexShader, shaders.TriangleFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("triangle shader: %w", err)
	}

	buffer, err := mesh.Upload(mesh.Triangle())
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("triangle buffer: %w", err)
	}

	return &Triangle{program: program, buffer: buffer}, nil
}

// Update implements Frame. The triangle ignores input.
func (t *Triangle) Update([]input.Event) {}

// Render implements Frame.
func (t *Triangle) Render(int, int) error {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	t.program.Use()
	t.buffer.Draw()
	return nil
}

// Close implements Frame.
func (t *Triangle) Close() {
	t.buffer.Delete()
	t.program.Delete()
}
