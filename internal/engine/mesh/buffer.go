package mesh

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Attribute locations shared by every shader in the demos.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribColor    = 2
)

var vertexStride = int32(unsafe.Sizeof(Vertex{}))

// Buffer is a vertex array object with one interleaved vertex buffer.
type Buffer struct {
	vao   uint32
	vbo   uint32
	count int32
}

// Upload copies vertices into a new static GPU buffer.
// Requires a current OpenGL context.
func Upload(vertices []Vertex) (*Buffer, error) {
	if len(vertices) == 0 {
		return nil, errors.New("upload: no vertices")
	}

	b := &Buffer{count: int32(len(vertices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	if b.vao == 0 || b.vbo == 0 {
		b.Delete()
		return nil, errors.New("upload: failed to allocate vertex array")
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexStride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(AttribPosition, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(Vertex{}.Position))
	gl.EnableVertexAttribArray(AttribPosition)

	gl.VertexAttribPointerWithOffset(AttribNormal, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(Vertex{}.Normal))
	gl.EnableVertexAttribArray(AttribNormal)

	gl.VertexAttribPointerWithOffset(AttribColor, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(Vertex{}.Color))
	gl.EnableVertexAttribArray(AttribColor)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		b.Delete()
		return nil, errors.New("upload: OpenGL error while filling buffer")
	}
	return b, nil
}

// Count returns the number of vertices drawn.
func (b *Buffer) Count() int32 {
	return b.count
}

// Draw issues one non-indexed triangle list draw call.
func (b *Buffer) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects.
func (b *Buffer) Delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
