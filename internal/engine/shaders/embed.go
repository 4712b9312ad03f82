// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TriangleVertexShader passes positions straight through to clip space.
//
//go:embed triangle.vert
var TriangleVertexShader string

// TriangleFragmentShader paints every fragment solid green.
//
//go:embed triangle.frag
var TriangleFragmentShader string

// LitVertexShader is the vertex shader for the lit mesh scene.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader is the fragment shader for the lit mesh scene.
//
//go:embed lit.frag
var LitFragmentShader string
