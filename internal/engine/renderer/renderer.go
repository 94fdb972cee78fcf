// Package renderer draws the frontier wireframe and its bounding box with
// OpenGL. The shader contract is deliberately narrow: one MVP uniform, one
// position attribute, flat black lines on a white background.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vipo/internal/engine/shader"
	"github.com/Faultbox/vipo/internal/frontier"
	"github.com/Faultbox/vipo/internal/logger"
	"github.com/Faultbox/vipo/pkg/math"
)

const vertexShaderSrc = `#version 410 core
uniform mat4 MVP;
in vec3 vPos;
void main() {
	gl_Position = MVP * vec4(vPos, 1.0);
}`

const fragmentShaderSrc = `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(0.0, 0.0, 0.0, 1.0);
}`

// Line widths: the frontier reads slightly heavier than the box cage, and
// the three axis edges heavier still.
const (
	frontierLineWidth = 1.5
	axisLineWidth     = 3.0
	cageLineWidth     = 1.0
)

// axisEdgeCount is the number of AABB edges drawn thick (from the min
// corner along +x, +y, +z), per frontier.AABBEdges.
const axisEdgeCount = 3

// mesh is one indexed line set on the GPU.
type mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Renderer owns the GPU resources for one frontier: the shader program and
// the two vertex/index buffer pairs (frontier wireframe, AABB cage).
type Renderer struct {
	program  uint32
	mvpLoc   int32
	frontier mesh
	aabb     mesh
}

// New uploads the frontier and AABB geometry and compiles the line shader.
// Must be called after the OpenGL context is current.
func New(fr *frontier.Frontier, box frontier.AABB) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{
		program: program,
		mvpLoc:  shader.UniformLocation(program, "MVP"),
	}

	posLoc, err := shader.AttribLocation(program, "vPos")
	if err != nil {
		r.Close()
		return nil, err
	}

	r.frontier = uploadMesh(fr.Vertices, edgeIndices(fr.Edges), posLoc)
	corners := box.Corners()
	r.aabb = uploadMesh(corners[:], edgeIndices(frontier.AABBEdges[:]), posLoc)

	logger.Debug("geometry uploaded",
		zap.Int("vertices", len(fr.Vertices)),
		zap.Int("edges", len(fr.Edges)),
	)

	gl.ClearColor(1, 1, 1, 1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return r, nil
}

// Close releases GPU resources in reverse order of creation. Safe to call
// on a partially constructed renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	deleteMesh(&r.aabb)
	deleteMesh(&r.frontier)
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

// Resize updates the GL viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw clears the frame and renders the frontier edges plus the AABB cage
// under the given model-view-projection transform.
func (r *Renderer) Draw(mvp math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, mvp.Ptr())

	// Frontier wireframe. An empty edge list leaves only the AABB.
	if r.frontier.indexCount > 0 {
		gl.BindVertexArray(r.frontier.vao)
		gl.LineWidth(frontierLineWidth)
		gl.DrawElementsWithOffset(gl.LINES, r.frontier.indexCount, gl.UNSIGNED_INT, 0)
	}

	// AABB in two passes: thick axis edges, thin remainder.
	gl.BindVertexArray(r.aabb.vao)
	gl.LineWidth(axisLineWidth)
	gl.DrawElementsWithOffset(gl.LINES, axisEdgeCount*2, gl.UNSIGNED_INT, 0)
	gl.LineWidth(cageLineWidth)
	gl.DrawElementsWithOffset(gl.LINES, r.aabb.indexCount-axisEdgeCount*2, gl.UNSIGNED_INT,
		uintptr(axisEdgeCount*2*4))

	gl.BindVertexArray(0)
}

// uploadMesh creates a VAO/VBO/EBO triple for an indexed line set. The
// geometry never changes after load, hence STATIC_DRAW.
func uploadMesh(vertices []math.Vec3, indices []uint32, posLoc uint32) mesh {
	var m mesh

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	stride := int32(unsafe.Sizeof(math.Vec3{}))

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(stride), gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(posLoc)
	gl.VertexAttribPointerWithOffset(posLoc, 3, gl.FLOAT, false, stride, 0)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	if len(indices) > 0 {
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}
	m.indexCount = int32(len(indices))

	gl.BindVertexArray(0)
	return m
}

func deleteMesh(m *mesh) {
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
}

// edgeIndices flattens an edge list into the index buffer layout.
func edgeIndices(edges []frontier.Edge) []uint32 {
	out := make([]uint32, 0, len(edges)*2)
	for _, e := range edges {
		out = append(out, e.A, e.B)
	}
	return out
}
