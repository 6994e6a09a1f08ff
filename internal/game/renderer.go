package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"

	"robot/internal/anim"
	"robot/internal/config"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// mesh is one static vertex buffer in the pos+normal layout.
type mesh struct {
	vao, vbo uint32
	count    int32
	mode     uint32
}

func newMesh(verts []float32, mode uint32) *mesh {
	m := &mesh{count: int32(len(verts) / vertexFloats), mode: mode}
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	stride := int32(vertexFloats * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.BindVertexArray(0)
	return m
}

func (m *mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(m.mode, 0, m.count)
}

func (m *mesh) delete() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}

type torusKey struct{ inner, outer float64 }

type Renderer struct {
	prog uint32

	uMVP       int32
	uNormalMat int32
	uColor     int32
	uLightDir  int32
	uLit       int32

	cube   *mesh
	sphere *mesh
	axes   *mesh
	tori   map[torusKey]*mesh

	viewProj mgl32.Mat4
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(solidVertSrc, solidFragSrc)
	if err != nil {
		return nil, fmt.Errorf("solid program: %w", err)
	}

	r := &Renderer{
		prog:   prog,
		cube:   newMesh(cubeVertices(), gl.TRIANGLES),
		sphere: newMesh(sphereVertices(SphereStacks, SphereSlices), gl.TRIANGLES),
		axes:   newMesh(axisVertices(AxisLength), gl.LINES),
		tori:   make(map[torusKey]*mesh),
	}

	gl.UseProgram(prog)
	r.uMVP = gl.GetUniformLocation(prog, gl.Str("uMVP\x00"))
	r.uNormalMat = gl.GetUniformLocation(prog, gl.Str("uNormalMat\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uLightDir = gl.GetUniformLocation(prog, gl.Str("uLightDir\x00"))
	r.uLit = gl.GetUniformLocation(prog, gl.Str("uLit\x00"))
	gl.Uniform3f(r.uLightDir, LightDir[0], LightDir[1], LightDir[2])

	return r, nil
}

func (r *Renderer) Destroy() {
	r.cube.delete()
	r.sphere.delete()
	r.axes.delete()
	for _, m := range r.tori {
		m.delete()
	}
	gl.DeleteProgram(r.prog)
}

// BeginFrame clears the framebuffer and sets up the view and projection for
// this frame. A zero-height framebuffer (minimised window) keeps the aspect
// at 1.
func (r *Renderer) BeginFrame(cam *anim.OrbitCamera, proj config.Camera, fbW, fbH int, wireframe bool) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := Palette.Clear.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	aspect := float32(1)
	if fbH > 0 {
		aspect = float32(fbW) / float32(fbH)
	}
	projection := mgl32.Perspective(mgl32.DegToRad(float32(proj.FOV)), aspect, float32(proj.Near), float32(proj.Far))
	view := mgl32.LookAtV(vec32(cam.Eye()), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	r.viewProj = projection.Mul4(view)

	gl.UseProgram(r.prog)
}

// DrawScene draws every primitive in the tree.
func (r *Renderer) DrawScene(root *anim.Node) {
	root.Walk(func(n *anim.Node) {
		switch n.Primitive {
		case anim.PrimBox:
			r.drawSolid(r.cube, scaled(n.World, n.Size), n.Color)
		case anim.PrimSphere:
			r.drawSolid(r.sphere, scaled(n.World, n.Size), n.Color)
		case anim.PrimTorus:
			r.drawSolid(r.torus(n.Size[0], n.Size[1]), mat32(n.World), n.Color)
		}
	})
}

// DrawAxes draws the world reference axes unlit.
func (r *Renderer) DrawAxes() {
	gl.Uniform1i(r.uLit, 0)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &r.viewProj[0])
	gl.BindVertexArray(r.axes.vao)
	for i, c := range []RGB{Palette.AxisX, Palette.AxisY, Palette.AxisZ} {
		cr, cg, cb := c.Floats()
		gl.Uniform3f(r.uColor, cr, cg, cb)
		gl.DrawArrays(gl.LINES, int32(i*2), 2)
	}
}

func (r *Renderer) drawSolid(m *mesh, model mgl32.Mat4, color mgl64.Vec3) {
	mvp := r.viewProj.Mul4(model)
	normal := model.Mat3().Inv().Transpose()
	gl.Uniform1i(r.uLit, 1)
	gl.UniformMatrix4fv(r.uMVP, 1, false, &mvp[0])
	gl.UniformMatrix3fv(r.uNormalMat, 1, false, &normal[0])
	c := vec32(color)
	gl.Uniform3f(r.uColor, c[0], c[1], c[2])
	m.draw()
}

func (r *Renderer) torus(inner, outer float64) *mesh {
	key := torusKey{inner, outer}
	if m, ok := r.tori[key]; ok {
		return m
	}
	m := newMesh(torusVertices(inner, outer, TorusSides, TorusRings), gl.TRIANGLES)
	r.tori[key] = m
	return m
}

func scaled(world mgl64.Mat4, size mgl64.Vec3) mgl32.Mat4 {
	s := thick(size)
	return mat32(world.Mul4(mgl64.Scale3D(s[0], s[1], s[2])))
}
