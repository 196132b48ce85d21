package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe pointer form for VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Box program.
	boxProg uint32
	boxVAO  uint32
	boxVBO  uint32

	boxUProj     int32
	boxUView     int32
	boxUModel    int32
	boxUColor    int32
	boxULightDir int32
	boxUAmbient  int32

	// Particle sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUProj       int32
	spUView       int32
	spUPointScale int32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	proj mgl32.Mat4
	view mgl32.Mat4
}

// cubeVerts is a unit cube centred on the origin: 36 vertices of
// position (3) + normal (3).
var cubeVerts = [...]float32{
	// +X
	0.5, -0.5, -0.5, 1, 0, 0, 0.5, 0.5, -0.5, 1, 0, 0, 0.5, 0.5, 0.5, 1, 0, 0,
	0.5, -0.5, -0.5, 1, 0, 0, 0.5, 0.5, 0.5, 1, 0, 0, 0.5, -0.5, 0.5, 1, 0, 0,
	// -X
	-0.5, -0.5, -0.5, -1, 0, 0, -0.5, 0.5, 0.5, -1, 0, 0, -0.5, 0.5, -0.5, -1, 0, 0,
	-0.5, -0.5, -0.5, -1, 0, 0, -0.5, -0.5, 0.5, -1, 0, 0, -0.5, 0.5, 0.5, -1, 0, 0,
	// +Y
	-0.5, 0.5, -0.5, 0, 1, 0, -0.5, 0.5, 0.5, 0, 1, 0, 0.5, 0.5, 0.5, 0, 1, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0.5, 0.5, 0.5, 0, 1, 0, 0.5, 0.5, -0.5, 0, 1, 0,
	// -Y
	-0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, 0.5, 0, -1, 0, -0.5, -0.5, 0.5, 0, -1, 0,
	-0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, -0.5, 0, -1, 0, 0.5, -0.5, 0.5, 0, -1, 0,
	// +Z
	-0.5, -0.5, 0.5, 0, 0, 1, 0.5, -0.5, 0.5, 0, 0, 1, 0.5, 0.5, 0.5, 0, 0, 1,
	-0.5, -0.5, 0.5, 0, 0, 1, 0.5, 0.5, 0.5, 0, 0, 1, -0.5, 0.5, 0.5, 0, 0, 1,
	// -Z
	-0.5, -0.5, -0.5, 0, 0, -1, 0.5, 0.5, -0.5, 0, 0, -1, 0.5, -0.5, -0.5, 0, 0, -1,
	-0.5, -0.5, -0.5, 0, 0, -1, -0.5, 0.5, -0.5, 0, 0, -1, 0.5, 0.5, -0.5, 0, 0, -1,
}

func NewRenderer() (*Renderer, error) {
	boxProg, err := linkProgram(boxVertSrc, boxFragSrc)
	if err != nil {
		return nil, fmt.Errorf("box program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(boxProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}

	r := &Renderer{
		boxProg:    boxProg,
		spriteProg: spriteProg,
	}

	// Box VAO/VBO: static unit cube.
	var bVAO, bVBO uint32
	gl.GenVertexArrays(1, &bVAO)
	gl.GenBuffers(1, &bVBO)
	gl.BindVertexArray(bVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, bVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeVerts)*4, gl.Ptr(&cubeVerts[0]), gl.STATIC_DRAW)
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))
	r.boxVAO = bVAO
	r.boxVBO = bVBO

	// Box uniforms.
	gl.UseProgram(boxProg)
	r.boxUProj = gl.GetUniformLocation(boxProg, gl.Str("uProj\x00"))
	r.boxUView = gl.GetUniformLocation(boxProg, gl.Str("uView\x00"))
	r.boxUModel = gl.GetUniformLocation(boxProg, gl.Str("uModel\x00"))
	r.boxUColor = gl.GetUniformLocation(boxProg, gl.Str("uColor\x00"))
	r.boxULightDir = gl.GetUniformLocation(boxProg, gl.Str("uLightDir\x00"))
	r.boxUAmbient = gl.GetUniformLocation(boxProg, gl.Str("uAmbient\x00"))
	gl.Uniform3f(r.boxULightDir, -0.4, -0.8, -0.45)
	gl.Uniform1f(r.boxUAmbient, 0.45)

	// Sprite VAO/VBO: streaming buffer, 8 floats per sprite
	// (x, y, z, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)
	spStride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxParticleRender*int(spStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, spStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, spStride, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, spStride, glOffset(4*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	// Sprite uniforms.
	gl.UseProgram(spriteProg)
	r.spUProj = gl.GetUniformLocation(spriteProg, gl.Str("uProj\x00"))
	r.spUView = gl.GetUniformLocation(spriteProg, gl.Str("uView\x00"))
	r.spUPointScale = gl.GetUniformLocation(spriteProg, gl.Str("uPointScale\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.boxVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.boxVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.boxProg, r.spriteProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
}

// BeginFrame clears the framebuffer and uploads the camera matrices.
func (r *Renderer) BeginFrame(cam *Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.proj = Projection(fbW, fbH)
	r.view = cam.View()

	gl.UseProgram(r.boxProg)
	gl.BindVertexArray(r.boxVAO)
	gl.UniformMatrix4fv(r.boxUProj, 1, false, &r.proj[0])
	gl.UniformMatrix4fv(r.boxUView, 1, false, &r.view[0])

	gl.UseProgram(r.spriteProg)
	gl.UniformMatrix4fv(r.spUProj, 1, false, &r.proj[0])
	gl.UniformMatrix4fv(r.spUView, 1, false, &r.view[0])
	// Perspective point scaling: world size to screen pixels at depth 1.
	gl.Uniform1f(r.spUPointScale, float32(fbH)*r.proj[5]*0.5)

	gl.UseProgram(r.boxProg)
	gl.BindVertexArray(r.boxVAO)
}

// DrawBox renders an axis-aligned box at centre with the given extents.
func (r *Renderer) DrawBox(cx, cy, cz, sx, sy, sz float64, col RGB) {
	r.DrawBoxTilted(cx, cy, cz, sx, sy, sz, 0, col)
}

// DrawBoxTilted renders a box rotated around the z axis, used for the
// bird's velocity tilt.
func (r *Renderer) DrawBoxTilted(cx, cy, cz, sx, sy, sz, rotZ float64, col RGB) {
	gl.UseProgram(r.boxProg)
	gl.BindVertexArray(r.boxVAO)

	model := mgl32.Translate3D(float32(cx), float32(cy), float32(cz))
	if rotZ != 0 {
		model = model.Mul4(mgl32.HomogRotate3DZ(float32(rotZ)))
	}
	model = model.Mul4(mgl32.Scale3D(float32(sx), float32(sy), float32(sz)))
	gl.UniformMatrix4fv(r.boxUModel, 1, false, &model[0])

	cr, cg, cb := col.Vec3()
	gl.Uniform3f(r.boxUColor, cr, cg, cb)

	gl.DrawArrays(gl.TRIANGLES, 0, 36)
}
