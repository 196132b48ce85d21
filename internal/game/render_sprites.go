package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders particles as round point sprites.
// buf format: [x, y, z, size, r, g, b, a] * N (8 floats per sprite).
func (r *Renderer) DrawSprites(buf []float32) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 8
	if count > MaxParticleRender {
		count = MaxParticleRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
