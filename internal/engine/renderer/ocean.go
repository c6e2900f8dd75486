package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tideline/internal/ocean"
)

// oceanBuffer mirrors the grid's position buffer on the GPU. It is
// reallocated when the grid generation changes and streamed otherwise.
type oceanBuffer struct {
	vao, vbo   uint32
	generation int
	count      int
}

func (b *oceanBuffer) delete() {
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	*b = oceanBuffer{}
}

func (b *oceanBuffer) upload(g *ocean.Grid) (reallocated bool) {
	if b.vao == 0 {
		gl.GenVertexArrays(1, &b.vao)
		gl.GenBuffers(1, &b.vbo)
		gl.BindVertexArray(b.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
		gl.EnableVertexAttribArray(0)
		b.generation = -1
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	size := len(g.Positions) * 4
	if b.generation != g.Generation {
		var ptr unsafe.Pointer
		if size > 0 {
			ptr = gl.Ptr(g.Positions)
		}
		gl.BufferData(gl.ARRAY_BUFFER, size, ptr, gl.DYNAMIC_DRAW)
		b.generation = g.Generation
		b.count = g.Len()
		return true
	}
	if size > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(g.Positions))
	}
	return false
}

// DrawOcean streams the grid positions and draws them as additive points
// that do not write depth.
func (r *Renderer) DrawOcean(g *ocean.Grid, v View) {
	if r.ocean.upload(g) {
		r.log.Debug("ocean buffer reallocated",
			zap.Int("points", r.ocean.count),
			zap.Int("generation", r.ocean.generation))
	}
	if r.ocean.count == 0 {
		return
	}

	p := r.oceanProgram
	p.Use()
	p.SetMat4("uView", v.View)
	p.SetMat4("uProj", v.Projection)
	p.SetFloat("uSize", g.Material.Size)
	p.SetFloat("uScale", v.PointScale)
	p.SetVec3("uColor", g.Material.Color)
	p.SetFloat("uOpacity", g.Material.Opacity)
	r.setFog(p)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.BindVertexArray(r.ocean.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(r.ocean.count))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}
