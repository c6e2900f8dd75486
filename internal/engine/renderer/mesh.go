package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tideline/internal/engine/lighting"
	"github.com/Faultbox/tideline/internal/engine/model"
)

type meshKey = *model.Mesh

type meshBuffer struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func (b *meshBuffer) delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
}

func newMeshBuffer(m *model.Mesh) *meshBuffer {
	b := &meshBuffer{indexCount: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	stride := int32(unsafe.Sizeof(model.Vertex{}))
	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(stride), gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenBuffers(1, &b.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return b
}

// DrawModel draws a lit model. Nil models and empty meshes are skipped.
func (r *Renderer) DrawModel(m *model.Model, v View) {
	if m == nil || m.Mesh == nil || len(m.Mesh.Indices) == 0 {
		return
	}
	b, ok := r.meshes[m.Mesh]
	if !ok {
		b = newMeshBuffer(m.Mesh)
		r.meshes[m.Mesh] = b
	}

	modelMat := m.Transform.Matrix()
	l := r.config.Look
	rig := l.Rig

	p := r.meshProgram
	p.Use()
	p.SetMat4("uModel", modelMat)
	p.SetMat3("uNormalMat", modelMat.Mat3().Inv().Transpose())
	p.SetMat4("uView", v.View)
	p.SetMat4("uProj", v.Projection)
	p.SetVec3("uCameraPos", v.Eye)
	p.SetVec3("uBaseColor", l.MeshColor)
	p.SetFloat("uRoughness", m.Surface.Roughness)
	p.SetFloat("uMetalness", m.Surface.Metalness)

	p.SetVec3("uAmbient", rig.Ambient)
	p.SetVec3("uHemiSky", lighting.Scale(rig.Hemisphere.Sky, rig.Hemisphere.Intensity))
	p.SetVec3("uHemiGround", lighting.Scale(rig.Hemisphere.Ground, rig.Hemisphere.Intensity))
	p.SetVec3("uKeyDir", rig.Key.Direction())
	p.SetVec3("uKeyColor", lighting.Scale(rig.Key.Color, rig.Key.Intensity))
	p.SetVec3("uFillDir", rig.Fill.Direction())
	p.SetVec3("uFillColor", lighting.Scale(rig.Fill.Color, rig.Fill.Intensity))
	p.SetVec3("uAccentPos", rig.Accent.Position)
	p.SetVec3("uAccentColor", lighting.Scale(rig.Accent.Color, rig.Accent.Intensity))
	p.SetFloat("uAccentRange", rig.Accent.Range)
	r.setFog(p)

	gl.BindVertexArray(b.vao)
	gl.DrawElements(gl.TRIANGLES, b.indexCount, gl.UNSIGNED_INT, nil)
}
