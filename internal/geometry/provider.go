package geometry

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

type glMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Provider uploads primitive meshes to the GPU once per kind and issues
// their draw calls. It assumes all required shader state has already been
// published for the current frame.
type Provider struct {
	meshes map[Kind]*glMesh
}

// NewProvider creates an empty mesh provider.
func NewProvider() *Provider {
	return &Provider{meshes: make(map[Kind]*glMesh)}
}

// Load generates and uploads the mesh for the given kind. Loading an
// already loaded kind is a no-op.
func (p *Provider) Load(kind Kind) error {
	if _, ok := p.meshes[kind]; ok {
		return nil
	}

	data := Generate(kind)
	mesh := &glMesh{indexCount: int32(len(data.Indices))}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.BindVertexArray(mesh.vao)

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	p.meshes[kind] = mesh
	return nil
}

// Draw issues the indexed draw call for the given kind. Unloaded kinds are
// ignored.
func (p *Provider) Draw(kind Kind) {
	mesh, ok := p.meshes[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Dispose releases all GPU buffers owned by the provider.
func (p *Provider) Dispose() {
	for kind, mesh := range p.meshes {
		gl.DeleteVertexArrays(1, &mesh.vao)
		gl.DeleteBuffers(1, &mesh.vbo)
		gl.DeleteBuffers(1, &mesh.ebo)
		delete(p.meshes, kind)
	}
}
