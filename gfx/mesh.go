// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// VertexAttrib is one attribute of an interleaved vertex: the slot it
// feeds and how many float32 components it spans.
type VertexAttrib struct {
	Slot  AttribSlot
	Count int32
}

// VertexLayout describes an interleaved vertex buffer as the ordered
// list of its attributes. Offsets and stride follow from the order,
// there is no terminator.
type VertexLayout []VertexAttrib

// Stride returns the size of one vertex in bytes.
func (l VertexLayout) Stride() int32 {
	var total int32
	for _, attrib := range l {
		total += attrib.Count * 4
	}
	return total
}

// PosNormTexLayout is the layout of all meshes produced by the model
// importers: position, normal and texture coordinates, interleaved.
func PosNormTexLayout() VertexLayout {
	return VertexLayout{
		{Slot: PositionSlot, Count: 3},
		{Slot: NormalSlot, Count: 3},
		{Slot: TexCoordSlot, Count: 2},
	}
}

// Mesh owns a vertex and an index buffer on the GPU. Create one with
// NewMesh and free it with Release on the context thread.
type Mesh struct {
	vbo         uint32
	ibo         uint32
	layout      VertexLayout
	stride      int32
	indexCount  int32
	indexFormat uint32
}

// NewMesh uploads interleaved vertices and triangle indices into
// fresh GPU buffers. The vertex data must match the given layout.
func NewMesh(vertices []float32, indices []uint16, layout VertexLayout) *Mesh {
	mesh := &Mesh{
		layout:      layout,
		stride:      layout.Stride(),
		indexCount:  int32(len(indices)),
		indexFormat: gl.UNSIGNED_SHORT,
	}

	gl.GenBuffers(1, &mesh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &mesh.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	return mesh
}

// IndexCount returns the number of indices the mesh draws with.
func (m *Mesh) IndexCount() int32 {
	return m.indexCount
}

// draw binds the mesh's buffers, points every attribute of its layout
// and issues the indexed draw. A program must be in use.
func (m *Mesh) draw() {
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)

	var offset uintptr
	for _, attrib := range m.layout {
		gl.VertexAttribPointerWithOffset(uint32(attrib.Slot), attrib.Count, gl.FLOAT, false, m.stride, offset)
		offset += uintptr(attrib.Count) * 4
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, m.indexFormat, 0)
}

// Release implements Releasable.
func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ibo)
	m.vbo = 0
	m.ibo = 0
	m.indexCount = 0
}
