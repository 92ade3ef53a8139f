// Package model holds mesh data on the CPU side, in the interleaved
// layout the renderer uploads to vertex buffers.
package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// VertexComponents is the number of floats a Vertex flattens to.
const VertexComponents = 8

// Vertex is one mesh vertex.
type Vertex struct {
	Pos      glm.Vec3
	Normal   glm.Vec3
	TexCoord glm.Vec2
}

// Data is a triangle mesh ready for upload.
type Data struct {
	Vertices []Vertex
	Indices  []uint16
}

// Interleave flattens the vertices into the position, normal, texcoord
// float stream vertex buffers are built from.
func (d *Data) Interleave() []float32 {
	out := make([]float32, 0, len(d.Vertices)*VertexComponents)
	for _, v := range d.Vertices {
		out = append(out,
			v.Pos.X(), v.Pos.Y(), v.Pos.Z(),
			v.Normal.X(), v.Normal.Y(), v.Normal.Z(),
			v.TexCoord.X(), v.TexCoord.Y(),
		)
	}
	return out
}
