package model

import (
	"encoding/xml"
	"errors"
	"math"
	"strings"

	"github.com/devblok/prism/util/collada"
	glm "github.com/go-gl/mathgl/mgl32"
)

// ImportCollada converts the first geometry of a COLLADA document into
// mesh Data. Triangle inputs are resolved by semantic and offset, the
// VERTEX input indirects through the vertices element to the POSITION
// source. Geometry without normal or texcoord streams imports with
// those fields zeroed.
func ImportCollada(fileContents []byte) (*Data, error) {
	var doc collada.Collada
	if err := xml.Unmarshal(fileContents, &doc); err != nil {
		return nil, err
	}
	if len(doc.Geometries) == 0 {
		return nil, errors.New("model.ImportCollada(): document has no geometry")
	}

	mesh := doc.Geometries[0].Mesh

	stride := 0
	for _, in := range mesh.Triangles.Inputs {
		if int(in.Offset)+1 > stride {
			stride = int(in.Offset) + 1
		}
	}
	if stride == 0 {
		return nil, errors.New("model.ImportCollada(): triangles have no inputs")
	}

	var (
		positions, normals, texCoords []float32
		posOff, normOff, texOff       int
	)
	for _, in := range mesh.Triangles.Inputs {
		switch in.Semantic {
		case "VERTEX":
			src, err := positionSource(mesh)
			if err != nil {
				return nil, err
			}
			positions = src.Floats.Data
			posOff = int(in.Offset)
		case "NORMAL":
			src, err := findSource(mesh.Sources, in.Source)
			if err != nil {
				return nil, err
			}
			normals = src.Floats.Data
			normOff = int(in.Offset)
		case "TEXCOORD":
			src, err := findSource(mesh.Sources, in.Source)
			if err != nil {
				return nil, err
			}
			texCoords = src.Floats.Data
			texOff = int(in.Offset)
		}
	}
	if positions == nil {
		return nil, errors.New("model.ImportCollada(): triangles have no VERTEX input")
	}

	count := len(mesh.Triangles.Index) / stride
	if count > math.MaxUint16+1 {
		return nil, errors.New("model.ImportCollada(): geometry too large for 16 bit indices")
	}

	data := Data{
		Vertices: make([]Vertex, 0, count),
		Indices:  make([]uint16, 0, count),
	}
	for idx := 0; idx < count; idx++ {
		group := mesh.Triangles.Index[stride*idx : (stride*idx)+stride]

		var vert Vertex
		pos, ok := vec3At(positions, group[posOff])
		if !ok {
			return nil, errors.New("model.ImportCollada(): index outside position source")
		}
		vert.Pos = pos

		if normals != nil {
			norm, ok := vec3At(normals, group[normOff])
			if !ok {
				return nil, errors.New("model.ImportCollada(): index outside normal source")
			}
			vert.Normal = norm
		}
		if texCoords != nil {
			tex, ok := vec2At(texCoords, group[texOff])
			if !ok {
				return nil, errors.New("model.ImportCollada(): index outside texcoord source")
			}
			vert.TexCoord = tex
		}

		data.Vertices = append(data.Vertices, vert)
		data.Indices = append(data.Indices, uint16(idx))
	}
	return &data, nil
}

// positionSource resolves the POSITION input of the vertices element.
func positionSource(mesh collada.Mesh) (collada.Source, error) {
	for _, in := range mesh.Vertices.Inputs {
		if in.Semantic == "POSITION" {
			return findSource(mesh.Sources, in.Source)
		}
	}
	return collada.Source{}, errors.New("model.ImportCollada(): vertices have no POSITION input")
}

func findSource(sources []collada.Source, ref string) (collada.Source, error) {
	id := strings.TrimPrefix(ref, "#")
	for _, s := range sources {
		if s.ID == id {
			return s, nil
		}
	}
	return collada.Source{}, errors.New("model.ImportCollada(): source " + ref + " not found")
}

func vec3At(floats []float32, index int) (glm.Vec3, bool) {
	base := index * 3
	if base < 0 || base+3 > len(floats) {
		return glm.Vec3{}, false
	}
	return glm.Vec3{floats[base], floats[base+1], floats[base+2]}, true
}

func vec2At(floats []float32, index int) (glm.Vec2, bool) {
	base := index * 2
	if base < 0 || base+2 > len(floats) {
		return glm.Vec2{}, false
	}
	return glm.Vec2{floats[base], floats[base+1]}, true
}
