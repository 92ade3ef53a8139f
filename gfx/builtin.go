// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

// Built-in geometry in PosNormTexLayout order: position, normal,
// texture coordinates. Front faces wind clockwise when seen from
// outside, matching the renderer's culling setup.

// cubeVertices is a unit cube centered on the origin, four vertices
// per face so each face gets its own normal.
var cubeVertices = []float32{
	// front, +z
	-0.5, -0.5, 0.5, 0, 0, 1, 0, 0,
	-0.5, 0.5, 0.5, 0, 0, 1, 0, 1,
	0.5, 0.5, 0.5, 0, 0, 1, 1, 1,
	0.5, -0.5, 0.5, 0, 0, 1, 1, 0,
	// back, -z
	0.5, -0.5, -0.5, 0, 0, -1, 0, 0,
	0.5, 0.5, -0.5, 0, 0, -1, 0, 1,
	-0.5, 0.5, -0.5, 0, 0, -1, 1, 1,
	-0.5, -0.5, -0.5, 0, 0, -1, 1, 0,
	// right, +x
	0.5, -0.5, 0.5, 1, 0, 0, 0, 0,
	0.5, 0.5, 0.5, 1, 0, 0, 0, 1,
	0.5, 0.5, -0.5, 1, 0, 0, 1, 1,
	0.5, -0.5, -0.5, 1, 0, 0, 1, 0,
	// left, -x
	-0.5, -0.5, -0.5, -1, 0, 0, 0, 0,
	-0.5, 0.5, -0.5, -1, 0, 0, 0, 1,
	-0.5, 0.5, 0.5, -1, 0, 0, 1, 1,
	-0.5, -0.5, 0.5, -1, 0, 0, 1, 0,
	// top, +y
	-0.5, 0.5, 0.5, 0, 1, 0, 0, 0,
	-0.5, 0.5, -0.5, 0, 1, 0, 0, 1,
	0.5, 0.5, -0.5, 0, 1, 0, 1, 1,
	0.5, 0.5, 0.5, 0, 1, 0, 1, 0,
	// bottom, -y
	-0.5, -0.5, -0.5, 0, -1, 0, 0, 0,
	-0.5, -0.5, 0.5, 0, -1, 0, 0, 1,
	0.5, -0.5, 0.5, 0, -1, 0, 1, 1,
	0.5, -0.5, -0.5, 0, -1, 0, 1, 0,
}

var cubeIndices = []uint16{
	0, 1, 2, 0, 2, 3,
	4, 5, 6, 4, 6, 7,
	8, 9, 10, 8, 10, 11,
	12, 13, 14, 12, 14, 15,
	16, 17, 18, 16, 18, 19,
	20, 21, 22, 20, 22, 23,
}

// quadVertices spans the full clip space, the composite pass draws it
// without any transform.
var quadVertices = []float32{
	-1, -1, 0, 0, 0, 1, 0, 0,
	-1, 1, 0, 0, 0, 1, 0, 1,
	1, 1, 0, 0, 0, 1, 1, 1,
	1, -1, 0, 0, 0, 1, 1, 0,
}

var quadIndices = []uint16{
	0, 1, 2, 0, 2, 3,
}
