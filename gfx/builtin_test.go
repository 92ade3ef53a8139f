// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"testing"
)

func TestCubeGeometry(t *testing.T) {
	stride := int(PosNormTexLayout().Stride()) / 4
	if len(cubeVertices) != 24*stride {
		t.Fatalf("expected 24 vertices of %d floats, got %d floats", stride, len(cubeVertices))
	}
	if len(cubeIndices) != 36 {
		t.Fatalf("expected 36 indices, got %d", len(cubeIndices))
	}
	for i, index := range cubeIndices {
		if int(index) >= 24 {
			t.Fatalf("index %d out of range: %d", i, index)
		}
	}

	for v := 0; v < 24; v++ {
		base := v * stride
		for c := 0; c < 3; c++ {
			if p := cubeVertices[base+c]; p != 0.5 && p != -0.5 {
				t.Errorf("vertex %d: position component %f is not on the unit cube", v, p)
			}
		}
		var squared float32
		for c := 3; c < 6; c++ {
			n := cubeVertices[base+c]
			if n != 0 && n != 1 && n != -1 {
				t.Errorf("vertex %d: normal component %f is not axis aligned", v, n)
			}
			squared += n * n
		}
		if squared != 1 {
			t.Errorf("vertex %d: normal is not unit length", v)
		}
	}
}

func TestQuadGeometry(t *testing.T) {
	stride := int(PosNormTexLayout().Stride()) / 4
	if len(quadVertices) != 4*stride {
		t.Fatalf("expected 4 vertices of %d floats, got %d floats", stride, len(quadVertices))
	}
	if len(quadIndices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(quadIndices))
	}
	for i, index := range quadIndices {
		if int(index) >= 4 {
			t.Fatalf("index %d out of range: %d", i, index)
		}
	}

	for v := 0; v < 4; v++ {
		base := v * stride
		x, y, z := quadVertices[base], quadVertices[base+1], quadVertices[base+2]
		if (x != 1 && x != -1) || (y != 1 && y != -1) || z != 0 {
			t.Errorf("vertex %d: corner (%f, %f, %f) does not span clip space", v, x, y, z)
		}
		u, w := quadVertices[base+6], quadVertices[base+7]
		if u != (x+1)/2 || w != (y+1)/2 {
			t.Errorf("vertex %d: texture coordinates (%f, %f) do not map the corner", v, u, w)
		}
	}
}
