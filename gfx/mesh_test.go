package gfx_test

import (
	"testing"

	"github.com/devblok/prism/gfx"
)

func TestAttribSlots(t *testing.T) {
	// Shaders bind attributes by these values, they must not move.
	if gfx.PositionSlot != 0 || gfx.NormalSlot != 1 || gfx.TexCoordSlot != 2 {
		t.Fatal("attribute slot locations changed")
	}
	names := map[gfx.AttribSlot]string{
		gfx.PositionSlot: "Position",
		gfx.NormalSlot:   "Normal",
		gfx.TexCoordSlot: "TexCoord",
	}
	for slot, want := range names {
		if got := slot.Name(); got != want {
			t.Errorf("slot %d: got name %q, want %q", slot, got, want)
		}
	}
}

func TestPosNormTexLayout(t *testing.T) {
	layout := gfx.PosNormTexLayout()
	if len(layout) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(layout))
	}
	if layout.Stride() != 32 {
		t.Fatalf("expected a 32 byte stride, got %d", layout.Stride())
	}
}

func TestVertexLayoutStride(t *testing.T) {
	layout := gfx.VertexLayout{
		{Slot: gfx.PositionSlot, Count: 3},
		{Slot: gfx.TexCoordSlot, Count: 2},
	}
	if layout.Stride() != 20 {
		t.Fatalf("expected a 20 byte stride, got %d", layout.Stride())
	}
	if empty := (gfx.VertexLayout{}); empty.Stride() != 0 {
		t.Fatalf("expected a zero stride for an empty layout, got %d", empty.Stride())
	}
}
