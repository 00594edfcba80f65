package ebitensink

import (
	"testing"

	"jokolay/render"
	"jokolay/xmlpack"
)

func TestSinkZNearReadBack(t *testing.T) {
	s := New(1.5)
	if s.ZNear() != 1.5 {
		t.Fatalf("expected ZNear to read back the constructed value, got %v", s.ZNear())
	}
	s.SetZNear(2.5)
	if s.ZNear() != 2.5 {
		t.Fatalf("expected ZNear to read back the updated value, got %v", s.ZNear())
	}
}

func TestSinkUploadRejectsZeroSizedTexture(t *testing.T) {
	s := New(1)
	if h := s.Upload(xmlpack.Texture{Width: 0, Height: 0}); h != nil {
		t.Fatalf("expected a zero-sized texture to upload to a nil handle")
	}
}

func TestSinkAddBillboardBatchesByTexture(t *testing.T) {
	s := New(1)
	var verts [6]render.Vertex
	s.AddBillboard(verts, nil, 10)
	s.AddBillboard(verts, nil, 20)
	if got := len(s.pendingBillboards[s.whitePixel]); got != 12 {
		t.Fatalf("expected two billboards (6 vertices each) batched under the placeholder texture, got %d", got)
	}
}

func TestSinkAddTrailIgnoresEmptyGeometry(t *testing.T) {
	s := New(1)
	s.AddTrail(nil, nil)
	if len(s.pendingTrails) != 0 {
		t.Fatalf("expected an empty trail submission to add no pending geometry")
	}
}
