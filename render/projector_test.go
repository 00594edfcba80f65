package render

import (
	"testing"

	"jokolay/activemap"
	"jokolay/mlink"
	"jokolay/xmlpack"
)

type stubSink struct {
	billboards int
	trails     int
	zNear      float32
}

func (s *stubSink) AddBillboard(vertices [6]Vertex, textureHandle any, distance float32) {
	s.billboards++
}
func (s *stubSink) AddTrail(vertices []Vertex, textureHandle any) { s.trails++ }
func (s *stubSink) ZNear() float32                                { return s.zNear }

func TestProjectorRunSubmitsVisibleMarkersAndTrails(t *testing.T) {
	sink := &stubSink{zNear: 1}
	proj := NewProjector(sink, 39.37)

	markers := []activemap.VisibleMarker{
		{Marker: xmlpack.Marker{Position: xmlpack.Vec3{X: 0, Y: 0, Z: 0}}},
	}
	trails := []activemap.VisibleTrail{
		{
			Trail: xmlpack.Trail{TbinID: 1},
			Tbin:  xmlpack.Tbin{Points: []xmlpack.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}}},
		},
	}
	snap := mlink.Snapshot{CameraPos: mlink.Vec3{X: 0, Y: 0, Z: 10}}
	params := BillboardParams{WindowWidthPx: 1000}

	proj.Run(markers, trails, snap, params)

	if sink.billboards != 1 {
		t.Fatalf("expected 1 billboard submitted, got %d", sink.billboards)
	}
	if sink.trails != 1 {
		t.Fatalf("expected 1 trail submitted, got %d", sink.trails)
	}
}

func TestProjectorCachesRibbonAcrossFrames(t *testing.T) {
	sink := &stubSink{zNear: 1}
	proj := NewProjector(sink, 39.37)
	trails := []activemap.VisibleTrail{
		{
			Trail: xmlpack.Trail{TbinID: 1},
			Tbin:  xmlpack.Tbin{Points: []xmlpack.Vec3{{X: 0, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}}},
		},
	}
	snap := mlink.Snapshot{CameraPos: mlink.Vec3{X: 0, Y: 0, Z: 10}}
	params := BillboardParams{WindowWidthPx: 1000}

	proj.Run(nil, trails, snap, params)
	proj.Run(nil, trails, snap, params)
	if len(proj.ribbonCache) != 1 {
		t.Fatalf("expected ribbon geometry to be cached once per TbinID, got %d cache entries", len(proj.ribbonCache))
	}
	if sink.trails != 2 {
		t.Fatalf("expected the cached ribbon to still be resubmitted every frame, got %d submissions", sink.trails)
	}
}
