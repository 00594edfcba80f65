package render

import (
	"testing"

	"jokolay/xmlpack"
)

func TestBuildRibbonRequiresAtLeastTwoNodes(t *testing.T) {
	if BuildRibbon([]Vec3{{0, 0, 0}}, xmlpack.CommonAttributes{}, 39.37) != nil {
		t.Fatalf("expected a single-node trail to produce no ribbon")
	}
}

func TestBuildRibbonEmitsSixVerticesPerSegment(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {10, 0, 0}, {20, 0, 0}}
	verts := BuildRibbon(points, xmlpack.CommonAttributes{}, 39.37)
	if len(verts) != 12 {
		t.Fatalf("expected 6 vertices per segment (2 segments), got %d", len(verts))
	}
}

func TestBuildRibbonDefaultHalfWidthFromInchesPerMeter(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {1, 0, 0}}
	verts := BuildRibbon(points, xmlpack.CommonAttributes{}, 39.37)
	wantHalfWidth := defaultTrailHalfWidthInches / 39.37
	got := verts[0].Position.Z // right axis for a +X segment points along +/-Z
	if got < wantHalfWidth-0.001 || got > wantHalfWidth+0.001 {
		t.Fatalf("expected a ribbon half-width of %v, got vertex offset %v", wantHalfWidth, got)
	}
}

func TestBuildRibbonVRunsContinuouslyAcrossSegments(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {10, 0, 0}, {20, 0, 0}}
	verts := BuildRibbon(points, xmlpack.CommonAttributes{}, 39.37)
	// Segment 2's starting V (vertex index 6, the aRight/aLeft pair) must
	// equal segment 1's ending V (vertex index 2/5's V), not reset to 0.
	seg1EndV := verts[2].UV[1]
	seg2StartV := verts[6].UV[1]
	if seg1EndV != seg2StartV {
		t.Fatalf("expected running V to carry over between segments: %v != %v", seg1EndV, seg2StartV)
	}
}

func TestWrapUnitHandlesNegativeValues(t *testing.T) {
	got := wrapUnit(-0.25)
	if got < 0.74 || got > 0.76 {
		t.Fatalf("expected -0.25 to wrap to ~0.75, got %v", got)
	}
}

func TestBuildRibbonSkipsDegenerateSegment(t *testing.T) {
	points := []Vec3{{0, 0, 0}, {0, 0, 0}, {10, 0, 0}}
	verts := BuildRibbon(points, xmlpack.CommonAttributes{}, 39.37)
	if len(verts) != 6 {
		t.Fatalf("expected the zero-length first segment to be skipped, leaving 1 segment's worth of vertices, got %d", len(verts))
	}
}
