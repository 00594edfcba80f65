package render

import (
	"log"

	"jokolay/activemap"
	"jokolay/mlink"
)

var logger = log.New(log.Writer(), "[render] ", log.Flags())

// Projector runs every frame (spec section 4.5): given the latest
// snapshot and the Active-Map Selector's materialization, it builds
// billboard/ribbon geometry and submits it to a Sink. Trail ribbons are
// cached per map change since they only depend on static tbin geometry,
// not per-frame camera state.
type Projector struct {
	sink           Sink
	inchesPerMeter float32

	ribbonCache map[uint32][]Vertex // keyed by the trail's TbinID converted to uint32
}

func NewProjector(sink Sink, inchesPerMeter float32) *Projector {
	return &Projector{
		sink:           sink,
		inchesPerMeter: inchesPerMeter,
		ribbonCache:    make(map[uint32][]Vertex),
	}
}

// InvalidateRibbonCache drops all cached ribbon geometry. The caller
// invokes it on map change, so the cache only holds the current map's
// trails.
func (p *Projector) InvalidateRibbonCache() {
	p.ribbonCache = make(map[uint32][]Vertex)
}

// Run builds and submits geometry for every visible marker/trail this
// frame. A trail that yields no ribbon geometry is logged once (the empty
// result stays cached until InvalidateRibbonCache) and skipped; a marker
// that BuildBillboard rejects (e.g. a degenerate facing direction) is
// skipped without logging. Neither aborts the rest of the frame.
func (p *Projector) Run(markers []activemap.VisibleMarker, trails []activemap.VisibleTrail, snap mlink.Snapshot, params BillboardParams) {
	params.ZNear = p.sink.ZNear()

	cameraPos := Vec3{X: snap.CameraPos.X, Y: snap.CameraPos.Y, Z: snap.CameraPos.Z}
	for _, m := range markers {
		pos := Vec3{X: m.Marker.Position.X, Y: m.Marker.Position.Y, Z: m.Marker.Position.Z}
		bb, ok := BuildBillboard(pos, cameraPos, m.Attrs, params)
		if !ok {
			continue
		}
		p.sink.AddBillboard(bb.Vertices, m.TextureHandle, bb.Distance)
	}

	for _, t := range trails {
		key := uint32(t.Trail.TbinID)
		ribbon, cached := p.ribbonCache[key]
		if !cached {
			points := make([]Vec3, len(t.Tbin.Points))
			for i, pt := range t.Tbin.Points {
				points[i] = Vec3{X: pt.X, Y: pt.Y, Z: pt.Z}
			}
			ribbon = BuildRibbon(points, t.Attrs, p.inchesPerMeter)
			p.ribbonCache[key] = ribbon
			if ribbon == nil {
				logger.Printf("trail %v produced no ribbon geometry (degenerate or single-node), skipping", t.Trail.GUID)
				continue
			}
		}
		if len(ribbon) == 0 {
			continue
		}
		p.sink.AddTrail(ribbon, t.TextureHandle)
	}
}
