// Package ebitensink implements render.Sink and activemap.TextureUploader
// on top of Ebitengine, standing in for the out-of-scope generic GPU
// backend so the engine is runnable end to end (spec section 6). The
// vertex-buffer/DrawTriangles shape follows the teacher's
// TerritoryOverlayGPU: vertex/index slices built fresh for each
// per-texture draw every frame rather than a persistent vertex buffer, since Ebitengine has no
// retained-geometry API.
package ebitensink

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"jokolay/render"
	"jokolay/xmlpack"
)

// Sink batches billboard and trail geometry submitted by render.Projector
// over one frame and draws it all in Flush.
type Sink struct {
	zNear float32

	whitePixel *ebiten.Image

	billboardVertices []ebiten.Vertex
	billboardIndices  []uint16

	trailVertices []ebiten.Vertex
	trailIndices  []uint16

	// pending groups geometry by texture so Flush can issue one
	// DrawTriangles call per texture instead of one per item.
	pendingBillboards map[*ebiten.Image][]render.Vertex
	pendingTrails     map[*ebiten.Image][]render.Vertex
}

func New(zNear float32) *Sink {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Sink{
		zNear:             zNear,
		whitePixel:        white,
		billboardVertices: make([]ebiten.Vertex, 0, 1024),
		billboardIndices:  make([]uint16, 0, 1536),
		trailVertices:     make([]ebiten.Vertex, 0, 1024),
		trailIndices:      make([]uint16, 0, 1536),
		pendingBillboards: make(map[*ebiten.Image][]render.Vertex),
		pendingTrails:     make(map[*ebiten.Image][]render.Vertex),
	}
}

// SetZNear lets the owning game loop update the near-plane distance the
// projector reads back every frame, e.g. after a window resize changes
// the projection.
func (s *Sink) SetZNear(z float32) { s.zNear = z }

func (s *Sink) ZNear() float32 { return s.zNear }

func (s *Sink) imageFor(handle any) *ebiten.Image {
	if img, ok := handle.(*ebiten.Image); ok && img != nil {
		return img
	}
	return s.whitePixel
}

func (s *Sink) AddBillboard(vertices [6]render.Vertex, textureHandle any, distance float32) {
	img := s.imageFor(textureHandle)
	s.pendingBillboards[img] = append(s.pendingBillboards[img], vertices[:]...)
}

func (s *Sink) AddTrail(vertices []render.Vertex, textureHandle any) {
	if len(vertices) == 0 {
		return
	}
	img := s.imageFor(textureHandle)
	s.pendingTrails[img] = append(s.pendingTrails[img], vertices...)
}

// Upload implements activemap.TextureUploader, converting a decoded pack
// texture into an *ebiten.Image handle.
func (s *Sink) Upload(tex xmlpack.Texture) any {
	if tex.Width <= 0 || tex.Height <= 0 {
		return nil
	}
	img := ebiten.NewImage(tex.Width, tex.Height)
	img.WritePixels(tex.Pixels)
	return img
}

// Flush draws every batched billboard/trail onto dst, projecting each
// vertex's world position with project, then clears the batch for the
// next frame.
func (s *Sink) Flush(dst *ebiten.Image, project func(render.Vec3) (x, y float32)) {
	s.drawGroup(dst, s.pendingBillboards, project)
	s.drawGroup(dst, s.pendingTrails, project)
	s.pendingBillboards = make(map[*ebiten.Image][]render.Vertex)
	s.pendingTrails = make(map[*ebiten.Image][]render.Vertex)
}

func (s *Sink) drawGroup(dst *ebiten.Image, groups map[*ebiten.Image][]render.Vertex, project func(render.Vec3) (float32, float32)) {
	for img, verts := range groups {
		if len(verts) == 0 || len(verts)%3 != 0 {
			continue
		}
		vs := make([]ebiten.Vertex, len(verts))
		idx := make([]uint16, len(verts))
		for i, v := range verts {
			x, y := project(v.Position)
			vs[i] = ebiten.Vertex{
				DstX: x, DstY: y,
				SrcX: v.UV[0] * float32(img.Bounds().Dx()),
				SrcY: v.UV[1] * float32(img.Bounds().Dy()),
				ColorR: float32(v.Color[0]) / 255 * v.Alpha,
				ColorG: float32(v.Color[1]) / 255 * v.Alpha,
				ColorB: float32(v.Color[2]) / 255 * v.Alpha,
				ColorA: float32(v.Color[3]) / 255 * v.Alpha,
			}
			idx[i] = uint16(i)
		}
		opts := &ebiten.DrawTrianglesOptions{}
		opts.CompositeMode = ebiten.CompositeModeSourceOver
		dst.DrawTriangles(vs, idx, img, opts)
	}
}
