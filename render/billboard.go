package render

import "jokolay/xmlpack"

const (
	defaultHeightOffset = 1.5
	defaultMinSize      = 5.0
	defaultMaxSize      = 2048.0
	defaultIconSize     = 1.0
	defaultAlpha        = 1.0
)

var defaultColor = [4]uint8{255, 255, 255, 255}

// BillboardParams carries the per-frame camera/window state the pixel-
// clamp size derivation needs, all sourced from the current mlink
// snapshot and the renderer's own window/camera setup.
type BillboardParams struct {
	ZNear             float32
	WindowWidthPx     float32
	DPIScale          float32
	DPIScalingEnabled bool
}

// logicalWindowWidth converts the window's raw pixel width to logical
// pixels per spec section 4.5 step 4, dividing out DPI scaling when the
// OS reports it enabled.
func (p BillboardParams) logicalWindowWidth() float32 {
	if p.DPIScalingEnabled && p.DPIScale > 0 {
		return p.WindowWidthPx / p.DPIScale
	}
	return p.WindowWidthPx
}

func clampFloat(v, lo, hi float32) float32 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// billboardHalfWidth derives the world-space half-width of a marker quad
// per spec section 4.5 step 4: a reference half-width of 1m at the
// (conceptual) far plane, scaled by icon_size, is projected to pixels
// using z_near and the logical window width, clamped to
// [min_size, max_size] ∩ [0, window_width/2], then converted back to
// world units at the marker's actual camera distance.
//
// The z_near multiply/divide below algebraically cancels — the pixel
// projection of a fixed reference size at a fixed conceptual far plane
// does not actually depend on z_near — but it is kept explicit to mirror
// the derivation as written rather than collapsing it to a tautology.
func billboardHalfWidth(params BillboardParams, iconSize, minSize, maxSize, cameraDistance float32) float32 {
	logicalWidth := params.logicalWindowWidth()

	farHalfWidth := 1.0 * iconSize
	nearHalfWidth := farHalfWidth * params.ZNear
	rawPixels := nearHalfWidth / params.ZNear * (logicalWidth / 2)

	upper := logicalWidth / 2
	if maxSize < upper {
		upper = maxSize
	}
	lower := minSize
	if lower < 0 {
		lower = 0
	}
	clampedPixels := clampFloat(rawPixels, lower, upper)

	if logicalWidth == 0 {
		return 0
	}
	return clampedPixels / logicalWidth * cameraDistance
}

// Billboard is the six-vertex (two-triangle) camera-facing quad for one
// active marker, plus the data the Sink needs to place and sort it.
type Billboard struct {
	Vertices [6]Vertex
	Distance float32
}

// BuildBillboard computes a marker's billboard per spec section 4.5
// steps 1-6. It returns ok=false when the marker should not be drawn
// this frame (beyond fade_far, a degenerate camera-to-marker direction
// is also treated as a frame-level failure and skipped).
func BuildBillboard(markerPos Vec3, cameraPos Vec3, attrs xmlpack.CommonAttributes, params BillboardParams) (Billboard, bool) {
	pos := markerPos
	heightOffset := float32(defaultHeightOffset)
	if attrs.IsSet(xmlpack.AttrHeightOffset) {
		heightOffset = attrs.HeightOffset
	}
	pos.Y += heightOffset

	toCamera := cameraPos.Sub(pos)
	distance := toCamera.Length()
	if attrs.IsSet(xmlpack.AttrFadeFar) && attrs.FadeFar > 0 && distance > attrs.FadeFar {
		return Billboard{}, false
	}

	forward := toCamera.Normalize()
	if forward == (Vec3{}) {
		return Billboard{}, false
	}
	right := forward.Cross(YUp)
	if right == (Vec3{}) {
		// Camera directly above/below the marker: no well-defined
		// horizontal right axis. Fall back to world X rather than skip,
		// since this is a legitimate (if rare) camera angle.
		right = Vec3{1, 0, 0}
	}
	right = right.Normalize()

	iconSize := float32(defaultIconSize)
	if attrs.IsSet(xmlpack.AttrIconSize) {
		iconSize = attrs.IconSize
	}
	minSize := float32(defaultMinSize)
	if attrs.IsSet(xmlpack.AttrMinSize) {
		minSize = attrs.MinSize
	}
	maxSize := float32(defaultMaxSize)
	if attrs.IsSet(xmlpack.AttrMaxSize) {
		maxSize = attrs.MaxSize
	}
	w := billboardHalfWidth(params, iconSize, minSize, maxSize, distance)

	alpha := float32(defaultAlpha)
	if attrs.IsSet(xmlpack.AttrAlpha) {
		alpha = attrs.Alpha
	}
	col := defaultColor
	if attrs.IsSet(xmlpack.AttrColor) {
		col = [4]uint8{attrs.Color.R, attrs.Color.G, attrs.Color.B, attrs.Color.A}
	}
	fadeNearFar := [2]float32{attrs.FadeNear, attrs.FadeFar}

	up := YUp.Scale(w)
	rightW := right.Scale(w)
	topLeft := pos.Add(up).Sub(rightW)
	topRight := pos.Add(up).Add(rightW)
	bottomLeft := pos.Sub(up).Sub(rightW)
	bottomRight := pos.Sub(up).Add(rightW)

	mk := func(p Vec3, u, v float32) Vertex {
		return Vertex{Position: p, UV: [2]float32{u, v}, Alpha: alpha, Color: col, FadeNearFar: fadeNearFar}
	}

	return Billboard{
		Vertices: [6]Vertex{
			mk(topLeft, 0, 0), mk(topRight, 1, 0), mk(bottomLeft, 0, 1),
			mk(topRight, 1, 0), mk(bottomRight, 1, 1), mk(bottomLeft, 0, 1),
		},
		Distance: distance,
	}, true
}
