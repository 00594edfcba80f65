package render

// Camera turns a MumbleLink camera position/front vector into the screen
// projection function render/ebitensink.Sink.Flush needs. Its pixel scale
// follows the same windowWidth/(2*zNear) convention billboard.go's
// pixel-clamp derivation uses (spec section 4.5 step 4), just run in
// reverse: billboard.go converts a clamped pixel half-width back to world
// units, Project converts a world offset forward into screen pixels.
type Camera struct {
	Position Vec3
	Front    Vec3

	ZNear          float32
	WindowWidthPx  float32
	WindowHeightPx float32
}

// Project maps a world-space point to screen pixel coordinates relative
// to this camera. ok is false when the point's depth along Front is at
// most ZNear (behind the camera or too close in front of it), in which case x/y are meaningless and the caller
// should skip drawing that vertex's primitive.
func (c Camera) Project(p Vec3) (x, y float32, ok bool) {
	forward := c.Front.Normalize()
	if forward == (Vec3{}) {
		return 0, 0, false
	}

	relative := p.Sub(c.Position)
	depth := relative.Dot(forward)
	if depth <= c.ZNear {
		return 0, 0, false
	}

	right := forward.Cross(YUp)
	if right == (Vec3{}) {
		right = Vec3{X: 1}
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	pixelScale := c.WindowWidthPx / 2

	screenOffsetX := (relative.Dot(right) / depth) * pixelScale
	screenOffsetY := -(relative.Dot(up) / depth) * pixelScale

	return c.WindowWidthPx/2 + screenOffsetX, c.WindowHeightPx/2 + screenOffsetY, true
}
