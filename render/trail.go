package render

import "jokolay/xmlpack"

// defaultTrailHalfWidthInches is the 20-inch default trail half-width
// from spec section 4.5's "Trail ribbons".
const defaultTrailHalfWidthInches = 20.0

const defaultTrailScale = 1.0

// BuildRibbon computes a trail's vertex ribbon once at materialization
// time (spec section 4.5 "Trail ribbons"): one quad per adjacent node
// pair, with a running V texture coordinate that advances by the
// segment's world length so the texture tiles continuously along the
// trail rather than stretching per-segment.
func BuildRibbon(points []Vec3, attrs xmlpack.CommonAttributes, inchesPerMeter float32) []Vertex {
	if len(points) < 2 || inchesPerMeter <= 0 {
		return nil
	}

	trailScale := float32(defaultTrailScale)
	if attrs.IsSet(xmlpack.AttrTrailScale) {
		trailScale = attrs.TrailScale
	}
	w := (defaultTrailHalfWidthInches / inchesPerMeter) * trailScale
	if w <= 0 {
		return nil
	}

	alpha := float32(defaultAlpha)
	if attrs.IsSet(xmlpack.AttrAlpha) {
		alpha = attrs.Alpha
	}
	col := defaultColor
	if attrs.IsSet(xmlpack.AttrColor) {
		col = [4]uint8{attrs.Color.R, attrs.Color.G, attrs.Color.B, attrs.Color.A}
	}
	fadeNearFar := [2]float32{attrs.FadeNear, attrs.FadeFar}

	mk := func(p Vec3, u, v float32) Vertex {
		return Vertex{Position: p, UV: [2]float32{u, v}, Alpha: alpha, Color: col, FadeNearFar: fadeNearFar}
	}

	vertices := make([]Vertex, 0, (len(points)-1)*6)
	v := float32(0)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		segment := b.Sub(a)
		length := segment.Length()
		if length == 0 {
			continue
		}
		right := segment.Normalize().Cross(YUp).Normalize()
		rightW := right.Scale(w)

		vA := v
		vB := wrapUnit(v - length/(2*w))
		v = vB

		aLeft, aRight := a.Sub(rightW), a.Add(rightW)
		bLeft, bRight := b.Sub(rightW), b.Add(rightW)

		vertices = append(vertices,
			mk(aRight, 1, vA), mk(aLeft, 0, vA), mk(bLeft, 0, vB),
			mk(aRight, 1, vA), mk(bLeft, 0, vB), mk(bRight, 1, vB),
		)
	}
	return vertices
}

// wrapUnit folds v into [0, 1), matching Rust's fractional-part wrap for
// a value that may have gone negative.
func wrapUnit(v float32) float32 {
	v = v - float32(int(v))
	if v < 0 {
		v++
	}
	return v
}
