// Package render builds the per-frame vertex geometry for active markers
// and trails (camera-facing billboards and ribbon trails) and submits
// them to a Sink, the renderer-facing contract a concrete GPU backend
// implements (see render/ebitensink).
package render

import "math"

// Vec3 is render's own 3-component vector, independent of mlink.Vec3 and
// xmlpack.Vec3 so this package carries no dependency on either.
type Vec3 struct {
	X, Y, Z float32
}

var YUp = Vec3{0, 1, 0}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// Normalize returns the zero vector for a zero-length input rather than
// producing NaNs, since a degenerate direction (camera exactly on the
// marker, or two coincident trail nodes) is a real input the projector
// must tolerate per the frame-level failure semantics (spec section 4.5).
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Vertex is one corner of a billboard or trail-ribbon triangle, matching
// the renderer sink contract of spec section 6.
type Vertex struct {
	Position    Vec3
	UV          [2]float32
	Alpha       float32
	Color       [4]uint8
	FadeNearFar [2]float32
}
