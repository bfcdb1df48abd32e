package geom

import "math"

// Vec2 is a 2D point or offset in center-relative coordinates.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Len returns the distance from the origin.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rotated returns v rotated by rad radians about the origin.
func (v Vec2) Rotated(rad float64) Vec2 {
	s, c := math.Sincos(rad)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// MirroredY returns v reflected across the x axis.
func (v Vec2) MirroredY() Vec2 { return Vec2{v.X, -v.Y} }

// Segment is a line segment between two center-relative points.
type Segment struct {
	A, B Vec2
}

func (s Segment) Rotated(rad float64) Segment {
	return Segment{s.A.Rotated(rad), s.B.Rotated(rad)}
}

func (s Segment) MirroredY() Segment {
	return Segment{s.A.MirroredY(), s.B.MirroredY()}
}
