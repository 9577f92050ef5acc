package game

import "math"

// Vec2 is a point or direction in screen space
type Vec2 struct {
	X, Y float64
}

// Up is the fallback aim direction when no heading can be computed
var Up = Vec2{X: 0, Y: -1}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length of v
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the distance between two points
func (v Vec2) Dist(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// IsZero reports whether both components are zero
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Angle returns the heading of v in radians, or the heading of Up for a zero vector
func (v Vec2) Angle() float64 {
	if v.IsZero() {
		return math.Atan2(Up.Y, Up.X)
	}
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the heading from v toward target.
// Identical points have no defined heading; Up is used instead.
func (v Vec2) AngleTo(target Vec2) float64 {
	return target.Sub(v).Angle()
}

// Normalize returns the unit vector of v, or Up for a zero vector
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Up
	}
	return Vec2{v.X / l, v.Y / l}
}

// FromAngle returns a vector of the given length pointing along angle
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Rect is the playfield, anchored at the origin
type Rect struct {
	W, H float64
}

// Center returns the middle of the playfield
func (r Rect) Center() Vec2 { return Vec2{r.W / 2, r.H / 2} }

// Contains reports whether p lies inside the closed playfield bounds
func (r Rect) Contains(p Vec2) bool {
	return p.X >= 0 && p.X <= r.W && p.Y >= 0 && p.Y <= r.H
}

// Overlaps reports whether two circles touch, with a 1-unit tolerance
func Overlaps(c1 Vec2, r1 float64, c2 Vec2, r2 float64) bool {
	return c1.Dist(c2)-r1-r2 < 1
}
