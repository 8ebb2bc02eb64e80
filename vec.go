package radial

import "math"

// Vec2 is a 2D vector used for positions, offsets, and directions throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Length()
}

// Angle returns the direction of v in degrees in [0, 360), measured clockwise
// from straight up: 0 is up, 90 is right, 180 is down, 270 is left.
// The zero vector yields 0.
func (v Vec2) Angle() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	deg := math.Atan2(v.X, -v.Y) * (180 / math.Pi)
	return math.Mod(deg+360, 360)
}

// Direction returns the vector of the given length pointing at angle degrees,
// using the same convention as Angle. It is the inverse of Angle/Length:
// Direction(v.Angle(), v.Length()) reproduces v up to floating error.
func Direction(angle, length float64) Vec2 {
	rad := angle * (math.Pi / 180)
	return Vec2{
		X: math.Sin(rad) * length,
		Y: -math.Cos(rad) * length,
	}
}
