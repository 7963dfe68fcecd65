package game

import "math"

// Vec2 is a 2D vector in world-pixel space.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector. The zero vector normalizes to itself
// so callers never divide by zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Distance calculates the Euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Length()
}

// Heading returns the unit vector for an angle in degrees (0 = +x axis).
func Heading(degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Rect is an axis-aligned rectangle (top-left corner plus extent).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// RectAt builds a rectangle of the given extent centered on p.
func RectAt(p Vec2, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Clamp limits v to [lo, hi]. The lower bound is applied last, so a
// degenerate range (hi < lo) resolves to lo.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
