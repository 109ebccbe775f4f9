// Package geom provides the small amount of plane geometry the merge
// heuristics need: points, sizes, axis-aligned rectangles, the four outer
// sectors around a box, and ratio points relative to a box.
package geom

import "math"

// Point is a location in diagram coordinates. Y grows downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return math.Sqrt(p.DistSq(q)) }

// DistSq returns the squared distance between p and q.
func (p Point) DistSq(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Size is a width and height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Swap returns s with width and height exchanged.
func (s Size) Swap() Size { return Size{s.H, s.W} }

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// FromCenter returns the rectangle of size s centered on c.
func FromCenter(c Point, s Size) Rect {
	return Rect{X: c.X - s.W/2, Y: c.Y - s.H/2, W: s.W, H: s.H}
}

func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MaxY() float64 { return r.Y + r.H }

func (r Rect) TopLeft() Point { return Point{r.X, r.Y} }
func (r Rect) Center() Point  { return Point{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Size() Size     { return Size{r.W, r.H} }

func (r Rect) CenterLeft() Point   { return Point{r.X, r.Y + r.H/2} }
func (r Rect) CenterRight() Point  { return Point{r.MaxX(), r.Y + r.H/2} }
func (r Rect) CenterTop() Point    { return Point{r.X + r.W/2, r.Y} }
func (r Rect) CenterBottom() Point { return Point{r.X + r.W/2, r.MaxY()} }

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Intersects reports whether r and o overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.MaxX() && o.X <= r.MaxX() && r.Y <= o.MaxY() && o.Y <= r.MaxY()
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	x, y := math.Min(r.X, o.X), math.Min(r.Y, o.Y)
	return Rect{X: x, Y: y, W: math.Max(r.MaxX(), o.MaxX()) - x, H: math.Max(r.MaxY(), o.MaxY()) - y}
}

// ToRatio expresses p relative to r: (0,0) is the top-left corner and (1,1)
// the bottom-right one. A degenerate axis maps to 0.5.
func (r Rect) ToRatio(p Point) Point {
	q := Point{0.5, 0.5}
	if r.W != 0 {
		q.X = (p.X - r.X) / r.W
	}
	if r.H != 0 {
		q.Y = (p.Y - r.Y) / r.H
	}
	return q
}

// FromRatio is the inverse of ToRatio.
func (r Rect) FromRatio(q Point) Point {
	return Point{r.X + q.X*r.W, r.Y + q.Y*r.H}
}
