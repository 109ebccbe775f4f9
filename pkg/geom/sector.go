package geom

// Side names one of the four outer sectors of a box.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "none"
}

// The outer sectors partition the plane outside a box along its diagonals.
// A point beyond the bottom edge belongs to the bottom sector when it lies
// within the box's horizontal extent, or when its overshoot past a vertical
// edge is no larger than its distance below the box. A point on a corner
// diagonal lies in both adjacent sectors; SectorOf gives it to the top or
// bottom one. Points inside the box belong to no sector.

// InBottomSector reports whether p lies in the bottom outer sector of r.
func (r Rect) InBottomSector(p Point) bool {
	d := p.Y - r.MaxY()
	return d > 0 && r.withinX(p, d)
}

// InTopSector reports whether p lies in the top outer sector of r.
func (r Rect) InTopSector(p Point) bool {
	d := r.Y - p.Y
	return d > 0 && r.withinX(p, d)
}

// InLeftSector reports whether p lies in the left outer sector of r.
func (r Rect) InLeftSector(p Point) bool {
	d := r.X - p.X
	return d > 0 && r.withinY(p, d)
}

// InRightSector reports whether p lies in the right outer sector of r.
func (r Rect) InRightSector(p Point) bool {
	d := p.X - r.MaxX()
	return d > 0 && r.withinY(p, d)
}

func (r Rect) withinX(p Point, d float64) bool {
	switch {
	case p.X < r.X:
		return r.X-p.X <= d
	case p.X > r.MaxX():
		return p.X-r.MaxX() <= d
	}
	return true
}

func (r Rect) withinY(p Point, d float64) bool {
	switch {
	case p.Y < r.Y:
		return r.Y-p.Y <= d
	case p.Y > r.MaxY():
		return p.Y-r.MaxY() <= d
	}
	return true
}

// SectorOf returns the outer sector of r containing p, checking bottom, top,
// left and right in that order, or SideNone for points inside r.
func (r Rect) SectorOf(p Point) Side {
	switch {
	case r.InBottomSector(p):
		return SideBottom
	case r.InTopSector(p):
		return SideTop
	case r.InLeftSector(p):
		return SideLeft
	case r.InRightSector(p):
		return SideRight
	}
	return SideNone
}

// Anchor returns the midpoint of r's edge on side s, or the center for
// SideNone.
func (r Rect) Anchor(s Side) Point {
	switch s {
	case SideLeft:
		return r.CenterLeft()
	case SideRight:
		return r.CenterRight()
	case SideTop:
		return r.CenterTop()
	case SideBottom:
		return r.CenterBottom()
	}
	return r.Center()
}
