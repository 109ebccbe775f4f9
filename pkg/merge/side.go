package merge

import (
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// SectorPoint returns the point that tells which side edge e approaches one
// of its endpoint nodes from. With atSource set it looks at the source
// node: the first bend outside its box, else the target port location.
// Otherwise it looks at the target node: the last bend outside its box,
// else the source port location.
func SectorPoint(g diagram.Reader, e *diagram.Edge, atSource bool) geom.Point {
	if atSource {
		box := layoutOf(g, g.SourceNode(e))
		for _, b := range e.Bends {
			if !box.Contains(b) {
				return b
			}
		}
		return portLocation(g, e.Target)
	}
	box := layoutOf(g, g.TargetNode(e))
	for i := len(e.Bends) - 1; i >= 0; i-- {
		if !box.Contains(e.Bends[i]) {
			return e.Bends[i]
		}
	}
	return portLocation(g, e.Source)
}

func layoutOf(g diagram.Reader, id diagram.NodeID) geom.Rect {
	if n, ok := g.Node(id); ok {
		return n.Layout
	}
	return geom.Rect{}
}

func portLocation(g diagram.Reader, id diagram.PortID) geom.Point {
	if p, ok := g.Port(id); ok {
		return p.Location
	}
	return geom.Point{}
}

// UniqueEdgeSide returns the outer sector of node that every incident
// edge's sector point falls in. Sector points inside the box are ignored.
// It returns SideNone when the node has no such edges or when two edges
// disagree.
func UniqueEdgeSide(g diagram.Reader, node diagram.NodeID) geom.Side {
	n, ok := g.Node(node)
	if !ok {
		return geom.SideNone
	}
	side := geom.SideNone
	for _, e := range g.EdgesAt(node) {
		s := n.Layout.SectorOf(SectorPoint(g, e, g.SourceNode(e) == node))
		if s == geom.SideNone {
			continue
		}
		if side != geom.SideNone && side != s {
			return geom.SideNone
		}
		side = s
	}
	return side
}

// EdgeTransferDelta returns how far the dropped node a must move so that it
// lines up with hit along a's unique edge side, or center on center when a
// has no unique side.
func EdgeTransferDelta(g diagram.Reader, a, hit diagram.NodeID) geom.Point {
	side := UniqueEdgeSide(g, a)
	return layoutOf(g, hit).Anchor(side).Sub(layoutOf(g, a).Anchor(side))
}

// anchoredBox resizes r to s while keeping the edge on side in place.
func anchoredBox(r geom.Rect, side geom.Side, s geom.Size) geom.Rect {
	c := r.Center()
	switch side {
	case geom.SideLeft:
		c.X = r.X + s.W/2
	case geom.SideRight:
		c.X = r.MaxX() - s.W/2
	case geom.SideTop:
		c.Y = r.Y + s.H/2
	case geom.SideBottom:
		c.Y = r.MaxY() - s.H/2
	}
	return geom.FromCenter(c, s)
}

// edgeInducedOrientation votes on the orientation of a node with fixed
// ports. Each edge arriving from the left or right counts toward
// horizontal when the edges sit on the ports' axis, and toward vertical
// otherwise; edges from above or below count the other way. Ties go to
// horizontal.
func edgeInducedOrientation(g diagram.Reader, n *diagram.Node, edges []*diagram.Edge, atSource, portsOnMainAxis bool) sbgn.Orientation {
	unit := -1
	if portsOnMainAxis {
		unit = 1
	}
	bias := 0
	for _, e := range edges {
		p := SectorPoint(g, e, atSource)
		switch {
		case n.Layout.InLeftSector(p) || n.Layout.InRightSector(p):
			bias += unit
		case n.Layout.InBottomSector(p) || n.Layout.InTopSector(p):
			bias -= unit
		}
	}
	if bias >= 0 {
		return sbgn.Horizontal
	}
	return sbgn.Vertical
}

// sidePort picks among the fixed ports of n the one on the side of p:
// topmost or bottommost for vertical nodes, leftmost or rightmost
// otherwise.
func sidePort(n *diagram.Node, ports []*diagram.Port, p geom.Point) *diagram.Port {
	c := n.Layout.Center()
	key := func(q *diagram.Port) float64 { return q.Location.X }
	low := p.X < c.X
	if n.Orientation.IsVertical() {
		key = func(q *diagram.Port) float64 { return q.Location.Y }
		low = p.Y < c.Y
	}
	best := ports[0]
	for _, q := range ports[1:] {
		if (low && key(q) < key(best)) || (!low && key(q) > key(best)) {
			best = q
		}
	}
	return best
}
