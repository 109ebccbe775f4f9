package diagram

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Reader is the read-only view of a diagram that decision code consumes.
//
// Lookups of unknown IDs return (nil, false), empty slices or zero counts;
// no method panics on a dangling reference.
type Reader interface {
	Node(id NodeID) (*Node, bool)
	Port(id PortID) (*Port, bool)
	Edge(id EdgeID) (*Edge, bool)
	Label(id LabelID) (*Label, bool)

	Nodes() []*Node
	Edges() []*Edge
	Ports(n NodeID) []*Port
	NodeLabels(n NodeID) []*Label
	EdgeLabels(e EdgeID) []*Label
	Children(n NodeID) []*Node

	// PortOwner returns the node owning p, or "" if p is unknown.
	PortOwner(p PortID) NodeID
	// SourceNode and TargetNode return the owners of an edge's ports.
	SourceNode(e *Edge) NodeID
	TargetNode(e *Edge) NodeID

	// EdgesAtPort returns the edges touching p in either direction.
	EdgesAtPort(p PortID) []*Edge
	InEdgesAtPort(p PortID) []*Edge
	OutEdgesAtPort(p PortID) []*Edge
	EdgesAt(n NodeID) []*Edge
	InEdges(n NodeID) []*Edge
	OutEdges(n NodeID) []*Edge

	Degree(n NodeID) int
	InDegree(n NodeID) int
	OutDegree(n NodeID) int
	PortInDegree(p PortID) int
	PortOutDegree(p PortID) int

	// IsAncestor reports whether ancestor contains n, directly or
	// transitively. A node is not its own ancestor.
	IsAncestor(ancestor, n NodeID) bool
}

var _ Reader = (*Diagram)(nil)

// Node returns the node with the given ID.
func (d *Diagram) Node(id NodeID) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Port returns the port with the given ID.
func (d *Diagram) Port(id PortID) (*Port, bool) {
	p, ok := d.ports[id]
	return p, ok
}

// Edge returns the edge with the given ID.
func (d *Diagram) Edge(id EdgeID) (*Edge, bool) {
	e, ok := d.edges[id]
	return e, ok
}

// Label returns the label with the given ID.
func (d *Diagram) Label(id LabelID) (*Label, bool) {
	l, ok := d.labels[id]
	return l, ok
}

// Nodes returns all nodes in insertion order.
func (d *Diagram) Nodes() []*Node {
	out := make([]*Node, len(d.nodeOrder))
	for i, id := range d.nodeOrder {
		out[i] = d.nodes[id]
	}
	return out
}

// Edges returns all edges in insertion order.
func (d *Diagram) Edges() []*Edge {
	out := make([]*Edge, len(d.edgeOrder))
	for i, id := range d.edgeOrder {
		out[i] = d.edges[id]
	}
	return out
}

// NodeCount returns the number of nodes.
func (d *Diagram) NodeCount() int { return len(d.nodes) }

// EdgeCount returns the number of edges.
func (d *Diagram) EdgeCount() int { return len(d.edges) }

// Ports returns the ports of n in insertion order.
func (d *Diagram) Ports(n NodeID) []*Port {
	ids := d.nodePorts[n]
	out := make([]*Port, len(ids))
	for i, id := range ids {
		out[i] = d.ports[id]
	}
	return out
}

// NodeLabels returns the labels of n in insertion order.
func (d *Diagram) NodeLabels(n NodeID) []*Label { return d.resolveLabels(d.nodeLabels[n]) }

// EdgeLabels returns the labels of e in insertion order.
func (d *Diagram) EdgeLabels(e EdgeID) []*Label { return d.resolveLabels(d.edgeLabels[e]) }

func (d *Diagram) resolveLabels(ids []LabelID) []*Label {
	out := make([]*Label, len(ids))
	for i, id := range ids {
		out[i] = d.labels[id]
	}
	return out
}

// Children returns the direct children of n.
func (d *Diagram) Children(n NodeID) []*Node {
	ids := d.children[n]
	out := make([]*Node, len(ids))
	for i, id := range ids {
		out[i] = d.nodes[id]
	}
	return out
}

// PortOwner returns the node owning p.
func (d *Diagram) PortOwner(p PortID) NodeID {
	if port, ok := d.ports[p]; ok {
		return port.Owner
	}
	return ""
}

// SourceNode returns the node owning e's source port.
func (d *Diagram) SourceNode(e *Edge) NodeID { return d.PortOwner(e.Source) }

// TargetNode returns the node owning e's target port.
func (d *Diagram) TargetNode(e *Edge) NodeID { return d.PortOwner(e.Target) }

// EdgesAtPort returns every edge touching p.
func (d *Diagram) EdgesAtPort(p PortID) []*Edge {
	ids := d.portEdges[p]
	out := make([]*Edge, len(ids))
	for i, id := range ids {
		out[i] = d.edges[id]
	}
	return out
}

// InEdgesAtPort returns the edges whose target is p.
func (d *Diagram) InEdgesAtPort(p PortID) []*Edge {
	var out []*Edge
	for _, id := range d.portEdges[p] {
		if e := d.edges[id]; e.Target == p {
			out = append(out, e)
		}
	}
	return out
}

// OutEdgesAtPort returns the edges whose source is p.
func (d *Diagram) OutEdgesAtPort(p PortID) []*Edge {
	var out []*Edge
	for _, id := range d.portEdges[p] {
		if e := d.edges[id]; e.Source == p {
			out = append(out, e)
		}
	}
	return out
}

// EdgesAt returns every edge touching a port of n, without duplicates.
func (d *Diagram) EdgesAt(n NodeID) []*Edge {
	var out []*Edge
	for _, pid := range d.nodePorts[n] {
		for _, id := range d.portEdges[pid] {
			e := d.edges[id]
			if !slices.Contains(out, e) {
				out = append(out, e)
			}
		}
	}
	return out
}

// InEdges returns the edges whose target port belongs to n.
func (d *Diagram) InEdges(n NodeID) []*Edge {
	var out []*Edge
	for _, pid := range d.nodePorts[n] {
		out = append(out, d.InEdgesAtPort(pid)...)
	}
	return out
}

// OutEdges returns the edges whose source port belongs to n.
func (d *Diagram) OutEdges(n NodeID) []*Edge {
	var out []*Edge
	for _, pid := range d.nodePorts[n] {
		out = append(out, d.OutEdgesAtPort(pid)...)
	}
	return out
}

// Degree returns InDegree(n)+OutDegree(n); a self-loop counts twice.
func (d *Diagram) Degree(n NodeID) int { return d.InDegree(n) + d.OutDegree(n) }

// InDegree returns the number of edges ending at n.
func (d *Diagram) InDegree(n NodeID) int {
	c := 0
	for _, pid := range d.nodePorts[n] {
		c += d.PortInDegree(pid)
	}
	return c
}

// OutDegree returns the number of edges starting at n.
func (d *Diagram) OutDegree(n NodeID) int {
	c := 0
	for _, pid := range d.nodePorts[n] {
		c += d.PortOutDegree(pid)
	}
	return c
}

// PortInDegree returns the number of edges ending at p.
func (d *Diagram) PortInDegree(p PortID) int {
	c := 0
	for _, id := range d.portEdges[p] {
		if d.edges[id].Target == p {
			c++
		}
	}
	return c
}

// PortOutDegree returns the number of edges starting at p.
func (d *Diagram) PortOutDegree(p PortID) int {
	c := 0
	for _, id := range d.portEdges[p] {
		if d.edges[id].Source == p {
			c++
		}
	}
	return c
}

// IsAncestor reports whether ancestor transitively contains n.
func (d *Diagram) IsAncestor(ancestor, n NodeID) bool {
	if ancestor == "" {
		return false
	}
	node, ok := d.nodes[n]
	for ok && node.Parent != "" {
		if node.Parent == ancestor {
			return true
		}
		node, ok = d.nodes[node.Parent]
	}
	return false
}

// Descendants returns every node contained in n, deepest first, so that
// removing them in order never orphans a child.
func Descendants(g Reader, n NodeID) []NodeID {
	var out []NodeID
	var walk func(NodeID)
	walk = func(id NodeID) {
		for _, c := range g.Children(id) {
			walk(c.ID)
			out = append(out, c.ID)
		}
	}
	walk(n)
	return out
}

// Bounds returns the union of the layouts of ids. It returns the zero
// rectangle and false when none of the IDs resolve.
func Bounds(g Reader, ids ...NodeID) (geom.Rect, bool) {
	var out geom.Rect
	found := false
	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		if !found {
			out, found = n.Layout, true
			continue
		}
		out = out.Union(n.Layout)
	}
	return out, found
}

// ParentType returns the type of n's parent, or NoType for top-level and
// unknown nodes.
func ParentType(g Reader, n NodeID) sbgn.Type {
	node, ok := g.Node(n)
	if !ok || node.Parent == "" {
		return sbgn.NoType
	}
	if p, ok := g.Node(node.Parent); ok {
		return p.Type
	}
	return sbgn.NoType
}

// NameLabel returns the first name label of n, if any.
func NameLabel(g Reader, n NodeID) (*Label, bool) {
	for _, l := range g.NodeLabels(n) {
		if l.Type == sbgn.NameLabel {
			return l, true
		}
	}
	return nil, false
}
