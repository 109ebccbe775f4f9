// Package builder creates and configures SBGN diagram elements: default
// sizes and orientations per node type, the fixed I/O ports of process nodes
// and logic gates, and type assignment that keeps a node's center.
package builder

import (
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// DefaultLabelText is the text given to a fresh name label.
const DefaultLabelText = "Label"

// CenterTolerance is the distance within which a port counts as sitting on
// its owner's center.
const CenterTolerance = 1.0

// DefaultSize returns the initial box size for a node of type t with
// orientation o.
func DefaultSize(t sbgn.Type, o sbgn.Orientation) geom.Size {
	var s geom.Size
	switch {
	case t.IsSimpleChemical(), t == sbgn.SourceAndSink:
		return geom.Size{W: 60, H: 60}
	case t.IsComplex():
		return geom.Size{W: 160, H: 160}
	case t.IsPN():
		s = geom.Size{W: 40, H: 20}
	case t.IsLogic():
		s = geom.Size{W: 50, H: 30}
	case t == sbgn.Compartment:
		return geom.Size{W: 160, H: 120}
	case t == sbgn.Submap:
		return geom.Size{W: 150, H: 90}
	default:
		return geom.Size{W: 100, H: 60}
	}
	if o.IsVertical() {
		return s.Swap()
	}
	return s
}

// Configure fills in the default orientation of n: horizontal for process
// nodes, vertical for logic gates and right-pointing for tags. An
// orientation that is already set is kept.
func Configure(n *diagram.Node) {
	if n.Orientation != sbgn.Unoriented {
		return
	}
	switch {
	case n.Type.IsPN():
		n.Orientation = sbgn.Horizontal
	case n.Type.IsLogic():
		n.Orientation = sbgn.Vertical
	case n.Type == sbgn.Tag:
		n.Orientation = sbgn.Right
	}
}

// FixedPortLocations returns where the two I/O ports of a process node or
// logic gate sit for the node's orientation: left and right sides for
// horizontal nodes, bottom and top for vertical ones. Other types have no
// fixed I/O ports.
func FixedPortLocations(n *diagram.Node) []geom.Point {
	if !n.Type.IsPN() && !n.Type.IsLogic() {
		return nil
	}
	if n.Orientation.IsVertical() {
		return []geom.Point{n.Layout.CenterBottom(), n.Layout.CenterTop()}
	}
	return []geom.Point{n.Layout.CenterLeft(), n.Layout.CenterRight()}
}

// AddPorts allocates the fixed I/O ports of n and returns them. Nodes
// without fixed I/O ports get none.
func AddPorts(g diagram.Editor, id diagram.NodeID) ([]*diagram.Port, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, diagram.ErrUnknownNode
	}
	var out []*diagram.Port
	for _, loc := range FixedPortLocations(n) {
		p, err := g.AddPort(id, sbgn.InputAndOutput, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// RemovePorts deletes every port of n, and with them any attached edges.
func RemovePorts(g diagram.Editor, id diagram.NodeID) error {
	for _, p := range g.Ports(id) {
		if err := g.RemovePort(p.ID); err != nil {
			return err
		}
	}
	return nil
}

// AssignType retypes n, applies orientation defaults, resizes it to the
// default size of the new type around its current center and, when n has
// no edges, rebuilds its ports for the new type.
func AssignType(g diagram.Editor, id diagram.NodeID, t sbgn.Type) error {
	n, ok := g.Node(id)
	if !ok {
		return diagram.ErrUnknownNode
	}
	if t.IsPN() != n.Type.IsPN() || t.IsLogic() != n.Type.IsLogic() {
		n.Orientation = sbgn.Unoriented
	}
	n.Type = t
	Configure(n)
	center := n.Layout.Center()
	if err := g.SetLayout(id, geom.FromCenter(center, DefaultSize(t, n.Orientation))); err != nil {
		return err
	}
	if g.Degree(id) > 0 {
		return nil
	}
	if err := RemovePorts(g, id); err != nil {
		return err
	}
	_, err := AddPorts(g, id)
	return err
}

// NewNode creates a configured node of type t centered on c, with its fixed
// ports and, for types that carry names, a name label.
func NewNode(g diagram.Editor, t sbgn.Type, c geom.Point, name string) (*diagram.Node, error) {
	n := diagram.Node{Type: t}
	Configure(&n)
	n.Layout = geom.FromCenter(c, DefaultSize(t, n.Orientation))
	node, err := g.AddNode(n)
	if err != nil {
		return nil, err
	}
	if _, err := AddPorts(g, node.ID); err != nil {
		return nil, err
	}
	if carriesName(t) {
		if name == "" {
			name = DefaultLabelText
		}
		if _, err := g.AddLabel(diagram.Label{Node: node.ID, Type: sbgn.NameLabel, Text: name}); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func carriesName(t sbgn.Type) bool {
	return (t.IsEPN() && t != sbgn.SourceAndSink) || t == sbgn.Compartment || t == sbgn.Phenotype || t.IsReference()
}

// IsCenterPort reports whether p sits on its owner's center.
func IsCenterPort(g diagram.Reader, p *diagram.Port) bool {
	n, ok := g.Node(p.Owner)
	if !ok {
		return false
	}
	return p.Location.Dist(n.Layout.Center()) < CenterTolerance
}

// CenterPort returns the untyped port on n's center, creating it if needed.
func CenterPort(g diagram.Editor, id diagram.NodeID) (*diagram.Port, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, diagram.ErrUnknownNode
	}
	for _, p := range g.Ports(id) {
		if p.Type == sbgn.NoType && IsCenterPort(g, p) {
			return p, nil
		}
	}
	return g.AddPort(id, sbgn.NoType, n.Layout.Center())
}

// IOPorts returns the InputAndOutput ports of n.
func IOPorts(g diagram.Reader, id diagram.NodeID) []*diagram.Port {
	var out []*diagram.Port
	for _, p := range g.Ports(id) {
		if p.Type == sbgn.InputAndOutput {
			out = append(out, p)
		}
	}
	return out
}

// OppositeIOPort returns the other InputAndOutput port on the owner of p.
func OppositeIOPort(g diagram.Reader, p *diagram.Port) (*diagram.Port, bool) {
	for _, q := range IOPorts(g, p.Owner) {
		if q.ID != p.ID {
			return q, true
		}
	}
	return nil, false
}

// Connect adds an edge of type t from the source node to the target node.
// Logic gates, and process nodes on consumption and production arcs, use
// their first I/O port whose load fits the direction: no incoming edges at
// a source end, no outgoing edges at a target end. Other endpoints use the
// node's center port.
func Connect(g diagram.Editor, source, target diagram.NodeID, t sbgn.Type) (*diagram.Edge, error) {
	sp, err := endpointPort(g, source, t, true)
	if err != nil {
		return nil, err
	}
	tp, err := endpointPort(g, target, t, false)
	if err != nil {
		return nil, err
	}
	return g.AddEdge(diagram.Edge{Type: t, Source: sp.ID, Target: tp.ID})
}

func endpointPort(g diagram.Editor, id diagram.NodeID, t sbgn.Type, atSource bool) (*diagram.Port, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, diagram.ErrUnknownNode
	}
	flow := t == sbgn.Consumption || t == sbgn.Production
	if (n.Type.IsPN() && flow) || n.Type.IsLogic() {
		for _, p := range IOPorts(g, id) {
			if atSource && g.PortInDegree(p.ID) == 0 {
				return p, nil
			}
			if !atSource && g.PortOutDegree(p.ID) == 0 {
				return p, nil
			}
		}
	}
	return CenterPort(g, id)
}
