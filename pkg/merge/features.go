package merge

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// MergeNodeFeatures makes node assume the type and attributes of template,
// which must live in the same diagram.
//
// The node is resized to newSize, or to the template's size when newSize is
// nil, keeping the side its edges approach from in place. Its name label
// takes newLabelText when given. Its ports are then repaired for the new
// type; see repairPorts. Labels the new type rejects are dropped and the
// template's labels are copied, except for a second name label. A node that
// was a complex loses its members, and the members of a complex template
// move into the node with their relative layout kept.
func (m *Merger) MergeNodeFeatures(g diagram.Editor, node, template diagram.NodeID, newSize *geom.Size, newLabelText *string) error {
	n, ok := g.Node(node)
	if !ok {
		return diagram.ErrUnknownNode
	}
	tn, ok := g.Node(template)
	if !ok {
		return diagram.ErrUnknownNode
	}
	prevType := n.Type
	n.Type, n.Orientation = tn.Type, tn.Orientation
	n.Clone, n.Locked = tn.Clone, tn.Locked

	if newLabelText != nil {
		if l, ok := diagram.NameLabel(g, node); ok && l.Text != *newLabelText {
			if err := g.SetLabelText(l.ID, *newLabelText); err != nil {
				return err
			}
		}
	}

	size := tn.Layout.Size()
	if newSize != nil {
		size = *newSize
	}
	if err := g.SetLayout(node, anchoredBox(n.Layout, UniqueEdgeSide(g, node), size)); err != nil {
		return err
	}
	builder.Configure(n)

	if err := repairPorts(g, n, prevType); err != nil {
		return err
	}
	if err := m.mergeLabels(g, node, template); err != nil {
		return err
	}

	if prevType.IsComplex() {
		if err := removeDescendants(g, node); err != nil {
			return err
		}
	}
	if tn.Type.IsComplex() {
		delta := n.Layout.TopLeft().Sub(tn.Layout.TopLeft())
		for _, c := range g.Children(template) {
			subtree := append(diagram.Descendants(g, c.ID), c.ID)
			if err := g.SetParent(c.ID, node); err != nil {
				return err
			}
			g.Translate(delta, subtree...)
		}
	}
	return nil
}

func (m *Merger) mergeLabels(g diagram.Editor, node, template diagram.NodeID) error {
	for _, l := range g.NodeLabels(node) {
		if !m.cm.IsNodeAcceptingLabel(g, node, l.Type) {
			if err := g.RemoveLabel(l.ID); err != nil {
				return err
			}
		}
	}
	_, hasName := diagram.NameLabel(g, node)
	for _, l := range g.NodeLabels(template) {
		if l.Type == sbgn.NameLabel {
			if hasName {
				continue
			}
			hasName = true
		}
		if _, err := g.AddLabel(diagram.Label{Node: node, Type: l.Type, Text: l.Text}); err != nil {
			return err
		}
	}
	return nil
}

// repairPorts fixes the ports of n after its type changed from prevType.
// The first matching case applies:
//
//   - a process turned phenotype collapses onto one center port for its
//     regulation inputs
//   - a logic gate turned entity collapses onto one center port for its
//     regulation or logic outputs
//   - a phenotype turned process, or an entity turned logic gate, takes the
//     orientation its edges suggest and spreads them over fresh fixed ports
//   - a node with fixed ports whose I/O ports no longer sit where its
//     orientation wants them gets fresh I/O ports, keeping its I/O edges
//   - a node without edges gets the default ports of its new type
func repairPorts(g diagram.Editor, n *diagram.Node, prevType sbgn.Type) error {
	id := n.ID
	regIn := filterEdges(g.InEdges(id), func(e *diagram.Edge) bool { return e.Type.IsRegulation() })
	regOut := filterEdges(g.OutEdges(id), func(e *diagram.Edge) bool { return e.Type.IsRegulation() })
	logicOut := filterEdges(g.OutEdges(id), func(e *diagram.Edge) bool { return e.Type == sbgn.LogicArc })

	switch {
	case prevType.IsPN() && n.Type == sbgn.Phenotype && len(regIn) > 0:
		return routeToCenter(g, n, regIn)
	case prevType.IsLogic() && n.Type.IsEPN() && len(regOut) > 0:
		return routeToCenter(g, n, regOut)
	case prevType.IsLogic() && n.Type.IsEPN() && len(logicOut) > 0:
		return routeToCenter(g, n, logicOut)
	case prevType == sbgn.Phenotype && n.Type.IsPN() && len(regIn) > 0:
		if err := adjustSizeAndOrientation(g, n, regIn, false, false); err != nil {
			return err
		}
		return routeToPorts(g, n, regIn, false)
	case prevType.IsEPN() && n.Type.IsLogic() && len(regOut) > 0:
		if err := adjustSizeAndOrientation(g, n, regOut, true, true); err != nil {
			return err
		}
		return routeToPorts(g, n, regOut, true)
	case prevType.IsEPN() && n.Type.IsLogic() && len(logicOut) > 0:
		if err := adjustSizeAndOrientation(g, n, logicOut, true, true); err != nil {
			return err
		}
		return routeToPorts(g, n, logicOut, true)
	case g.Degree(id) > 0 && !ioPortsInPlace(g, n):
		return rebuildIOPorts(g, n)
	case g.Degree(id) == 0:
		if err := builder.RemovePorts(g, id); err != nil {
			return err
		}
		_, err := builder.AddPorts(g, id)
		return err
	}
	return nil
}

func filterEdges(edges []*diagram.Edge, keep func(*diagram.Edge) bool) []*diagram.Edge {
	var out []*diagram.Edge
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func adjustSizeAndOrientation(g diagram.Editor, n *diagram.Node, edges []*diagram.Edge, atSource, portsOnMainAxis bool) error {
	prev := n.Orientation
	n.Orientation = edgeInducedOrientation(g, n, edges, atSource, portsOnMainAxis)
	if prev == n.Orientation {
		return nil
	}
	return g.SetLayout(n.ID, geom.FromCenter(n.Layout.Center(), n.Layout.Size().Swap()))
}

// routeToCenter attaches edges to one new center port and removes every
// port n had before.
func routeToCenter(g diagram.Editor, n *diagram.Node, edges []*diagram.Edge) error {
	prev := g.Ports(n.ID)
	center, err := g.AddPort(n.ID, sbgn.NoType, n.Layout.Center())
	if err != nil {
		return err
	}
	for _, e := range edges {
		if g.TargetNode(e) == n.ID {
			err = g.SetEdgeTarget(e.ID, center.ID)
		} else {
			err = g.SetEdgeSource(e.ID, center.ID)
		}
		if err != nil {
			return err
		}
	}
	return removePorts(g, prev)
}

// routeToPorts allocates fresh fixed ports, attaches each edge to the one
// on its sector point's side and removes every port n had before.
func routeToPorts(g diagram.Editor, n *diagram.Node, edges []*diagram.Edge, atSource bool) error {
	prev := g.Ports(n.ID)
	fresh, err := builder.AddPorts(g, n.ID)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		return nil
	}
	for _, e := range edges {
		p := sidePort(n, fresh, SectorPoint(g, e, atSource))
		if atSource {
			err = g.SetEdgeSource(e.ID, p.ID)
		} else {
			err = g.SetEdgeTarget(e.ID, p.ID)
		}
		if err != nil {
			return err
		}
	}
	return removePorts(g, prev)
}

// ioPortsInPlace reports whether the I/O ports of n sit exactly at the
// fixed locations of its type and orientation.
func ioPortsInPlace(g diagram.Reader, n *diagram.Node) bool {
	want := builder.FixedPortLocations(n)
	if len(want) == 0 {
		return true
	}
	io := builder.IOPorts(g, n.ID)
	if len(io) != len(want) {
		return false
	}
	for _, loc := range want {
		if !slices.ContainsFunc(io, func(p *diagram.Port) bool {
			return p.Location.Dist(loc) < builder.CenterTolerance
		}) {
			return false
		}
	}
	return true
}

// rebuildIOPorts replaces the I/O ports of n with fresh fixed ports.
// Incoming I/O edges are placed first, each on the port on its sector
// point's side; outgoing ones follow the same rule but switch to the other
// port when that side already takes incoming flow. Other ports are kept.
func rebuildIOPorts(g diagram.Editor, n *diagram.Node) error {
	old := builder.IOPorts(g, n.ID)
	var in, out []*diagram.Edge
	for _, p := range old {
		in = append(in, g.InEdgesAtPort(p.ID)...)
		out = append(out, g.OutEdgesAtPort(p.ID)...)
	}
	fresh, err := builder.AddPorts(g, n.ID)
	if err != nil {
		return err
	}
	if len(fresh) == 0 {
		return nil
	}
	other := func(p *diagram.Port) *diagram.Port {
		for _, q := range fresh {
			if q.ID != p.ID {
				return q
			}
		}
		return p
	}
	for _, e := range in {
		p := sidePort(n, fresh, SectorPoint(g, e, false))
		if g.PortOutDegree(p.ID) > 0 {
			p = other(p)
		}
		if err := g.SetEdgeTarget(e.ID, p.ID); err != nil {
			return err
		}
	}
	for _, e := range out {
		p := sidePort(n, fresh, SectorPoint(g, e, true))
		if g.PortInDegree(p.ID) > 0 {
			p = other(p)
		}
		if err := g.SetEdgeSource(e.ID, p.ID); err != nil {
			return err
		}
	}
	return removePorts(g, old)
}

func removePorts(g diagram.Editor, ports []*diagram.Port) error {
	for _, p := range ports {
		if err := g.RemovePort(p.ID); err != nil {
			return err
		}
	}
	return nil
}
