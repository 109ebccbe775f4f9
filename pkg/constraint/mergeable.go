package constraint

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// IsMergeable reports whether node a of graph ag may be dropped onto node t
// of graph tg. The graphs may be the same.
//
// A node without edges merges when each node could take the other's type:
// t's type must be among a's conversion types and a's type among t's, since
// the stationary node assumes the dropped node's type. Logic gates and
// processes never merge into each other. A node with edges
// hands them over instead, which needs matching categories (entity onto
// entity, process onto process with compatible port load). Such a transfer
// never targets a complex member unless a carries modulation out-edges
// only, and never targets a itself. Compartments never merge.
func (m *Manager) IsMergeable(ag diagram.Reader, a diagram.NodeID, tg diagram.Reader, t diagram.NodeID) bool {
	an, ok := ag.Node(a)
	if !ok {
		return false
	}
	tn, ok := tg.Node(t)
	if !ok {
		return false
	}
	if an.Type == sbgn.Compartment || tn.Type == sbgn.Compartment {
		return false
	}
	if ag.Degree(a) == 0 {
		if (an.Type.IsLogic() && tn.Type.IsPN()) || (an.Type.IsPN() && tn.Type.IsLogic()) {
			return false
		}
		return slices.Contains(m.NodeConversionTypes(ag, a), tn.Type) &&
			slices.Contains(m.NodeConversionTypes(tg, t), an.Type)
	}

	if an == tn {
		return false
	}
	if diagram.ParentType(tg, t).IsComplex() {
		modulationOnly := !slices.ContainsFunc(ag.OutEdges(a), func(e *diagram.Edge) bool { return e.Type != sbgn.Modulation })
		if ag.InDegree(a) > 0 || !modulationOnly {
			return false
		}
	}
	switch {
	case an.Type.IsEPN():
		return tn.Type.IsEPN()
	case an.Type.IsPN():
		return tn.Type.IsPN() && portLoadCompatible(ag, a, tg, t)
	}
	return false
}

// portLoadCompatible reports whether the I/O flows of two process nodes fit
// on one I/O port pair after a merge.
func portLoadCompatible(ag diagram.Reader, a diagram.NodeID, tg diagram.Reader, t diagram.NodeID) bool {
	aOut, aIn := ioLoad(ag, a)
	tOut, tIn := ioLoad(tg, t)
	return (aOut < 2 && tOut < 2) || (aOut == 2 && tIn == 0) || (tOut == 2 && aIn == 0)
}

// ioLoad counts the I/O ports of n carrying outgoing and incoming edges.
func ioLoad(g diagram.Reader, n diagram.NodeID) (out, in int) {
	for _, p := range g.Ports(n) {
		if p.Type != sbgn.InputAndOutput {
			continue
		}
		if g.PortOutDegree(p.ID) > 0 {
			out++
		}
		if g.PortInDegree(p.ID) > 0 {
			in++
		}
	}
	return out, in
}

// IsMergeablePort reports whether the edges of port ap in ag may move onto
// port tp in tg. An I/O port with outgoing edges needs a target I/O port
// without incoming ones, and the other way round; any other port needs a
// target of the same port type.
func (m *Manager) IsMergeablePort(ag diagram.Reader, ap diagram.PortID, tg diagram.Reader, tp diagram.PortID) bool {
	a, ok := ag.Port(ap)
	if !ok {
		return false
	}
	t, ok := tg.Port(tp)
	if !ok {
		return false
	}
	switch {
	case a.Type == sbgn.InputAndOutput && ag.PortOutDegree(ap) > 0:
		return t.Type == sbgn.InputAndOutput && tg.PortInDegree(tp) == 0
	case a.Type == sbgn.InputAndOutput && ag.PortInDegree(ap) > 0:
		return t.Type == sbgn.InputAndOutput && tg.PortOutDegree(tp) == 0
	}
	return a.Type == t.Type
}
