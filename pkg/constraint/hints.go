package constraint

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// EdgeCreationHints lists the edge types that may start at port of node,
// in order of preference. Under [None] every arc type is listed.
func (m *Manager) EdgeCreationHints(g diagram.Reader, node diagram.NodeID, port diagram.PortID) []Hint {
	return m.endpointHints(g, node, port, "")
}

// EdgeConversionHints lists the types the existing edge may be converted
// to. Hints are derived from each endpoint with the edge itself left out,
// and only the types both endpoints agree on survive: a hint at the source
// matches the target hint of the same type with Reversed negated. Under
// [None] every arc type is listed.
func (m *Manager) EdgeConversionHints(g diagram.Reader, edge diagram.EdgeID) []Hint {
	e, ok := g.Edge(edge)
	if !ok {
		return nil
	}
	sourceHints := m.endpointHints(g, g.SourceNode(e), e.Source, e.ID)
	if !m.strict() {
		return sourceHints
	}
	targetHints := m.endpointHints(g, g.TargetNode(e), e.Target, e.ID)
	mirrored := make([]Hint, len(targetHints))
	for i, h := range targetHints {
		mirrored[i] = Hint{Type: h.Type, Reversed: !h.Reversed}
	}
	var out []Hint
	for _, h := range sourceHints {
		if slices.Contains(mirrored, h) && !slices.Contains(out, h) {
			out = append(out, h)
		}
	}
	return out
}

// IsValidEdgeConversion reports whether edge may be retyped to t.
func (m *Manager) IsValidEdgeConversion(g diagram.Reader, edge diagram.EdgeID, t sbgn.Type) bool {
	if !m.strict() {
		return true
	}
	return slices.ContainsFunc(m.EdgeConversionHints(g, edge), func(h Hint) bool { return h.Type == t })
}

func allArcHints() []Hint {
	arcs := sbgn.ArcTypes()
	out := make([]Hint, len(arcs))
	for i, t := range arcs {
		out[i] = Hint{Type: t}
	}
	return out
}

func regulationHints(reversed bool) []Hint {
	regs := sbgn.RegulationTypes()
	out := make([]Hint, len(regs))
	for i, t := range regs {
		out[i] = Hint{Type: t, Reversed: reversed}
	}
	return out
}

// endpointHints derives the hints at one endpoint. Edges equal to exclude
// are ignored, so an edge being converted does not constrain itself.
func (m *Manager) endpointHints(g diagram.Reader, node diagram.NodeID, port diagram.PortID, exclude diagram.EdgeID) []Hint {
	if !m.strict() {
		return allArcHints()
	}
	n, ok := g.Node(node)
	if !ok {
		return nil
	}
	others := func(edges []*diagram.Edge) []*diagram.Edge {
		return slices.DeleteFunc(slices.Clone(edges), func(e *diagram.Edge) bool { return e.ID == exclude })
	}
	var atPortOut, atPortIn []*diagram.Edge
	if port != "" {
		atPortOut = others(g.OutEdgesAtPort(port))
		atPortIn = others(g.InEdgesAtPort(port))
	}
	t := n.Type

	switch {
	case diagram.ParentType(g, node).IsComplex():
		return []Hint{{Type: sbgn.Modulation}}

	case t.IsEPN():
		hints := []Hint{
			{Type: sbgn.Consumption},
			{Type: sbgn.Production, Reversed: true},
			{Type: sbgn.LogicArc},
			{Type: sbgn.EquivalenceArc},
		}
		return append(hints, regulationHints(false)...)

	case t.IsPN() && portType(g, port) == sbgn.InputAndOutput:
		productionElsewhere := slices.ContainsFunc(others(g.OutEdges(node)), func(e *diagram.Edge) bool {
			return e.Type == sbgn.Production && e.Source != port
		})
		consumptionElsewhere := slices.ContainsFunc(others(g.InEdges(node)), func(e *diagram.Edge) bool {
			return e.Type == sbgn.Consumption && e.Target != port
		})
		switch {
		case len(atPortIn) > 0:
			return []Hint{{Type: sbgn.Consumption, Reversed: true}}
		case len(atPortOut) > 0:
			return []Hint{{Type: sbgn.Production}}
		case consumptionElsewhere:
			return []Hint{{Type: sbgn.Production}}
		case productionElsewhere:
			return []Hint{{Type: sbgn.Consumption, Reversed: true}, {Type: sbgn.Production}}
		}
		return []Hint{{Type: sbgn.Production}, {Type: sbgn.Consumption, Reversed: true}}

	case t.IsPN():
		return regulationHints(true)

	case t == sbgn.Compartment, t == sbgn.Submap, t == sbgn.Tag:
		return []Hint{{Type: sbgn.EquivalenceArc}}

	case t.IsLogic():
		switch {
		case slices.ContainsFunc(atPortOut, func(e *diagram.Edge) bool { return e.Type.IsRegulation() }):
			return nil
		case slices.ContainsFunc(atPortOut, func(e *diagram.Edge) bool { return e.Type == sbgn.LogicArc }):
			return []Hint{{Type: sbgn.LogicArc}}
		case slices.ContainsFunc(atPortIn, func(e *diagram.Edge) bool { return e.Type == sbgn.LogicArc }):
			return []Hint{{Type: sbgn.LogicArc, Reversed: true}}
		case slices.ContainsFunc(others(g.OutEdges(node)), func(e *diagram.Edge) bool { return e.Source != port }):
			return []Hint{{Type: sbgn.LogicArc, Reversed: true}}
		}
		return append(regulationHints(false), Hint{Type: sbgn.LogicArc})

	case t == sbgn.Phenotype:
		return regulationHints(true)
	}
	return nil
}
