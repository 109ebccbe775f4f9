package constraint

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// IsNodeAcceptingPort reports whether a node of nodeType may carry an
// explicitly added port of portType. Only submaps accept terminals.
func (m *Manager) IsNodeAcceptingPort(nodeType, portType sbgn.Type) bool {
	return portType == sbgn.Terminal && nodeType == sbgn.Submap
}

// IsEdgeAcceptingLabel reports whether edge may gain a label of labelType.
// Only consumption and production arcs take a cardinality, and only one.
func (m *Manager) IsEdgeAcceptingLabel(g diagram.Reader, edge diagram.EdgeID, labelType sbgn.Type) bool {
	return m.edgeAccepts(g, edge, labelType, "")
}

// IsEdgeKeepingLabel reports whether an existing edge label would still be
// accepted by its edge, judging the edge without that label.
func (m *Manager) IsEdgeKeepingLabel(g diagram.Reader, label diagram.LabelID) bool {
	l, ok := g.Label(label)
	if !ok || l.Edge == "" {
		return false
	}
	return m.edgeAccepts(g, l.Edge, l.Type, l.ID)
}

func (m *Manager) edgeAccepts(g diagram.Reader, edge diagram.EdgeID, labelType sbgn.Type, except diagram.LabelID) bool {
	if !m.strict() {
		return true
	}
	e, ok := g.Edge(edge)
	if !ok {
		return false
	}
	hasCardinality := slices.ContainsFunc(g.EdgeLabels(edge), func(l *diagram.Label) bool {
		return l.ID != except && l.Type == sbgn.Cardinality
	})
	switch {
	case hasCardinality:
		return false
	case labelType == sbgn.Cardinality:
		return e.Type == sbgn.Consumption || e.Type == sbgn.Production
	}
	return false
}

// IsNodeAcceptingLabel reports whether node may carry a label of labelType.
// Name labels follow the type rules even under [None].
func (m *Manager) IsNodeAcceptingLabel(g diagram.Reader, node diagram.NodeID, labelType sbgn.Type) bool {
	if !m.strict() && labelType != sbgn.NameLabel {
		return true
	}
	n, ok := g.Node(node)
	if !ok {
		return false
	}
	t := n.Type
	entity := t.IsEPN() && t != sbgn.SourceAndSink
	switch labelType {
	case sbgn.UnitOfInformation:
		return entity || t == sbgn.Compartment || t == sbgn.Phenotype
	case sbgn.StateVariable:
		return entity || t == sbgn.Phenotype
	case sbgn.NameLabel:
		return entity || t == sbgn.Compartment || t == sbgn.Phenotype || t.IsReference()
	case sbgn.CloneLabel:
		return n.Clone && t.CanCarryCloneMarker()
	case sbgn.CalloutLabel:
		return true
	}
	return false
}

// IsValidChild reports whether node may be placed inside a group of type
// groupType. Compartments never nest, at any level. Complexes admit only
// member-capable types with no incoming edges and modulation-only outgoing
// edges.
func (m *Manager) IsValidChild(g diagram.Reader, groupType sbgn.Type, node diagram.NodeID) bool {
	n, ok := g.Node(node)
	if !ok {
		return false
	}
	switch {
	case groupType == sbgn.Compartment:
		return n.Type != sbgn.Compartment
	case !m.strict():
		return true
	case groupType.IsComplex():
		return n.Type.CanBeContainedInComplex() &&
			g.InDegree(node) == 0 &&
			!slices.ContainsFunc(g.OutEdges(node), func(e *diagram.Edge) bool { return e.Type != sbgn.Modulation })
	}
	return true
}
