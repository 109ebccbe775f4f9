package constraint

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// conversionWeight orders conversion candidates, lowest first.
var conversionWeight = map[sbgn.Type]int{
	sbgn.SimpleChemical:     1,
	sbgn.Macromolecule:      2,
	sbgn.NucleicAcidFeature: 3,
	sbgn.Process:            4,
	sbgn.Tag:                5,
	sbgn.And:                6,
}

const defaultConversionWeight = 1000

func weight(t sbgn.Type) int {
	if w, ok := conversionWeight[t]; ok {
		return w
	}
	return defaultConversionWeight
}

// NodeConversionTypes returns every node type node could take without
// making any of its incident edges illegal, cheapest first. Types of equal
// weight keep declaration order. The node's current type is included when
// its edges are legal.
func (m *Manager) NodeConversionTypes(g diagram.Reader, node diagram.NodeID) []sbgn.Type {
	if _, ok := g.Node(node); !ok {
		return nil
	}
	out := g.OutEdges(node)
	in := g.InEdges(node)
	var allowed []sbgn.Type
	for _, t := range sbgn.NodeTypes() {
		if m.keepsEdgesLegal(g, node, t, out, in) {
			allowed = append(allowed, t)
		}
	}
	slices.SortStableFunc(allowed, func(a, b sbgn.Type) int { return weight(a) - weight(b) })
	return allowed
}

func (m *Manager) keepsEdgesLegal(g diagram.Reader, node diagram.NodeID, t sbgn.Type, out, in []*diagram.Edge) bool {
	for _, e := range out {
		p := ProposalFor(g, e)
		p.SourceType = t
		if p.Target == node {
			p.TargetType = t
		}
		if !m.IsValidSource(g, p) {
			return false
		}
	}
	for _, e := range in {
		p := ProposalFor(g, e)
		p.TargetType = t
		if p.Source == node {
			p.SourceType = t
		}
		if !m.IsValidTarget(g, p) {
			return false
		}
	}
	return true
}
