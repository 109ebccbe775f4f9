package constraint

import (
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// PreferredTargetType returns the most plausible type for a node created at
// the far end of a new edge of type arc leaving source.
func (m *Manager) PreferredTargetType(g diagram.Reader, source diagram.NodeID, sourcePort diagram.PortID, arc sbgn.Type) sbgn.Type {
	switch {
	case arc.IsRegulation():
		return sbgn.Process
	case arc == sbgn.LogicArc:
		return sbgn.And
	case arc == sbgn.EquivalenceArc:
		if nodeType(g, source).IsReference() {
			return sbgn.SimpleChemical
		}
		return sbgn.Tag
	case arc == sbgn.Consumption:
		return sbgn.Process
	case arc == sbgn.Production:
		return preferredProductionType(g, source)
	}
	return sbgn.SimpleChemical
}

// PreferredSourceType returns the most plausible type for a node created at
// the near end of a new edge of type arc entering target.
func (m *Manager) PreferredSourceType(g diagram.Reader, target diagram.NodeID, targetPort diagram.PortID, arc sbgn.Type) sbgn.Type {
	switch {
	case arc.IsRegulation(), arc == sbgn.LogicArc:
		return sbgn.Macromolecule
	case arc == sbgn.EquivalenceArc:
		if nodeType(g, target).IsReference() {
			return sbgn.SimpleChemical
		}
		return sbgn.Tag
	case arc == sbgn.Consumption:
		return preferredConsumptionType(g, target)
	}
	return sbgn.Process
}

// preferredProductionType picks the product type of a process from what it
// consumes. A simple chemical input wins outright; a macromolecule or
// nucleic acid feature input counts only while no product of that type
// exists yet.
func preferredProductionType(g diagram.Reader, process diagram.NodeID) sbgn.Type {
	if nodeType(g, process) == sbgn.Association {
		return sbgn.Complex
	}
	inputs := neighbourTypes(g, g.InEdges(process), sbgn.Consumption, g.SourceNode)
	outputs := neighbourTypes(g, g.OutEdges(process), sbgn.Production, g.TargetNode)
	return pickByVote(inputs, outputs)
}

// preferredConsumptionType mirrors preferredProductionType with inputs and
// outputs swapped.
func preferredConsumptionType(g diagram.Reader, process diagram.NodeID) sbgn.Type {
	if nodeType(g, process) == sbgn.Dissociation {
		return sbgn.Complex
	}
	outputs := neighbourTypes(g, g.OutEdges(process), sbgn.Production, g.TargetNode)
	inputs := neighbourTypes(g, g.InEdges(process), sbgn.Consumption, g.SourceNode)
	return pickByVote(outputs, inputs)
}

func pickByVote(have, opposite map[sbgn.Type]bool) sbgn.Type {
	switch {
	case have[sbgn.SimpleChemical]:
		return sbgn.SimpleChemical
	case have[sbgn.Macromolecule] && !opposite[sbgn.Macromolecule]:
		return sbgn.Macromolecule
	case have[sbgn.NucleicAcidFeature] && !opposite[sbgn.NucleicAcidFeature]:
		return sbgn.NucleicAcidFeature
	}
	return sbgn.SimpleChemical
}

func neighbourTypes(g diagram.Reader, edges []*diagram.Edge, arc sbgn.Type, far func(*diagram.Edge) diagram.NodeID) map[sbgn.Type]bool {
	out := make(map[sbgn.Type]bool)
	for _, e := range edges {
		if e.Type == arc {
			out[nodeType(g, far(e))] = true
		}
	}
	return out
}
