package constraint

import (
	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// IsValidSource reports whether p is a legal edge when judged from its
// source. It runs the full check, so it always agrees with
// [Manager.IsValidTarget] on the same proposal.
func (m *Manager) IsValidSource(g diagram.Reader, p Proposal) bool {
	return m.isLegal(g, p)
}

// IsValidTarget reports whether p is a legal edge when judged from its
// target. See [Manager.IsValidSource].
func (m *Manager) IsValidTarget(g diagram.Reader, p Proposal) bool {
	return m.isLegal(g, p)
}

// isLegal composes edge/endpoint compatibility with the structural caps of
// both endpoints. Under None only containment between the endpoints is
// refused.
func (m *Manager) isLegal(g diagram.Reader, p Proposal) bool {
	if !m.strict() {
		return !g.IsAncestor(p.Source, p.Target) && !g.IsAncestor(p.Target, p.Source)
	}
	return targetCompatible(g, p) && targetCaps(g, p) &&
		sourceCompatible(g, p) && sourceCaps(g, p)
}

func equivalenceCompatible(source, target sbgn.Type) bool {
	switch {
	case source.IsReference():
		return target.IsEPN() || target == sbgn.Compartment
	case source.IsEPN(), source == sbgn.Compartment:
		return target.IsReference()
	}
	return false
}

func targetCompatible(g diagram.Reader, p Proposal) bool {
	if diagram.ParentType(g, p.Target).IsComplex() {
		return false
	}
	tt, pt := p.TargetType, portType(g, p.TargetPort)
	switch {
	case p.Type == sbgn.Consumption:
		return pt == sbgn.InputAndOutput && tt.IsPN() && g.PortOutDegree(p.TargetPort) == 0
	case p.Type == sbgn.Production:
		return tt.IsEPN()
	case p.Type.IsRegulation():
		return (tt.IsPN() && tt != sbgn.Association && tt != sbgn.Dissociation && pt != sbgn.InputAndOutput) ||
			tt == sbgn.Phenotype
	case p.Type == sbgn.LogicArc:
		return tt.IsLogic()
	case p.Type == sbgn.EquivalenceArc:
		return equivalenceCompatible(p.SourceType, tt)
	}
	return false
}

func targetCaps(g diagram.Reader, p Proposal) bool {
	tt := p.TargetType
	switch {
	case tt.IsPN():
		// Consumption and production must not end up on the same I/O port
		// pair side: the opposite port may carry no incoming edges.
		if portType(g, p.TargetPort) != sbgn.InputAndOutput {
			return true
		}
		port, ok := g.Port(p.TargetPort)
		if !ok {
			return false
		}
		opposite, ok := builder.OppositeIOPort(g, port)
		return ok && g.PortInDegree(opposite.ID) == 0
	case tt == sbgn.SourceAndSink:
		return g.Degree(p.Target) <= 1
	case tt == sbgn.Not:
		if _, ok := g.Port(p.TargetPort); !ok {
			return false
		}
		return g.PortInDegree(p.TargetPort) <= 1
	case tt.IsEPN():
		return !insideComplex(g, p.Target)
	}
	return true
}

func sourceCompatible(g diagram.Reader, p Proposal) bool {
	st := p.SourceType
	switch {
	case p.Type == sbgn.Consumption:
		return st.IsEPN()
	case p.Type == sbgn.Production:
		return st.IsPN() && portType(g, p.SourcePort) == sbgn.InputAndOutput
	case p.Type.IsRegulation():
		return (st.IsEPN() && st != sbgn.SourceAndSink) || st.IsLogic()
	case p.Type == sbgn.LogicArc:
		return st.IsEPN() || st.IsLogic()
	case p.Type == sbgn.EquivalenceArc:
		return equivalenceCompatible(st, p.TargetType)
	}
	return false
}

func sourceCaps(g diagram.Reader, p Proposal) bool {
	st := p.SourceType
	switch {
	case st == sbgn.Association:
		return countIOSourced(g, g.OutEdgesAtPort(p.SourcePort)) <= 1
	case st == sbgn.Dissociation:
		return countIOSourced(g, g.InEdgesAtPort(p.SourcePort)) <= 1
	case st == sbgn.SourceAndSink:
		return g.Degree(p.Source) <= 1
	case st.IsLogic():
		return g.PortOutDegree(p.SourcePort) <= 1
	case diagram.ParentType(g, p.Source).IsComplex():
		return p.Type == sbgn.Modulation
	}
	return true
}

func countIOSourced(g diagram.Reader, edges []*diagram.Edge) int {
	c := 0
	for _, e := range edges {
		if portType(g, e.Source) == sbgn.InputAndOutput {
			c++
		}
	}
	return c
}
