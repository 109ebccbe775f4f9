package constraint

import (
	"fmt"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Severity indicates how serious a violation is.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Kind categorizes a violation.
type Kind int

const (
	IllegalEdge Kind = iota
	IllegalChild
	RejectedLabel
	RejectedPort
	FixedPortMismatch
	IncapableClone
	UnknownType
)

func (k Kind) String() string {
	switch k {
	case IllegalEdge:
		return "illegal-edge"
	case IllegalChild:
		return "illegal-child"
	case RejectedLabel:
		return "rejected-label"
	case RejectedPort:
		return "rejected-port"
	case FixedPortMismatch:
		return "fixed-port-mismatch"
	case IncapableClone:
		return "incapable-clone"
	case UnknownType:
		return "unknown-type"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Violation is one element the rules would have refused. At most one of
// Edge, Port and Label is set; Node names the element's node, if any.
type Violation struct {
	Kind     Kind
	Severity Severity
	Node     diagram.NodeID
	Edge     diagram.EdgeID
	Port     diagram.PortID
	Label    diagram.LabelID
	Message  string
}

func (v Violation) String() string {
	switch {
	case v.Edge != "":
		return fmt.Sprintf("[%s] edge %s: %s", v.Severity, v.Edge, v.Message)
	case v.Node != "":
		return fmt.Sprintf("[%s] node %s: %s", v.Severity, v.Node, v.Message)
	}
	return fmt.Sprintf("[%s] %s", v.Severity, v.Message)
}

// Counts tallies violations by severity.
type Counts struct {
	Info    int
	Warning int
	Error   int
}

// Summary counts vs by severity.
func Summary(vs []Violation) Counts {
	var c Counts
	for _, v := range vs {
		switch v.Severity {
		case Info:
			c.Info++
		case Warning:
			c.Warning++
		case Error:
			c.Error++
		}
	}
	return c
}

// Audit checks every element of g against the rules of m and returns the
// violations in diagram order: nodes with their ports and labels first, then
// edges with their labels. The graph is not modified.
func (m *Manager) Audit(g diagram.Reader) []Violation {
	var vs []Violation
	for _, n := range g.Nodes() {
		vs = append(vs, m.auditNode(g, n)...)
	}
	for _, e := range g.Edges() {
		vs = append(vs, m.auditEdge(g, e)...)
	}
	return vs
}

func (m *Manager) auditNode(g diagram.Reader, n *diagram.Node) []Violation {
	var vs []Violation
	add := func(k Kind, s Severity, format string, args ...any) {
		vs = append(vs, Violation{Kind: k, Severity: s, Node: n.ID, Message: fmt.Sprintf(format, args...)})
	}

	if !n.Type.IsNode() {
		add(UnknownType, Error, "%s is not a node type", n.Type)
	}
	if n.Parent != "" {
		if pt := diagram.ParentType(g, n.ID); !m.IsValidChild(g, pt, n.ID) {
			add(IllegalChild, Error, "%s may not be placed in %s %s", n.Type, pt, n.Parent)
		}
	}
	if m.strict() && n.Clone && !n.Type.CanCarryCloneMarker() {
		add(IncapableClone, Warning, "%s cannot carry a clone marker", n.Type)
	}

	ioPorts := 0
	for _, p := range g.Ports(n.ID) {
		switch {
		case p.Type != sbgn.NoType && !p.Type.IsPort():
			vs = append(vs, Violation{Kind: UnknownType, Severity: Error, Node: n.ID, Port: p.ID,
				Message: fmt.Sprintf("%s is not a port type", p.Type)})
		case p.Type == sbgn.InputAndOutput:
			ioPorts++
		case p.Type == sbgn.Terminal && !m.IsNodeAcceptingPort(n.Type, p.Type):
			vs = append(vs, Violation{Kind: RejectedPort, Severity: Warning, Node: n.ID, Port: p.ID,
				Message: fmt.Sprintf("%s does not accept %s ports", n.Type, p.Type)})
		}
	}
	if m.strict() {
		want := len(builder.FixedPortLocations(n))
		if ioPorts != want {
			add(FixedPortMismatch, Warning, "%s has %d I/O ports, want %d", n.Type, ioPorts, want)
		}
	}

	for _, l := range g.NodeLabels(n.ID) {
		switch {
		case !l.Type.IsLabel():
			vs = append(vs, Violation{Kind: UnknownType, Severity: Error, Node: n.ID, Label: l.ID,
				Message: fmt.Sprintf("%s is not a label type", l.Type)})
		case !m.IsNodeAcceptingLabel(g, n.ID, l.Type):
			vs = append(vs, Violation{Kind: RejectedLabel, Severity: Warning, Node: n.ID, Label: l.ID,
				Message: fmt.Sprintf("%s does not accept %s labels", n.Type, l.Type)})
		}
	}
	return vs
}

func (m *Manager) auditEdge(g diagram.Reader, e *diagram.Edge) []Violation {
	var vs []Violation
	if !e.Type.IsArc() {
		return append(vs, Violation{Kind: UnknownType, Severity: Error, Edge: e.ID,
			Message: fmt.Sprintf("%s is not an arc type", e.Type)})
	}
	if p := ProposalFor(g, e); !m.IsValidSource(g, p) {
		vs = append(vs, Violation{Kind: IllegalEdge, Severity: Error, Edge: e.ID,
			Message: fmt.Sprintf("%s from %s to %s is not allowed", e.Type, p.SourceType, p.TargetType)})
	}
	for _, l := range g.EdgeLabels(e.ID) {
		switch {
		case !l.Type.IsLabel():
			vs = append(vs, Violation{Kind: UnknownType, Severity: Error, Edge: e.ID, Label: l.ID,
				Message: fmt.Sprintf("%s is not a label type", l.Type)})
		case !m.IsEdgeKeepingLabel(g, l.ID):
			vs = append(vs, Violation{Kind: RejectedLabel, Severity: Warning, Edge: e.ID, Label: l.ID,
				Message: fmt.Sprintf("%s does not accept %s labels", e.Type, l.Type)})
		}
	}
	return vs
}
