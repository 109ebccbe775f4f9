package constraint

import (
	"fmt"
	"strings"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Level selects how strictly a [Manager] enforces the SBGN rules.
type Level int

const (
	// Strict enforces every rule.
	Strict Level = iota
	// None accepts almost everything. Compartment nesting and containment
	// cycles are still refused.
	None
)

func (l Level) String() string {
	switch l {
	case Strict:
		return "strict"
	case None:
		return "none"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses "strict" or "none", ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, nil
	case "none", "lenient":
		return None, nil
	}
	return Strict, errors.New(errors.ErrCodeInvalidInput, "unknown constraint level %q", s)
}

// Manager evaluates the SBGN edit rules at a given strictness level.
//
// The zero value is a strict manager.
type Manager struct {
	Level Level
}

// New returns a manager enforcing the given level.
func New(level Level) *Manager {
	return &Manager{Level: level}
}

func (m *Manager) strict() bool { return m.Level == Strict }

// Hint names an edge type that may be created at an endpoint. Reversed
// means the endpoint would be the target of the new edge rather than its
// source.
type Hint struct {
	Type     sbgn.Type
	Reversed bool
}

func (h Hint) String() string {
	if h.Reversed {
		return h.Type.String() + " (reversed)"
	}
	return h.Type.String()
}

// Proposal describes a candidate edge. SourceType and TargetType may differ
// from the stored node types, which is how conversions are tested before
// they happen. Empty port IDs stand for "no port".
type Proposal struct {
	Type       sbgn.Type
	Source     diagram.NodeID
	SourceType sbgn.Type
	SourcePort diagram.PortID
	Target     diagram.NodeID
	TargetType sbgn.Type
	TargetPort diagram.PortID
}

// ProposalFor describes the existing edge e with the stored endpoint types.
func ProposalFor(g diagram.Reader, e *diagram.Edge) Proposal {
	p := Proposal{
		Type:       e.Type,
		Source:     g.SourceNode(e),
		SourcePort: e.Source,
		Target:     g.TargetNode(e),
		TargetPort: e.Target,
	}
	p.SourceType = nodeType(g, p.Source)
	p.TargetType = nodeType(g, p.Target)
	return p
}

func nodeType(g diagram.Reader, id diagram.NodeID) sbgn.Type {
	if n, ok := g.Node(id); ok {
		return n.Type
	}
	return sbgn.NoType
}

func portType(g diagram.Reader, id diagram.PortID) sbgn.Type {
	if id == "" {
		return sbgn.NoType
	}
	if p, ok := g.Port(id); ok {
		return p.Type
	}
	return sbgn.NoType
}

// insideComplex reports whether any proper ancestor of n is a complex.
func insideComplex(g diagram.Reader, n diagram.NodeID) bool {
	node, ok := g.Node(n)
	for ok && node.Parent != "" {
		node, ok = g.Node(node.Parent)
		if ok && node.Type.IsComplex() {
			return true
		}
	}
	return false
}
