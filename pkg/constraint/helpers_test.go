package constraint

import (
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func mustNode(t *testing.T, d *diagram.Diagram, typ sbgn.Type) diagram.NodeID {
	t.Helper()
	n, err := builder.NewNode(d, typ, geom.Point{}, "")
	if err != nil {
		t.Fatalf("NewNode(%v) error: %v", typ, err)
	}
	return n.ID
}

func mustChild(t *testing.T, d *diagram.Diagram, typ sbgn.Type, parent diagram.NodeID) diagram.NodeID {
	t.Helper()
	id := mustNode(t, d, typ)
	if err := d.SetParent(id, parent); err != nil {
		t.Fatalf("SetParent() error: %v", err)
	}
	return id
}

func mustConnect(t *testing.T, d *diagram.Diagram, src, tgt diagram.NodeID, typ sbgn.Type) *diagram.Edge {
	t.Helper()
	e, err := builder.Connect(d, src, tgt, typ)
	if err != nil {
		t.Fatalf("Connect(%v) error: %v", typ, err)
	}
	return e
}

func ioPort(t *testing.T, d *diagram.Diagram, n diagram.NodeID, i int) diagram.PortID {
	t.Helper()
	ports := builder.IOPorts(d, n)
	if len(ports) <= i {
		t.Fatalf("node %s has %d I/O ports, want more than %d", n, len(ports), i)
	}
	return ports[i].ID
}

func centerPort(t *testing.T, d *diagram.Diagram, n diagram.NodeID) diagram.PortID {
	t.Helper()
	p, err := builder.CenterPort(d, n)
	if err != nil {
		t.Fatalf("CenterPort() error: %v", err)
	}
	return p.ID
}

// glycolysisStep builds glucose -consumption-> process -production-> g6p.
func glycolysisStep(t *testing.T) (d *diagram.Diagram, glc, pn, g6p diagram.NodeID) {
	t.Helper()
	d = diagram.New()
	glc = mustNode(t, d, sbgn.SimpleChemical)
	pn = mustNode(t, d, sbgn.Process)
	g6p = mustNode(t, d, sbgn.SimpleChemical)
	mustConnect(t, d, glc, pn, sbgn.Consumption)
	mustConnect(t, d, pn, g6p, sbgn.Production)
	return d, glc, pn, g6p
}

func hint(typ sbgn.Type, reversed bool) Hint { return Hint{Type: typ, Reversed: reversed} }

func hintsEqual(a, b []Hint) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
