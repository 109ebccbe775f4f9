package merge

import (
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func TestTransferEdgesProcessOntoProcess(t *testing.T) {
	d := diagram.New()
	glc := mustNode(t, d, sbgn.SimpleChemical, -200, 0)
	pn1 := mustNode(t, d, sbgn.Process, 0, 0)
	g6p := mustNode(t, d, sbgn.SimpleChemical, 200, 0)
	consumption := mustConnect(t, d, glc, pn1, sbgn.Consumption)
	production := mustConnect(t, d, pn1, g6p, sbgn.Production)
	pn2 := mustNode(t, d, sbgn.Process, 5, 0)

	m := New(nil)
	if err := m.TransferEdgesToNode(d, pn1, pn2); err != nil {
		t.Fatalf("TransferEdgesToNode() error: %v", err)
	}

	if got := d.Degree(pn1); got != 0 {
		t.Errorf("Degree(source) = %d, want 0", got)
	}
	if got := len(d.Ports(pn2)); got != 2 {
		t.Errorf("target ports = %d, want 2 (no new ports)", got)
	}
	in := portAt(t, d, consumption.Target)
	if in.Owner != pn2 || in.Location != (geom.Point{X: -15, Y: 0}) {
		t.Errorf("consumption target = %s at %v, want %s at (-15,0)", in.Owner, in.Location, pn2)
	}
	out := portAt(t, d, production.Source)
	if out.Owner != pn2 || out.Location != (geom.Point{X: 25, Y: 0}) {
		t.Errorf("production source = %s at %v, want %s at (25,0)", out.Owner, out.Location, pn2)
	}
	cm := constraint.New(constraint.Strict)
	for _, e := range d.Edges() {
		if !cm.IsValidSource(d, constraint.ProposalFor(d, e)) {
			t.Errorf("edge %v is illegal after transfer", e.Type)
		}
	}
}

func TestTransferEdgesUntypedPorts(t *testing.T) {
	d := diagram.New()
	glc := mustNode(t, d, sbgn.SimpleChemical, 0, 0)
	pn := mustNode(t, d, sbgn.Process, 200, 0)
	consumption := mustConnect(t, d, glc, pn, sbgn.Consumption)

	side, err := d.AddPort(glc, sbgn.NoType, geom.Point{X: 30, Y: 0})
	if err != nil {
		t.Fatalf("AddPort() error: %v", err)
	}
	pnCenter, err := builder.CenterPort(d, pn)
	if err != nil {
		t.Fatalf("CenterPort() error: %v", err)
	}
	modulation, err := d.AddEdge(diagram.Edge{Type: sbgn.Modulation, Source: side.ID, Target: pnCenter.ID})
	if err != nil {
		t.Fatalf("AddEdge() error: %v", err)
	}

	other := mustNode(t, d, sbgn.Macromolecule, 10, 0)
	if err := New(nil).TransferEdgesToNode(d, glc, other); err != nil {
		t.Fatalf("TransferEdgesToNode() error: %v", err)
	}

	center := portAt(t, d, consumption.Source)
	if center.Owner != other || center.Location != (geom.Point{X: 10, Y: 0}) {
		t.Errorf("center edge moved to %s at %v, want center of %s", center.Owner, center.Location, other)
	}
	ratio := portAt(t, d, modulation.Source)
	if ratio.Owner != other || ratio.Location != (geom.Point{X: 60, Y: 0}) {
		t.Errorf("side edge moved to %s at %v, want (60,0) on %s", ratio.Owner, ratio.Location, other)
	}
	if got := d.Degree(glc); got != 0 {
		t.Errorf("Degree(source) = %d, want 0", got)
	}
}

func TestTransferEdgesReusesCenterPort(t *testing.T) {
	d := diagram.New()
	a := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	b := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	pn := mustNode(t, d, sbgn.Process, 200, 0)
	mustConnect(t, d, a, pn, sbgn.Catalysis)
	mustConnect(t, d, b, pn, sbgn.Stimulation)

	if err := New(nil).TransferEdgesToNode(d, a, b); err != nil {
		t.Fatalf("TransferEdgesToNode() error: %v", err)
	}
	if got := len(d.Ports(b)); got != 1 {
		t.Errorf("target ports = %d, want 1 shared center port", got)
	}
	if got := d.OutDegree(b); got != 2 {
		t.Errorf("OutDegree(target) = %d, want 2", got)
	}
}

func TestTransferEdgesFallsBackToCenterPort(t *testing.T) {
	d := diagram.New()
	glc := mustNode(t, d, sbgn.SimpleChemical, -200, 0)
	pn := mustNode(t, d, sbgn.Process, 0, 0)
	e := mustConnect(t, d, glc, pn, sbgn.Consumption)

	bare, err := d.AddNode(diagram.Node{Type: sbgn.Process, Orientation: sbgn.Horizontal, Layout: geom.Rect{X: 0, Y: 0, W: 40, H: 20}})
	if err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if err := New(nil).TransferEdgesToNode(d, pn, bare.ID); err != nil {
		t.Fatalf("TransferEdgesToNode() error: %v", err)
	}
	p := portAt(t, d, e.Target)
	if p.Owner != bare.ID || p.Type != sbgn.NoType || p.Location != (geom.Point{X: 20, Y: 10}) {
		t.Errorf("fallback port = %+v, want untyped center port of %s", p, bare.ID)
	}
}

func TestTransferEdgesUnknownNode(t *testing.T) {
	d := diagram.New()
	a := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	m := New(nil)
	if err := m.TransferEdgesToNode(d, "missing", a); err != diagram.ErrUnknownNode {
		t.Errorf("TransferEdgesToNode(missing source) = %v, want ErrUnknownNode", err)
	}
	if err := m.TransferEdgesToNode(d, a, "missing"); err != diagram.ErrUnknownNode {
		t.Errorf("TransferEdgesToNode(missing target) = %v, want ErrUnknownNode", err)
	}
}

func TestRemoveTransferSource(t *testing.T) {
	d := diagram.New()
	cx := mustNode(t, d, sbgn.Complex, 0, 0)
	member := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	nested := mustNode(t, d, sbgn.Complex, 0, 0)
	inner := mustNode(t, d, sbgn.SimpleChemical, 0, 0)
	for _, p := range [][2]diagram.NodeID{{member, cx}, {nested, cx}, {inner, nested}} {
		if err := d.SetParent(p[0], p[1]); err != nil {
			t.Fatalf("SetParent() error: %v", err)
		}
	}
	keep := mustNode(t, d, sbgn.Macromolecule, 300, 0)

	if err := RemoveTransferSource(d, cx); err != nil {
		t.Fatalf("RemoveTransferSource() error: %v", err)
	}
	if got := d.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
	if _, ok := d.Node(keep); !ok {
		t.Error("unrelated node was removed")
	}

	lone := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	child := mustNode(t, d, sbgn.Macromolecule, 0, 0)
	comp := mustNode(t, d, sbgn.Compartment, 0, 0)
	if err := d.SetParent(child, comp); err != nil {
		t.Fatalf("SetParent() error: %v", err)
	}
	if err := RemoveTransferSource(d, lone); err != nil {
		t.Fatalf("RemoveTransferSource() error: %v", err)
	}
	if err := RemoveTransferSource(d, comp); err != nil {
		t.Fatalf("RemoveTransferSource() error: %v", err)
	}
	if _, ok := d.Node(child); !ok {
		t.Error("members of a non-complex node must survive")
	}
}
