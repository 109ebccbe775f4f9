package constraint

import (
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func TestAuditCleanDiagram(t *testing.T) {
	d, _, _, _ := glycolysisStep(t)
	if vs := New(Strict).Audit(d); len(vs) != 0 {
		t.Errorf("Audit() = %v, want no violations", vs)
	}
}

func TestAuditFindsViolations(t *testing.T) {
	m := New(Strict)
	d := diagram.New()

	outer := mustNode(t, d, sbgn.Compartment)
	inner := mustChild(t, d, sbgn.Compartment, outer)

	sink := mustNode(t, d, sbgn.SourceAndSink)
	n, _ := d.Node(sink)
	n.Clone = true

	mm := mustNode(t, d, sbgn.Macromolecule)
	term, err := d.AddPort(mm, sbgn.Terminal, geom.Point{})
	if err != nil {
		t.Fatalf("AddPort() error: %v", err)
	}

	pn := mustNode(t, d, sbgn.Process)
	if err := builder.RemovePorts(d, pn); err != nil {
		t.Fatalf("RemovePorts() error: %v", err)
	}
	sv, err := d.AddLabel(diagram.Label{Node: pn, Type: sbgn.StateVariable, Text: "P"})
	if err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}

	sc := mustNode(t, d, sbgn.SimpleChemical)
	bad := mustConnect(t, d, mm, sc, sbgn.Inhibition)
	card, err := d.AddLabel(diagram.Label{Edge: bad.ID, Type: sbgn.Cardinality, Text: "2"})
	if err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}

	odd, err := d.AddNode(diagram.Node{Type: sbgn.Consumption})
	if err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}

	vs := m.Audit(d)
	want := []Violation{
		{Kind: IllegalChild, Severity: Error, Node: inner},
		{Kind: IncapableClone, Severity: Warning, Node: sink},
		{Kind: RejectedPort, Severity: Warning, Node: mm, Port: term.ID},
		{Kind: FixedPortMismatch, Severity: Warning, Node: pn},
		{Kind: RejectedLabel, Severity: Warning, Node: pn, Label: sv.ID},
		{Kind: UnknownType, Severity: Error, Node: odd.ID},
		{Kind: IllegalEdge, Severity: Error, Edge: bad.ID},
		{Kind: RejectedLabel, Severity: Warning, Edge: bad.ID, Label: card.ID},
	}
	if len(vs) != len(want) {
		t.Fatalf("Audit() = %d violations %v, want %d", len(vs), vs, len(want))
	}
	for i, w := range want {
		got := vs[i]
		got.Message = ""
		if got != w {
			t.Errorf("violation %d = %+v, want %+v", i, got, w)
		}
		if vs[i].Message == "" {
			t.Errorf("violation %d has no message", i)
		}
	}

	c := Summary(vs)
	if c.Error != 3 || c.Warning != 5 || c.Info != 0 {
		t.Errorf("Summary() = %+v, want 3 errors and 5 warnings", c)
	}
}

func TestAuditLenient(t *testing.T) {
	d := diagram.New()
	mm := mustNode(t, d, sbgn.Macromolecule)
	sc := mustNode(t, d, sbgn.SimpleChemical)
	mustConnect(t, d, mm, sc, sbgn.Inhibition)
	pn := mustNode(t, d, sbgn.Process)
	if err := builder.RemovePorts(d, pn); err != nil {
		t.Fatalf("RemovePorts() error: %v", err)
	}

	if vs := New(None).Audit(d); len(vs) != 0 {
		t.Errorf("Audit() under None = %v, want none", vs)
	}
}

func TestViolationString(t *testing.T) {
	v := Violation{Severity: Error, Edge: "e1", Message: "bad"}
	if got, want := v.String(), "[error] edge e1: bad"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	v = Violation{Severity: Warning, Node: "n1", Message: "odd"}
	if got, want := v.String(), "[warning] node n1: odd"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := Kind(99).String(), "Kind(99)"; got != want {
		t.Errorf("Kind(99).String() = %q, want %q", got, want)
	}
}
