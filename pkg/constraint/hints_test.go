package constraint

import (
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func TestEdgeCreationHintsEntity(t *testing.T) {
	m := New(Strict)
	d, glc, _, _ := glycolysisStep(t)

	got := m.EdgeCreationHints(d, glc, centerPort(t, d, glc))
	want := []Hint{
		hint(sbgn.Consumption, false),
		hint(sbgn.Production, true),
		hint(sbgn.LogicArc, false),
		hint(sbgn.EquivalenceArc, false),
		hint(sbgn.Catalysis, false),
		hint(sbgn.Stimulation, false),
		hint(sbgn.Inhibition, false),
		hint(sbgn.NecessaryStimulation, false),
		hint(sbgn.Modulation, false),
	}
	if !hintsEqual(got, want) {
		t.Errorf("EdgeCreationHints(entity) = %v, want %v", got, want)
	}
}

func TestEdgeCreationHintsProcessPorts(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	pn := mustNode(t, d, sbgn.Process)
	in, out := ioPort(t, d, pn, 0), ioPort(t, d, pn, 1)

	untouched := []Hint{hint(sbgn.Production, false), hint(sbgn.Consumption, true)}
	if got := m.EdgeCreationHints(d, pn, in); !hintsEqual(got, untouched) {
		t.Errorf("untouched port hints = %v, want %v", got, untouched)
	}

	glc := mustNode(t, d, sbgn.SimpleChemical)
	mustConnect(t, d, glc, pn, sbgn.Consumption)

	if got, want := m.EdgeCreationHints(d, pn, in), []Hint{hint(sbgn.Consumption, true)}; !hintsEqual(got, want) {
		t.Errorf("consuming port hints = %v, want %v", got, want)
	}
	if got, want := m.EdgeCreationHints(d, pn, out), []Hint{hint(sbgn.Production, false)}; !hintsEqual(got, want) {
		t.Errorf("opposite port hints = %v, want %v", got, want)
	}

	centre := centerPort(t, d, pn)
	if got, want := m.EdgeCreationHints(d, pn, centre), regulationHints(true); !hintsEqual(got, want) {
		t.Errorf("non-I/O port hints = %v, want %v", got, want)
	}
}

func TestEdgeCreationHintsProductionElsewhere(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	pn := mustNode(t, d, sbgn.Process)
	product := mustNode(t, d, sbgn.SimpleChemical)
	mustConnect(t, d, pn, product, sbgn.Production)

	want := []Hint{hint(sbgn.Consumption, true), hint(sbgn.Production, false)}
	if got := m.EdgeCreationHints(d, pn, ioPort(t, d, pn, 1)); !hintsEqual(got, want) {
		t.Errorf("hints opposite a producing port = %v, want %v", got, want)
	}
}

func TestEdgeCreationHintsTable(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	complex := mustNode(t, d, sbgn.Complex)
	member := mustChild(t, d, sbgn.Macromolecule, complex)
	tag := mustNode(t, d, sbgn.Tag)
	comp := mustNode(t, d, sbgn.Compartment)
	pheno := mustNode(t, d, sbgn.Phenotype)

	tests := []struct {
		name string
		node diagram.NodeID
		want []Hint
	}{
		{"complex member", member, []Hint{hint(sbgn.Modulation, false)}},
		{"tag", tag, []Hint{hint(sbgn.EquivalenceArc, false)}},
		{"compartment", comp, []Hint{hint(sbgn.EquivalenceArc, false)}},
		{"phenotype", pheno, regulationHints(true)},
		{"unknown", "missing", nil},
	}
	for _, tt := range tests {
		if got := m.EdgeCreationHints(d, tt.node, ""); !hintsEqual(got, tt.want) {
			t.Errorf("%s: EdgeCreationHints() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEdgeCreationHintsLogic(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	and := mustNode(t, d, sbgn.And)
	in, out := ioPort(t, d, and, 0), ioPort(t, d, and, 1)

	fresh := append(regulationHints(false), hint(sbgn.LogicArc, false))
	if got := m.EdgeCreationHints(d, and, in); !hintsEqual(got, fresh) {
		t.Errorf("fresh gate hints = %v, want %v", got, fresh)
	}

	mm := mustNode(t, d, sbgn.Macromolecule)
	mustConnect(t, d, mm, and, sbgn.LogicArc)
	if got, want := m.EdgeCreationHints(d, and, in), []Hint{hint(sbgn.LogicArc, true)}; !hintsEqual(got, want) {
		t.Errorf("input port hints = %v, want %v", got, want)
	}

	pn := mustNode(t, d, sbgn.Process)
	reg, err := d.AddEdge(diagram.Edge{Type: sbgn.Stimulation, Source: out, Target: centerPort(t, d, pn)})
	if err != nil {
		t.Fatalf("AddEdge() error: %v", err)
	}
	if got := m.EdgeCreationHints(d, and, out); len(got) != 0 {
		t.Errorf("regulating port hints = %v, want none", got)
	}
	if got, want := m.EdgeCreationHints(d, and, in), []Hint{hint(sbgn.LogicArc, true)}; !hintsEqual(got, want) {
		t.Errorf("input port hints with output = %v, want %v", got, want)
	}

	// The edge being converted does not count against itself.
	conv := m.EdgeConversionHints(d, reg.ID)
	if len(conv) == 0 {
		t.Error("EdgeConversionHints(gate regulation) is empty")
	}
}

func TestEdgeConversionHintsIntersect(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	glc := mustNode(t, d, sbgn.SimpleChemical)
	pn := mustNode(t, d, sbgn.Process)
	e := mustConnect(t, d, glc, pn, sbgn.Consumption)

	// With the edge left out the process port is untouched, so the edge
	// may stay a consumption or flip into a production.
	want := []Hint{hint(sbgn.Consumption, false), hint(sbgn.Production, true)}
	if got := m.EdgeConversionHints(d, e.ID); !hintsEqual(got, want) {
		t.Errorf("EdgeConversionHints() = %v, want %v", got, want)
	}
	if !m.IsValidEdgeConversion(d, e.ID, sbgn.Consumption) {
		t.Error("IsValidEdgeConversion(consumption) = false, want true")
	}
	if m.IsValidEdgeConversion(d, e.ID, sbgn.Inhibition) {
		t.Error("IsValidEdgeConversion(inhibition) = true, want false")
	}
}

func TestEdgeConversionHintsRegulation(t *testing.T) {
	m := New(Strict)
	d := diagram.New()
	mm := mustNode(t, d, sbgn.Macromolecule)
	pn := mustNode(t, d, sbgn.Process)
	e := mustConnect(t, d, mm, pn, sbgn.Catalysis)

	if got, want := m.EdgeConversionHints(d, e.ID), regulationHints(false); !hintsEqual(got, want) {
		t.Errorf("EdgeConversionHints(catalysis) = %v, want %v", got, want)
	}
}

func TestHintsUnderNone(t *testing.T) {
	m := New(None)
	d, glc, pn, _ := glycolysisStep(t)
	all := allArcHints()

	if got := m.EdgeCreationHints(d, glc, ""); !hintsEqual(got, all) {
		t.Errorf("EdgeCreationHints() = %v, want every arc", got)
	}
	e := d.InEdges(pn)[0]
	if got := m.EdgeConversionHints(d, e.ID); !hintsEqual(got, all) {
		t.Errorf("EdgeConversionHints() = %v, want every arc", got)
	}
	if !m.IsValidEdgeConversion(d, e.ID, sbgn.Inhibition) {
		t.Error("IsValidEdgeConversion() = false under None")
	}
}

func TestEdgeConversionHintsUnknownEdge(t *testing.T) {
	if got := New(Strict).EdgeConversionHints(diagram.New(), "missing"); got != nil {
		t.Errorf("EdgeConversionHints(missing) = %v, want nil", got)
	}
}
