package sbgn

import (
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/errors"
)

func TestStringRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q) error: %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"macromolecule", Macromolecule, false},
		{"necessary-stimulation", NecessaryStimulation, false},
		{" AND ", And, false},
		{"", NoType, false},
		{"PROTEIN", NoType, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidType) {
				t.Errorf("ParseType(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidType)
			}
			if got != tt.want {
				t.Errorf("ParseType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringOutOfRange(t *testing.T) {
	if got := Type(-3).String(); got != "NO_TYPE" {
		t.Errorf("Type(-3).String() = %q, want NO_TYPE", got)
	}
	if got := numTypes.String(); got != "NO_TYPE" {
		t.Errorf("numTypes.String() = %q, want NO_TYPE", got)
	}
}

func TestNoTypeRejectedEverywhere(t *testing.T) {
	preds := map[string]func(Type) bool{
		"IsSimpleChemical":        Type.IsSimpleChemical,
		"IsMacromolecule":         Type.IsMacromolecule,
		"IsNucleicAcidFeature":    Type.IsNucleicAcidFeature,
		"IsComplex":               Type.IsComplex,
		"IsEPN":                   Type.IsEPN,
		"IsPN":                    Type.IsPN,
		"IsLogic":                 Type.IsLogic,
		"IsReference":             Type.IsReference,
		"IsNode":                  Type.IsNode,
		"IsArc":                   Type.IsArc,
		"IsRegulation":            Type.IsRegulation,
		"IsLabel":                 Type.IsLabel,
		"IsPort":                  Type.IsPort,
		"IsAuxUnit":               Type.IsAuxUnit,
		"CanCarryCloneMarker":     Type.CanCarryCloneMarker,
		"CanBeContainedInComplex": Type.CanBeContainedInComplex,
		"IsMultimer":              Type.IsMultimer,
		"CanBeMultimer":           Type.CanBeMultimer,
		"HasFixedPorts":           Type.HasFixedPorts,
		"IsRegulableProcess":      Type.IsRegulableProcess,
	}
	for name, p := range preds {
		if p(NoType) {
			t.Errorf("%s(NoType) = true, want false", name)
		}
	}
}

// classification pins every kind against the main predicates so a new kind
// cannot slip through unclassified.
func TestClassification(t *testing.T) {
	type class struct{ epn, pn, logic, ref, node, arc, reg, label, port bool }
	want := map[Type]class{
		SimpleChemical:             {epn: true, node: true},
		SimpleChemicalMultimer:     {epn: true, node: true},
		Macromolecule:              {epn: true, node: true},
		MacromoleculeMultimer:      {epn: true, node: true},
		NucleicAcidFeature:         {epn: true, node: true},
		NucleicAcidFeatureMultimer: {epn: true, node: true},
		Complex:                    {epn: true, node: true},
		ComplexMultimer:            {epn: true, node: true},
		UnspecifiedEntity:          {epn: true, node: true},
		PerturbingAgent:            {epn: true, node: true},
		SourceAndSink:              {epn: true, node: true},
		Process:                    {pn: true, node: true},
		OmittedProcess:             {pn: true, node: true},
		UncertainProcess:           {pn: true, node: true},
		Association:                {pn: true, node: true},
		Dissociation:               {pn: true, node: true},
		Phenotype:                  {node: true},
		And:                        {logic: true, node: true},
		Or:                         {logic: true, node: true},
		Not:                        {logic: true, node: true},
		Compartment:                {node: true},
		Submap:                     {ref: true, node: true},
		Tag:                        {ref: true, node: true},
		Consumption:                {arc: true},
		Production:                 {arc: true},
		Modulation:                 {arc: true, reg: true},
		Stimulation:                {arc: true, reg: true},
		Catalysis:                  {arc: true, reg: true},
		Inhibition:                 {arc: true, reg: true},
		NecessaryStimulation:       {arc: true, reg: true},
		LogicArc:                   {arc: true},
		EquivalenceArc:             {arc: true},
		NameLabel:                  {label: true},
		StateVariable:              {label: true},
		UnitOfInformation:          {label: true},
		CloneLabel:                 {label: true},
		Cardinality:                {label: true},
		CalloutLabel:               {label: true},
		InputAndOutput:             {port: true},
		Terminal:                   {port: true},
		Map:                        {},
		CloneMarker:                {},
		Multimer:                   {},
		Annotation:                 {},
	}
	if len(want) != len(Types()) {
		t.Fatalf("classification table has %d entries, Types() has %d", len(want), len(Types()))
	}
	for typ, w := range want {
		got := class{typ.IsEPN(), typ.IsPN(), typ.IsLogic(), typ.IsReference(), typ.IsNode(),
			typ.IsArc(), typ.IsRegulation(), typ.IsLabel(), typ.IsPort()}
		if got != w {
			t.Errorf("%v classification = %+v, want %+v", typ, got, w)
		}
	}
}

func TestComplexMembership(t *testing.T) {
	allowed := []Type{SimpleChemical, SimpleChemicalMultimer, Macromolecule, MacromoleculeMultimer,
		NucleicAcidFeature, NucleicAcidFeatureMultimer, Complex, ComplexMultimer, UnspecifiedEntity}
	ok := map[Type]bool{}
	for _, typ := range allowed {
		ok[typ] = true
	}
	for _, typ := range Types() {
		if got := typ.CanBeContainedInComplex(); got != ok[typ] {
			t.Errorf("%v.CanBeContainedInComplex() = %v, want %v", typ, got, ok[typ])
		}
	}
}

func TestCloneMarkerCapable(t *testing.T) {
	if SourceAndSink.CanCarryCloneMarker() {
		t.Error("SourceAndSink.CanCarryCloneMarker() = true, want false")
	}
	if !Phenotype.CanCarryCloneMarker() {
		t.Error("Phenotype.CanCarryCloneMarker() = false, want true")
	}
	if Process.CanCarryCloneMarker() {
		t.Error("Process.CanCarryCloneMarker() = true, want false")
	}
}

func TestFixedPorts(t *testing.T) {
	tests := []struct {
		typ  Type
		want bool
	}{
		{Process, true},
		{Dissociation, true},
		{Or, true},
		{Submap, true},
		{Tag, false},
		{Phenotype, false},
		{Macromolecule, false},
	}
	for _, tt := range tests {
		if got := tt.typ.HasFixedPorts(); got != tt.want {
			t.Errorf("%v.HasFixedPorts() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

func TestToggleMultimer(t *testing.T) {
	for _, typ := range Types() {
		toggled := typ.ToggleMultimer()
		switch {
		case typ.CanBeMultimer():
			if !toggled.IsMultimer() {
				t.Errorf("%v.ToggleMultimer() = %v, want a multimer", typ, toggled)
			}
		case typ.IsMultimer():
			if !toggled.CanBeMultimer() {
				t.Errorf("%v.ToggleMultimer() = %v, want a base type", typ, toggled)
			}
		default:
			if toggled != typ {
				t.Errorf("%v.ToggleMultimer() = %v, want unchanged", typ, toggled)
			}
		}
		if back := toggled.ToggleMultimer(); back != typ {
			t.Errorf("%v.ToggleMultimer() twice = %v", typ, back)
		}
	}
}

func TestRegulationTypesMatchPredicate(t *testing.T) {
	regs := RegulationTypes()
	if len(regs) != 5 {
		t.Fatalf("RegulationTypes() len = %d, want 5", len(regs))
	}
	for _, r := range regs {
		if !r.IsRegulation() {
			t.Errorf("%v.IsRegulation() = false", r)
		}
	}
	if len(ArcTypes()) != 9 {
		t.Errorf("ArcTypes() len = %d, want 9", len(ArcTypes()))
	}
}

func TestUnmarshalText(t *testing.T) {
	var typ Type
	if err := typ.UnmarshalText([]byte("CATALYSIS")); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if typ != Catalysis {
		t.Errorf("UnmarshalText() = %v, want %v", typ, Catalysis)
	}
	if err := typ.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("UnmarshalText(bogus) expected error")
	}
}
