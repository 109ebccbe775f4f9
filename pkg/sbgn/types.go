package sbgn

import (
	"strings"

	"github.com/matzehuels/sbgnedit/pkg/errors"
)

// Type is the kind of a diagram element. Nodes, edges, ports and labels all
// draw their kind from this one enum.
type Type int

const (
	// NoType is the bottom type. Untyped ports carry it, and so does any
	// element whose kind is unknown.
	NoType Type = iota

	// Entity pool nodes.
	SimpleChemical
	SimpleChemicalMultimer
	Macromolecule
	MacromoleculeMultimer
	NucleicAcidFeature
	NucleicAcidFeatureMultimer
	Complex
	ComplexMultimer
	UnspecifiedEntity
	PerturbingAgent
	SourceAndSink

	// Process nodes and phenotype.
	Process
	OmittedProcess
	UncertainProcess
	Association
	Dissociation
	Phenotype

	// Logic gates.
	And
	Or
	Not

	// Containers and references.
	Compartment
	Submap
	Tag

	// Arcs.
	Consumption
	Production
	Modulation
	Stimulation
	Catalysis
	Inhibition
	NecessaryStimulation
	LogicArc
	EquivalenceArc

	// Labels.
	NameLabel
	StateVariable
	UnitOfInformation
	CloneLabel
	Cardinality
	CalloutLabel

	// Ports.
	InputAndOutput
	Terminal

	// Miscellaneous.
	Map
	CloneMarker
	Multimer
	Annotation

	numTypes
)

var typeNames = [numTypes]string{
	NoType:                     "NO_TYPE",
	SimpleChemical:             "SIMPLE_CHEMICAL",
	SimpleChemicalMultimer:     "SIMPLE_CHEMICAL_MULTIMER",
	Macromolecule:              "MACROMOLECULE",
	MacromoleculeMultimer:      "MACROMOLECULE_MULTIMER",
	NucleicAcidFeature:         "NUCLEIC_ACID_FEATURE",
	NucleicAcidFeatureMultimer: "NUCLEIC_ACID_FEATURE_MULTIMER",
	Complex:                    "COMPLEX",
	ComplexMultimer:            "COMPLEX_MULTIMER",
	UnspecifiedEntity:          "UNSPECIFIED_ENTITY",
	PerturbingAgent:            "PERTURBING_AGENT",
	SourceAndSink:              "SOURCE_AND_SINK",
	Process:                    "PROCESS",
	OmittedProcess:             "OMITTED_PROCESS",
	UncertainProcess:           "UNCERTAIN_PROCESS",
	Association:                "ASSOCIATION",
	Dissociation:               "DISSOCIATION",
	Phenotype:                  "PHENOTYPE",
	And:                        "AND",
	Or:                         "OR",
	Not:                        "NOT",
	Compartment:                "COMPARTMENT",
	Submap:                     "SUBMAP",
	Tag:                        "TAG",
	Consumption:                "CONSUMPTION",
	Production:                 "PRODUCTION",
	Modulation:                 "MODULATION",
	Stimulation:                "STIMULATION",
	Catalysis:                  "CATALYSIS",
	Inhibition:                 "INHIBITION",
	NecessaryStimulation:       "NECESSARY_STIMULATION",
	LogicArc:                   "LOGIC_ARC",
	EquivalenceArc:             "EQUIVALENCE_ARC",
	NameLabel:                  "NAME_LABEL",
	StateVariable:              "STATE_VARIABLE",
	UnitOfInformation:          "UNIT_OF_INFORMATION",
	CloneLabel:                 "CLONE_LABEL",
	Cardinality:                "CARDINALITY",
	CalloutLabel:               "CALLOUT_LABEL",
	InputAndOutput:             "INPUT_AND_OUTPUT",
	Terminal:                   "TERMINAL",
	Map:                        "MAP",
	CloneMarker:                "CLONE_MARKER",
	Multimer:                   "MULTIMER",
	Annotation:                 "ANNOTATION",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, numTypes)
	for t := NoType; t < numTypes; t++ {
		m[typeNames[t]] = t
	}
	return m
}()

// String returns the upper-snake SBGN name of t. Values outside the enum
// render as "NO_TYPE".
func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return typeNames[NoType]
	}
	return typeNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseType resolves a type name. Matching ignores case and accepts '-' in
// place of '_'. An empty string yields NoType without error; an unknown name
// yields NoType and an INVALID_TYPE error.
func ParseType(s string) (Type, error) {
	if s == "" {
		return NoType, nil
	}
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
	if t, ok := typesByName[key]; ok {
		return t, nil
	}
	return NoType, errors.New(errors.ErrCodeInvalidType, "unknown SBGN type %q", s)
}

// Types returns every type except NoType in declaration order.
func Types() []Type {
	out := make([]Type, 0, numTypes-1)
	for t := NoType + 1; t < numTypes; t++ {
		out = append(out, t)
	}
	return out
}

// NodeTypes returns the types for which IsNode holds, in declaration order.
func NodeTypes() []Type { return filter(Type.IsNode) }

// ArcTypes returns the nine arc types in declaration order.
func ArcTypes() []Type { return filter(Type.IsArc) }

// RegulationTypes returns the regulation arcs in hint order: catalysis,
// stimulation, inhibition, necessary stimulation, modulation.
func RegulationTypes() []Type {
	return []Type{Catalysis, Stimulation, Inhibition, NecessaryStimulation, Modulation}
}

func filter(keep func(Type) bool) []Type {
	var out []Type
	for t := NoType + 1; t < numTypes; t++ {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// =============================================================================
// Classification
// =============================================================================

// IsSimpleChemical reports whether t is a simple chemical or its multimer.
func (t Type) IsSimpleChemical() bool {
	switch t {
	case SimpleChemical, SimpleChemicalMultimer:
		return true
	}
	return false
}

// IsMacromolecule reports whether t is a macromolecule or its multimer.
func (t Type) IsMacromolecule() bool {
	switch t {
	case Macromolecule, MacromoleculeMultimer:
		return true
	}
	return false
}

// IsNucleicAcidFeature reports whether t is a nucleic acid feature or its
// multimer.
func (t Type) IsNucleicAcidFeature() bool {
	switch t {
	case NucleicAcidFeature, NucleicAcidFeatureMultimer:
		return true
	}
	return false
}

// IsComplex reports whether t is a complex or a complex multimer.
func (t Type) IsComplex() bool {
	switch t {
	case Complex, ComplexMultimer:
		return true
	}
	return false
}

// IsEPN reports whether t is an entity pool node.
func (t Type) IsEPN() bool {
	switch t {
	case SimpleChemical, SimpleChemicalMultimer,
		Macromolecule, MacromoleculeMultimer,
		NucleicAcidFeature, NucleicAcidFeatureMultimer,
		Complex, ComplexMultimer,
		UnspecifiedEntity, PerturbingAgent, SourceAndSink:
		return true
	}
	return false
}

// IsPN reports whether t is a process node. Phenotype is not a process node.
func (t Type) IsPN() bool {
	switch t {
	case Process, OmittedProcess, UncertainProcess, Association, Dissociation:
		return true
	}
	return false
}

// IsLogic reports whether t is a logic gate.
func (t Type) IsLogic() bool {
	switch t {
	case And, Or, Not:
		return true
	}
	return false
}

// IsReference reports whether t points elsewhere: a submap or a tag.
func (t Type) IsReference() bool {
	switch t {
	case Submap, Tag:
		return true
	}
	return false
}

// IsNode reports whether t is a node kind a diagram node can be converted to.
func (t Type) IsNode() bool {
	switch t {
	case Phenotype, Compartment, Submap, Tag:
		return true
	}
	return t.IsEPN() || t.IsPN() || t.IsLogic()
}

// IsArc reports whether t is an edge kind.
func (t Type) IsArc() bool {
	switch t {
	case Consumption, Production, Modulation, Stimulation, Catalysis,
		Inhibition, NecessaryStimulation, LogicArc, EquivalenceArc:
		return true
	}
	return false
}

// IsRegulation reports whether t is one of the five regulation arcs.
func (t Type) IsRegulation() bool {
	switch t {
	case Modulation, Stimulation, Catalysis, Inhibition, NecessaryStimulation:
		return true
	}
	return false
}

// IsLabel reports whether t is a label kind.
func (t Type) IsLabel() bool {
	switch t {
	case NameLabel, StateVariable, UnitOfInformation, CloneLabel, Cardinality, CalloutLabel:
		return true
	}
	return false
}

// IsPort reports whether t is a typed port kind.
func (t Type) IsPort() bool {
	switch t {
	case InputAndOutput, Terminal:
		return true
	}
	return false
}

// IsAuxUnit reports whether t is a state variable or unit of information.
func (t Type) IsAuxUnit() bool {
	switch t {
	case StateVariable, UnitOfInformation:
		return true
	}
	return false
}

// CanCarryCloneMarker reports whether nodes of type t may be marked as clones.
func (t Type) CanCarryCloneMarker() bool {
	switch t {
	case SimpleChemical, SimpleChemicalMultimer,
		Macromolecule, MacromoleculeMultimer,
		NucleicAcidFeature, NucleicAcidFeatureMultimer,
		Complex, ComplexMultimer,
		UnspecifiedEntity, PerturbingAgent, Phenotype:
		return true
	}
	return false
}

// CanBeContainedInComplex reports whether nodes of type t may be members of
// a complex.
func (t Type) CanBeContainedInComplex() bool {
	switch t {
	case UnspecifiedEntity:
		return true
	}
	return t.IsComplex() || t.IsNucleicAcidFeature() || t.IsSimpleChemical() || t.IsMacromolecule()
}

// IsMultimer reports whether t is a multimer variant.
func (t Type) IsMultimer() bool {
	switch t {
	case SimpleChemicalMultimer, MacromoleculeMultimer, NucleicAcidFeatureMultimer, ComplexMultimer:
		return true
	}
	return false
}

// CanBeMultimer reports whether t has a multimer variant.
func (t Type) CanBeMultimer() bool {
	switch t {
	case SimpleChemical, Macromolecule, NucleicAcidFeature, Complex:
		return true
	}
	return false
}

// HasFixedPorts reports whether nodes of type t carry a port layout mandated
// by their type rather than free-form ports.
func (t Type) HasFixedPorts() bool {
	return t.IsPN() || t.IsLogic() || t == Submap
}

// IsRegulableProcess reports whether t may be the target of a regulation arc.
func (t Type) IsRegulableProcess() bool {
	switch t {
	case Process, OmittedProcess, Phenotype, UncertainProcess:
		return true
	}
	return false
}

// ToggleMultimer maps a base entity type to its multimer and a multimer back
// to its base type. Every other type maps to itself.
func (t Type) ToggleMultimer() Type {
	switch t {
	case SimpleChemical:
		return SimpleChemicalMultimer
	case SimpleChemicalMultimer:
		return SimpleChemical
	case Macromolecule:
		return MacromoleculeMultimer
	case MacromoleculeMultimer:
		return Macromolecule
	case NucleicAcidFeature:
		return NucleicAcidFeatureMultimer
	case NucleicAcidFeatureMultimer:
		return NucleicAcidFeature
	case Complex:
		return ComplexMultimer
	case ComplexMultimer:
		return Complex
	}
	return t
}
