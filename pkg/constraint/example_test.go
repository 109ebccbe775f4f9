package constraint_test

import (
	"fmt"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func Example() {
	d := diagram.New()
	glc, _ := builder.NewNode(d, sbgn.SimpleChemical, geom.Point{X: 0}, "glucose")
	pn, _ := builder.NewNode(d, sbgn.Process, geom.Point{X: 150}, "")
	_, _ = builder.Connect(d, glc.ID, pn.ID, sbgn.Consumption)

	m := constraint.New(constraint.Strict)
	fmt.Println(m.PreferredTargetType(d, pn.ID, "", sbgn.Production))
	fmt.Println(m.NodeConversionTypes(d, glc.ID)[:3])
	// Output:
	// SIMPLE_CHEMICAL
	// [SIMPLE_CHEMICAL MACROMOLECULE NUCLEIC_ACID_FEATURE]
}

func ExampleManager_Audit() {
	d := diagram.New()
	mm, _ := builder.NewNode(d, sbgn.Macromolecule, geom.Point{}, "kinase")
	sc, _ := builder.NewNode(d, sbgn.SimpleChemical, geom.Point{X: 150}, "ATP")
	e, _ := d.AddEdge(diagram.Edge{ID: "e1", Type: sbgn.Inhibition,
		Source: mustCenter(d, mm.ID), Target: mustCenter(d, sc.ID)})

	m := constraint.New(constraint.Strict)
	for _, v := range m.Audit(d) {
		fmt.Println(v.Kind, v.Edge == e.ID)
	}
	fmt.Printf("%+v\n", constraint.Summary(m.Audit(d)))
	// Output:
	// illegal-edge true
	// {Info:0 Warning:0 Error:1}
}

func mustCenter(d *diagram.Diagram, n diagram.NodeID) diagram.PortID {
	p, err := builder.CenterPort(d, n)
	if err != nil {
		panic(err)
	}
	return p.ID
}
