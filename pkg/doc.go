// Package pkg provides the core libraries for sbgnedit, a rule engine for
// SBGN Process Description diagrams.
//
// # Overview
//
// SBGN (Systems Biology Graphical Notation) fixes which glyphs exist and how
// they may connect: a consumption runs from an entity into a process, a
// complex holds only entities, compartments never nest. sbgnedit keeps a
// diagram consistent with those rules while it is edited. The pkg directory
// is organized into four areas:
//
//  1. Model - the SBGN vocabulary, geometry and the diagram graph
//  2. Rules - legality queries, hints, conversions and audits
//  3. Edits - commands and drag-and-drop merges that keep the rules
//  4. Plumbing - snapshots, rendering, settings, errors and hooks
//
// # Architecture
//
// The typical data flow through sbgnedit:
//
//	JSON snapshot
//	     ↓
//	[io] package (decode into a diagram)
//	     ↓
//	[constraint] package (what is legal here?)
//	     ↓
//	[command] / [merge] packages (rule-aware edits, one transaction each)
//	     ↓
//	[io] snapshot, or [render/nodelink] DOT/SVG/PDF/PNG
//
// # Quick Start
//
// Build a reaction, ask for hints and retype a node:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/sbgnedit/pkg/builder"
//	    "github.com/matzehuels/sbgnedit/pkg/command"
//	    "github.com/matzehuels/sbgnedit/pkg/constraint"
//	    "github.com/matzehuels/sbgnedit/pkg/diagram"
//	    "github.com/matzehuels/sbgnedit/pkg/geom"
//	    "github.com/matzehuels/sbgnedit/pkg/sbgn"
//	)
//
//	d := diagram.New()
//	glc, _ := builder.NewNode(d, sbgn.SimpleChemical, geom.Point{}, "glucose")
//	pn, _ := builder.NewNode(d, sbgn.Process, geom.Point{X: 120}, "")
//	builder.Connect(d, glc.ID, pn.ID, sbgn.Consumption)
//
//	m := constraint.New(constraint.Strict)
//	types := m.NodeConversionTypes(d, glc.ID) // SIMPLE_CHEMICAL, MACROMOLECULE, ...
//	err := command.ConvertNode(context.Background(), m, d, glc.ID, types[1])
//
// # Main Packages
//
// ## Model
//
// [sbgn] - Glyph, arc, port and label types with their classification
// predicates, plus node orientations.
//
// [geom] - Points, sizes, rectangles and the sector tests used to decide
// which side of a node an edge enters.
//
// [diagram] - The diagram graph: nodes, ports, edges and labels addressed by
// ID, with containment and transactional edits.
//
// [builder] - Node construction: default sizes, fixed I/O ports, name labels
// and edge endpoints.
//
// ## Rules
//
// [constraint] - The rule engine. Edge legality, creation and conversion
// hints, preferred endpoint types, node conversions, mergeability,
// acceptance of labels, ports and children, and whole-diagram audits.
//
// ## Edits
//
// [command] - Rule-aware edits: retyping nodes and edges, multimer, clone and
// lock toggles, auxiliary units, reparenting and automatic clone markers.
//
// [merge] - Drag-and-drop merging: pair finding, feature adoption and edge
// transfer with port rerouting.
//
// ## Plumbing
//
// [io] - Versioned JSON snapshots of a diagram.
//
// [render/nodelink] - Graphviz rendering with compartments and complexes as
// clusters. [render] converts SVG to PDF and PNG.
//
// [config] - TOML settings file.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hooks for edit, merge and audit events.
//
// [buildinfo] - Version metadata set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/constraint/...   # Specific package
//	go test -short ./pkg/...       # Skip property-based and Graphviz tests
//	go test -run Example ./pkg/... # Examples only
//
// [sbgn]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/sbgn
// [geom]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/geom
// [diagram]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/diagram
// [builder]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/builder
// [constraint]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/constraint
// [command]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/command
// [merge]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/merge
// [io]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/render/nodelink
// [config]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sbgnedit/pkg/buildinfo
package pkg
