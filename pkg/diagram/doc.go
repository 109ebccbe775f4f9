// Package diagram provides the attributed, nested graph that SBGN diagrams
// live in.
//
// # Overview
//
// A [Diagram] is an arena of four element kinds, each a plain record with a
// typed payload:
//
//   - [Node]: a typed box with an optional parent (containment)
//   - [Port]: a typed connection point owned by exactly one node
//   - [Edge]: a typed arc from a source port to a target port
//   - [Label]: a typed text attached to a node or an edge
//
// Kinds come from [sbgn.Type], so no element needs runtime downcasting to
// learn what it is.
//
// # Reading and Editing
//
// Consumers that only decide things depend on [Reader]; consumers that
// rewrite the graph depend on [Editor]. *Diagram implements both. All
// enumeration methods return elements in insertion order, which keeps the
// constraint and merge heuristics deterministic.
//
//	d := diagram.New()
//	glc, _ := d.AddNode(diagram.Node{Type: sbgn.SimpleChemical, Layout: geom.Rect{W: 60, H: 60}})
//	p, _ := d.AddPort(glc.ID, sbgn.NoType, glc.Layout.Center())
//
// # Containment
//
// Nodes form a forest through [Node.Parent]. [Diagram.SetParent] refuses to
// create a cycle, and [Reader.IsAncestor] answers containment queries.
//
// # Transactions
//
// [Diagram.Transact] runs a mutation against a private copy and installs the
// copy only when the mutation returns nil, so multi-step rewrites either
// apply completely or not at all.
//
// # Identifiers
//
// Elements added with an empty ID receive a random UUID. Explicit IDs are
// kept, which is how snapshots round-trip.
package diagram
