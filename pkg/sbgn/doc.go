// Package sbgn defines the closed set of SBGN process-description kinds and
// the classification predicates every other package builds on.
//
// # Types
//
// [Type] enumerates node kinds (entity pool nodes, process nodes, logic
// gates, containers and references), arc kinds, port kinds and label kinds
// in a single enum. The zero value [NoType] is the bottom type: it is what an
// element whose kind cannot be determined carries, and every predicate
// rejects it.
//
// # Predicates
//
// The predicates are total functions over [Type]. Each one is a switch that
// lists exactly the kinds it accepts:
//
//	sbgn.Macromolecule.IsEPN()        // true
//	sbgn.Association.IsPN()           // true
//	sbgn.Phenotype.IsPN()             // false
//	sbgn.Catalysis.IsRegulation()     // true
//	sbgn.Tag.IsReference()            // true
//
// Adding a kind means revisiting every predicate in types.go; the tests in
// types_test.go pin the expected classification of every kind so that an
// omission fails loudly.
//
// # Names
//
// [Type.String] returns the upper-snake SBGN name ("SIMPLE_CHEMICAL",
// "NECESSARY_STIMULATION", ...) and [ParseType] reverses it, which is the
// representation used by snapshot files and the CLI.
package sbgn
