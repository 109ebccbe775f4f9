// Package constraint decides which SBGN edits are legal.
//
// A [Manager] answers every question the editor asks before it changes a
// diagram: which edge types may start at a port, whether a proposed edge is
// legal, which types a node may be converted to, whether a node may live in
// a group, and whether two nodes may be merged. Decisions never mutate the
// graph and never fail; a false or empty answer means the edit is refused.
//
// # Strictness
//
// A Manager carries one setting, its [Level]. [Strict] enforces the SBGN
// process-description rules. [None] is the forgiving mode used for bulk
// import: nearly every question is answered permissively, except that
// compartments never nest and an edge may never join a node to one of its
// own containers.
//
//	m := constraint.New(constraint.Strict)
//	for _, h := range m.EdgeCreationHints(d, node.ID, port.ID) {
//		fmt.Println(h)
//	}
//
// Managers are plain values; two managers never share state.
//
// # Auditing
//
// [Manager.Audit] runs the same rules over an existing diagram and reports
// every element that would have been refused, which is how imported files
// are checked.
package constraint
