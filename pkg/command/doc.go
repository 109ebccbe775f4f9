// Package command implements the editing commands of sbgnedit.
//
// Every command runs as one transaction on a [diagram.Diagram]: either the
// whole edit applies or the diagram is left untouched. Commands that change
// what a node or edge is ask a [constraint.Manager] first and return an
// EDIT_REFUSED error from [errors.Refused] when the rules forbid the edit.
// Unknown IDs yield NODE_NOT_FOUND or EDGE_NOT_FOUND.
//
// Commands report applied and refused edits to the hooks registered in
// [observability]; they never log.
//
// # Commands
//
//   - [Cycler.Next]: step a node through its permitted types
//   - [ConvertNode], [ConvertEdge]: retype an element
//   - [ToggleMultimer], [ToggleCloneMarker], [ToggleComplexLock]: flip a
//     node attribute
//   - [AutoAssignCloneMarkers]: mark every entity drawn more than once
//   - [AddAuxiliaryUnit]: add a state variable or unit of information
//   - [Reparent]: move a node into or out of a container
//   - [SetStrict]: switch the rule set
package command
