// Package merge rewrites SBGN diagrams when one node is dropped onto
// another.
//
// # Overview
//
// A drop either hands the dropped node's edges over to the node it landed
// on, or, when the dropped node has no edges, makes the stationary node
// take on the dropped node's type. [Merger] implements both rewrites and
// the search for the pair of nodes a drop should merge:
//
//   - [Merger.FindMergePair]: pick the moving and stationary node to merge
//   - [Merger.TransferEdgesToNode]: re-point every edge of one node to another
//   - [Merger.MergeNodeFeatures]: retype a node after a template and repair
//     its ports and labels
//   - [Merger.Drop]: the whole drop, applied atomically
//
// # Heuristics
//
// Several decisions are geometric and approximate on purpose. An edge's
// sector point is its first bend outside the node's box, or the far
// endpoint when no bend qualifies. A node's unique edge side is the one
// outer sector all its sector points fall in, if there is one; it anchors
// resized boxes and aligns transferred nodes. Edges moving to a node with
// fixed ports go to the port on the side their sector point lies on.
//
// # Preconditions
//
// The rewrites assume the caller has confirmed the merge with
// [constraint.Manager.IsMergeable]. They do not re-validate, and they
// should run inside [diagram.Diagram.Transact] so a failed step leaves the
// diagram untouched. [Merger.Drop] does both.
package merge
