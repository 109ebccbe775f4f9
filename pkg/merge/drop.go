package merge

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/observability"
)

// DropOptions tune a degree-0 drop, where the stationary node adopts the
// dropped node's type.
type DropOptions struct {
	// Size overrides the new size of the stationary node. Nil keeps the
	// dropped node's size.
	Size *geom.Size
	// LabelText, when set, renames the stationary node.
	LabelText *string
}

// Drop moves q.MovingNodes of d by q.Offset and merges the pair found by
// [Merger.FindMergePair] on the moved diagram. q.Moving and q.Stationary
// are ignored; both are d.
//
// If the dropped node has no edges, the stationary node takes on its
// features and the dropped node is removed. Otherwise the dropped node's
// edges move to the stationary node, the moving nodes shift so the two
// line up, and the dropped node is removed.
//
// When no pair qualifies d is left unchanged and Drop reports false. The
// rewrite runs in one transaction, so an error also leaves d unchanged.
func (m *Merger) Drop(ctx context.Context, d *diagram.Diagram, q MergeQuery, opts DropOptions) (Pair, bool, error) {
	q.Moving, q.Stationary = d, d
	pair, ok := m.FindMergePair(q)
	if !ok {
		return Pair{}, false, nil
	}

	start := time.Now()
	transfer := d.Degree(pair.Moving) > 0
	err := d.Transact(func(tx *diagram.Diagram) error {
		moving := withDescendants(tx, q.MovingNodes)
		tx.Translate(q.Offset, moving...)

		if !transfer {
			a, _ := tx.Node(pair.Moving)
			size := a.Layout.Size()
			if opts.Size != nil {
				size = *opts.Size
			}
			if err := m.MergeNodeFeatures(tx, pair.Stationary, pair.Moving, &size, opts.LabelText); err != nil {
				return err
			}
			return tx.RemoveNode(pair.Moving)
		}

		delta := EdgeTransferDelta(tx, pair.Moving, pair.Stationary)
		if err := m.TransferEdgesToNode(tx, pair.Moving, pair.Stationary); err != nil {
			return err
		}
		tx.Translate(delta, moving...)
		return RemoveTransferSource(tx, pair.Moving)
	})
	if err != nil {
		return Pair{}, false, err
	}
	observability.Edit().OnMerge(ctx, string(pair.Moving), string(pair.Stationary), transfer)
	observability.Edit().OnEditApplied(ctx, "drop", string(pair.Stationary), time.Since(start))
	return pair, true, nil
}

// withDescendants returns ids followed by every node they contain, once
// each.
func withDescendants(g diagram.Reader, ids []diagram.NodeID) []diagram.NodeID {
	out := slices.Clone(ids)
	for _, id := range ids {
		for _, c := range diagram.Descendants(g, id) {
			if !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
	}
	return out
}
