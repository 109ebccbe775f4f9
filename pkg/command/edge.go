package command

import (
	"context"
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// ConvertEdge retypes edge according to h, which must be one of the edge's
// conversion hints. A reversed hint also swaps the edge's ends and bends.
// A cardinality the retyped edge no longer accepts is removed.
func ConvertEdge(ctx context.Context, m *constraint.Manager, d *diagram.Diagram, edge diagram.EdgeID, h constraint.Hint) error {
	return apply(ctx, d, "convert-edge", string(edge), func(tx *diagram.Diagram) error {
		e, ok := tx.Edge(edge)
		if !ok {
			return edgeNotFound(edge)
		}
		if !h.Type.IsArc() {
			return errors.New(errors.ErrCodeInvalidType, "%s is not an arc type", h.Type)
		}
		if !slices.Contains(m.EdgeConversionHints(tx, edge), h) {
			return errors.Refused("convert-edge", string(edge), "%s cannot become %s", e.Type, h)
		}
		if h.Reversed {
			if err := tx.SetEdgePorts(edge, e.Target, e.Source); err != nil {
				return err
			}
			slices.Reverse(e.Bends)
		}
		e.Type = h.Type
		for _, l := range tx.EdgeLabels(edge) {
			if l.Type == sbgn.Cardinality && !m.IsEdgeKeepingLabel(tx, l.ID) {
				if err := tx.RemoveLabel(l.ID); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
