package command

import (
	"context"
	"time"

	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/observability"
)

// apply runs fn as one transaction on d and reports the outcome to the
// edit hooks under op and target.
func apply(ctx context.Context, d *diagram.Diagram, op, target string, fn func(tx *diagram.Diagram) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := d.Transact(fn)
	switch {
	case err == nil:
		observability.Edit().OnEditApplied(ctx, op, target, time.Since(start))
	case errors.Is(err, errors.ErrCodeEditRefused):
		observability.Edit().OnEditRefused(ctx, op, target, err)
	}
	return err
}

func nodeNotFound(id diagram.NodeID) error {
	return errors.New(errors.ErrCodeNodeNotFound, "node %s not found", id)
}

func edgeNotFound(id diagram.EdgeID) error {
	return errors.New(errors.ErrCodeEdgeNotFound, "edge %s not found", id)
}

func lookup(g diagram.Reader, id diagram.NodeID) (*diagram.Node, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, nodeNotFound(id)
	}
	return n, nil
}

// target names the elements an edit applies to.
func target(ids []diagram.NodeID) string {
	switch len(ids) {
	case 0:
		return ""
	case 1:
		return string(ids[0])
	}
	return string(ids[0]) + ",..."
}

// SetStrict switches m between the strict rule set and no rules.
func SetStrict(m *constraint.Manager, strict bool) {
	if strict {
		m.Level = constraint.Strict
		return
	}
	m.Level = constraint.None
}
