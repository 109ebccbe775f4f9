package command

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// multimerUnit is the unit of information a new multimer receives.
const multimerUnit = "N:2"

// Cycler steps nodes through their permitted types. It remembers the node
// it cycled last: a new node jumps to its first permitted type other than
// its own, the same node again advances to the next type in order.
//
// A Cycler is not safe for concurrent use.
type Cycler struct {
	cm   *constraint.Manager
	last diagram.NodeID
}

// NewCycler returns a Cycler consulting cm.
func NewCycler(cm *constraint.Manager) *Cycler {
	return &Cycler{cm: cm}
}

// Next retypes node to its next permitted type and returns that type.
func (c *Cycler) Next(ctx context.Context, d *diagram.Diagram, node diagram.NodeID) (sbgn.Type, error) {
	var next sbgn.Type
	err := apply(ctx, d, "cycle", string(node), func(tx *diagram.Diagram) error {
		n, err := lookup(tx, node)
		if err != nil {
			return err
		}
		types := c.cm.NodeConversionTypes(tx, node)
		if node != c.last {
			i := slices.IndexFunc(types, func(t sbgn.Type) bool { return t != n.Type })
			if i < 0 {
				return errors.Refused("cycle", string(node), "no other type is permitted for %s", n.Type)
			}
			next = types[i]
		} else {
			i := slices.Index(types, n.Type)
			if i < 0 {
				return errors.Refused("cycle", string(node), "%s is not among the permitted types", n.Type)
			}
			next = types[(i+1)%len(types)]
		}
		return builder.AssignType(tx, node, next)
	})
	if err != nil {
		return sbgn.NoType, err
	}
	c.last = node
	return next, nil
}

// ConvertNode retypes node to t when t is one of its permitted conversion
// types.
func ConvertNode(ctx context.Context, m *constraint.Manager, d *diagram.Diagram, node diagram.NodeID, t sbgn.Type) error {
	return apply(ctx, d, "convert-node", string(node), func(tx *diagram.Diagram) error {
		n, err := lookup(tx, node)
		if err != nil {
			return err
		}
		if !slices.Contains(m.NodeConversionTypes(tx, node), t) {
			return errors.Refused("convert-node", string(node), "%s cannot become %s", n.Type, t)
		}
		return builder.AssignType(tx, node, t)
	})
}

// ToggleMultimer swaps each node that has a multimer form between its base
// and multimer type. A new multimer gains an "N:2" unit of information
// unless it already carries an "N:" unit; a node leaving multimer loses its
// "N:" units. Nodes without a multimer form are skipped; if all are, the
// edit is refused.
func ToggleMultimer(ctx context.Context, d *diagram.Diagram, nodes ...diagram.NodeID) error {
	return apply(ctx, d, "toggle-multimer", target(nodes), func(tx *diagram.Diagram) error {
		toggled := 0
		for _, id := range nodes {
			n, err := lookup(tx, id)
			if err != nil {
				return err
			}
			if !n.Type.CanBeMultimer() && !n.Type.IsMultimer() {
				continue
			}
			n.Type = n.Type.ToggleMultimer()
			toggled++
			if err := syncMultimerUnit(tx, n); err != nil {
				return err
			}
		}
		if toggled == 0 {
			return errors.Refused("toggle-multimer", target(nodes), "no node has a multimer form")
		}
		return nil
	})
}

func isMultimerUnit(l *diagram.Label) bool {
	return l.Type == sbgn.UnitOfInformation && strings.HasPrefix(l.Text, "N:")
}

func syncMultimerUnit(g diagram.Editor, n *diagram.Node) error {
	labels := g.NodeLabels(n.ID)
	if n.Type.IsMultimer() {
		if slices.ContainsFunc(labels, isMultimerUnit) {
			return nil
		}
		_, err := g.AddLabel(diagram.Label{Node: n.ID, Type: sbgn.UnitOfInformation, Text: multimerUnit})
		return err
	}
	for _, l := range labels {
		if isMultimerUnit(l) {
			if err := g.RemoveLabel(l.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToggleCloneMarker flips the clone flag of each node whose type can carry
// one. A node losing the flag also loses its clone labels.
func ToggleCloneMarker(ctx context.Context, d *diagram.Diagram, nodes ...diagram.NodeID) error {
	return apply(ctx, d, "toggle-clone", target(nodes), func(tx *diagram.Diagram) error {
		toggled := 0
		for _, id := range nodes {
			n, err := lookup(tx, id)
			if err != nil {
				return err
			}
			if !n.Type.CanCarryCloneMarker() {
				continue
			}
			n.Clone = !n.Clone
			toggled++
			if !n.Clone {
				if err := removeCloneLabels(tx, id); err != nil {
					return err
				}
			}
		}
		if toggled == 0 {
			return errors.Refused("toggle-clone", target(nodes), "no node can carry a clone marker")
		}
		return nil
	})
}

func removeCloneLabels(g diagram.Editor, id diagram.NodeID) error {
	for _, l := range g.NodeLabels(id) {
		if l.Type == sbgn.CloneLabel {
			if err := g.RemoveLabel(l.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToggleComplexLock flips the lock of each complex among nodes. Locked
// complexes move their members along with them.
func ToggleComplexLock(ctx context.Context, d *diagram.Diagram, nodes ...diagram.NodeID) error {
	return apply(ctx, d, "toggle-lock", target(nodes), func(tx *diagram.Diagram) error {
		toggled := 0
		for _, id := range nodes {
			n, err := lookup(tx, id)
			if err != nil {
				return err
			}
			if n.Type.IsComplex() {
				n.Locked = !n.Locked
				toggled++
			}
		}
		if toggled == 0 {
			return errors.Refused("toggle-lock", target(nodes), "no node is a complex")
		}
		return nil
	})
}

// AddAuxiliaryUnit attaches a state variable or unit of information with
// the given text to node and returns its ID.
func AddAuxiliaryUnit(ctx context.Context, m *constraint.Manager, d *diagram.Diagram, node diagram.NodeID, t sbgn.Type, text string) (diagram.LabelID, error) {
	if t != sbgn.StateVariable && t != sbgn.UnitOfInformation {
		return "", errors.New(errors.ErrCodeInvalidType, "%s is not an auxiliary unit", t)
	}
	var id diagram.LabelID
	err := apply(ctx, d, "add-aux-unit", string(node), func(tx *diagram.Diagram) error {
		n, err := lookup(tx, node)
		if err != nil {
			return err
		}
		if !m.IsNodeAcceptingLabel(tx, node, t) {
			return errors.Refused("add-aux-unit", string(node), "%s does not accept %s", n.Type, t)
		}
		l, err := tx.AddLabel(diagram.Label{Node: node, Type: t, Text: text})
		if err != nil {
			return err
		}
		id = l.ID
		return nil
	})
	return id, err
}

// Reparent moves node into group, or to the top level when group is
// empty. The group's type must admit the node.
func Reparent(ctx context.Context, m *constraint.Manager, d *diagram.Diagram, node, group diagram.NodeID) error {
	return apply(ctx, d, "reparent", string(node), func(tx *diagram.Diagram) error {
		n, err := lookup(tx, node)
		if err != nil {
			return err
		}
		if group != "" {
			g, err := lookup(tx, group)
			if err != nil {
				return err
			}
			if !m.IsValidChild(tx, g.Type, node) {
				return errors.Refused("reparent", string(node), "%s may not contain %s", g.Type, n.Type)
			}
		}
		if err := tx.SetParent(node, group); err != nil {
			if err == diagram.ErrContainmentCycle {
				return errors.Refused("reparent", string(node), "%s lies inside %s", group, node)
			}
			return err
		}
		return nil
	})
}
