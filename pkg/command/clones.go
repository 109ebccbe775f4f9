package command

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// AutoAssignCloneMarkers recomputes every clone flag in d and returns how
// many nodes end up marked.
//
// Nodes that can carry a clone marker and are not complex members are
// grouped by parent, type and signature; every node in a group of two or
// more is a clone. Nodes that lose the flag also lose their clone labels.
func AutoAssignCloneMarkers(ctx context.Context, d *diagram.Diagram) (int, error) {
	marked := 0
	err := apply(ctx, d, "auto-clones", "", func(tx *diagram.Diagram) error {
		marked = 0
		var wasClone []diagram.NodeID
		for _, n := range tx.Nodes() {
			if n.Clone {
				wasClone = append(wasClone, n.ID)
			}
			n.Clone = false
		}

		type key struct {
			parent    diagram.NodeID
			typ       sbgn.Type
			signature string
		}
		groups := make(map[key][]*diagram.Node)
		var order []key
		for _, n := range tx.Nodes() {
			if !n.Type.CanCarryCloneMarker() || diagram.ParentType(tx, n.ID).IsComplex() {
				continue
			}
			k := key{n.Parent, n.Type, signature(tx, n)}
			if _, ok := groups[k]; !ok {
				order = append(order, k)
			}
			groups[k] = append(groups[k], n)
		}
		for _, k := range order {
			if len(groups[k]) < 2 {
				continue
			}
			for _, n := range groups[k] {
				n.Clone = true
				marked++
			}
		}

		for _, id := range wasClone {
			if n, ok := tx.Node(id); ok && !n.Clone {
				if err := removeCloneLabels(tx, id); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return marked, err
}

// signature identifies what a node depicts: its name, its state variables
// and its units of information other than the default multimer unit. A
// complex adds the signatures of its members.
func signature(g diagram.Reader, n *diagram.Node) string {
	var name string
	if l, ok := diagram.NameLabel(g, n.ID); ok {
		name = l.Text
	}
	var aux []string
	for _, l := range g.NodeLabels(n.ID) {
		if l.Text == "" {
			continue
		}
		if l.Type == sbgn.StateVariable || (l.Type == sbgn.UnitOfInformation && l.Text != multimerUnit) {
			aux = append(aux, l.Text)
		}
	}
	slices.Sort(aux)
	sig := name + "|" + strings.Join(aux, "|")
	if n.Type.IsComplex() {
		var members []string
		for _, c := range g.Children(n.ID) {
			members = append(members, signature(g, c))
		}
		slices.Sort(members)
		sig += "[" + strings.Join(members, ",") + "]"
	}
	return sig
}
