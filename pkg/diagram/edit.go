package diagram

import (
	"maps"
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Editor is the mutable view of a diagram that rewriting code consumes.
type Editor interface {
	Reader

	AddNode(n Node) (*Node, error)
	RemoveNode(id NodeID) error
	SetParent(n, parent NodeID) error
	SetLayout(n NodeID, r geom.Rect) error
	Translate(delta geom.Point, ids ...NodeID)

	AddPort(owner NodeID, typ sbgn.Type, loc geom.Point) (*Port, error)
	RemovePort(id PortID) error
	SetPortLocation(id PortID, loc geom.Point) error

	AddEdge(e Edge) (*Edge, error)
	RemoveEdge(id EdgeID) error
	SetEdgePorts(id EdgeID, source, target PortID) error
	SetEdgeSource(id EdgeID, source PortID) error
	SetEdgeTarget(id EdgeID, target PortID) error

	AddLabel(l Label) (*Label, error)
	RemoveLabel(id LabelID) error
	SetLabelText(id LabelID, text string) error
}

var _ Editor = (*Diagram)(nil)

// Clone returns a deep copy of d. Element pointers of the copy are distinct
// from those of d; IDs are shared.
func (d *Diagram) Clone() *Diagram {
	c := New()
	for id, n := range d.nodes {
		cp := *n
		c.nodes[id] = &cp
	}
	for id, p := range d.ports {
		cp := *p
		c.ports[id] = &cp
	}
	for id, e := range d.edges {
		cp := *e
		cp.Bends = slices.Clone(e.Bends)
		c.edges[id] = &cp
	}
	for id, l := range d.labels {
		cp := *l
		c.labels[id] = &cp
	}
	c.nodeOrder = slices.Clone(d.nodeOrder)
	c.edgeOrder = slices.Clone(d.edgeOrder)
	c.nodePorts = cloneIndex(d.nodePorts)
	c.portEdges = cloneIndex(d.portEdges)
	c.nodeLabels = cloneIndex(d.nodeLabels)
	c.edgeLabels = cloneIndex(d.edgeLabels)
	c.children = cloneIndex(d.children)
	return c
}

func cloneIndex[K comparable, V any](m map[K][]V) map[K][]V {
	out := make(map[K][]V, len(m))
	for k, v := range maps.All(m) {
		out[k] = slices.Clone(v)
	}
	return out
}

// Transact applies fn to a copy of d and, if fn returns nil, replaces the
// contents of d with the copy. When fn fails d is left exactly as it was and
// the error is returned unchanged.
//
// Pointers to elements obtained from d before the call are stale after a
// successful transaction; look elements up again by ID.
func (d *Diagram) Transact(fn func(tx *Diagram) error) error {
	tx := d.Clone()
	if err := fn(tx); err != nil {
		return err
	}
	*d = *tx
	return nil
}
