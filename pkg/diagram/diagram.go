package diagram

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

var (
	// ErrDuplicateID is returned by the Add methods when an element of the
	// same kind already uses the ID.
	ErrDuplicateID = errors.New("duplicate element ID")

	// ErrUnknownNode is returned when a node ID does not resolve, including
	// a port owner or a parent that does not exist.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownPort is returned when a port ID does not resolve, including
	// an edge endpoint that does not exist.
	ErrUnknownPort = errors.New("unknown port")

	// ErrUnknownEdge is returned when an edge ID does not resolve.
	ErrUnknownEdge = errors.New("unknown edge")

	// ErrUnknownLabel is returned when a label ID does not resolve.
	ErrUnknownLabel = errors.New("unknown label")

	// ErrContainmentCycle is returned by [Diagram.SetParent] and
	// [Diagram.AddNode] when the requested parent is the node itself or one
	// of its descendants.
	ErrContainmentCycle = errors.New("containment cycle")

	// ErrLabelOwner is returned by [Diagram.AddLabel] when a label names
	// neither or both of a node and an edge as owner.
	ErrLabelOwner = errors.New("label must have exactly one owner")
)

// NodeID identifies a node.
type NodeID string

// PortID identifies a port.
type PortID string

// EdgeID identifies an edge.
type EdgeID string

// LabelID identifies a label.
type LabelID string

// Node is a typed box in the diagram.
//
// Type, Orientation, Clone and Locked are plain attributes and may be
// assigned directly through the pointer returned by [Reader.Node]. Layout
// and Parent must go through [Editor.SetLayout] and [Editor.SetParent] so
// that ports follow the box and containment stays acyclic.
type Node struct {
	ID          NodeID
	Type        sbgn.Type
	Orientation sbgn.Orientation
	Clone       bool // node stands for an entity drawn more than once
	Locked      bool // complex members move with the complex only
	Layout      geom.Rect
	Parent      NodeID // empty for top-level nodes
}

// Port is a connection point on a node. Location is absolute; it is used by
// geometric heuristics only and never for identity.
type Port struct {
	ID       PortID
	Owner    NodeID
	Type     sbgn.Type // NoType, InputAndOutput or Terminal
	Location geom.Point
}

// Edge is a directed arc between two ports.
type Edge struct {
	ID     EdgeID
	Type   sbgn.Type
	Source PortID
	Target PortID
	Bends  []geom.Point
}

// Label is a typed text owned by exactly one node or edge.
type Label struct {
	ID   LabelID
	Node NodeID
	Edge EdgeID
	Type sbgn.Type
	Text string
}

// Diagram is an in-memory SBGN diagram.
//
// The zero value is not usable; create instances with [New].
// Diagram is not safe for concurrent use without external synchronization.
type Diagram struct {
	nodes  map[NodeID]*Node
	ports  map[PortID]*Port
	edges  map[EdgeID]*Edge
	labels map[LabelID]*Label

	nodeOrder  []NodeID
	edgeOrder  []EdgeID
	nodePorts  map[NodeID][]PortID
	portEdges  map[PortID][]EdgeID
	nodeLabels map[NodeID][]LabelID
	edgeLabels map[EdgeID][]LabelID
	children   map[NodeID][]NodeID
}

// New creates an empty diagram.
func New() *Diagram {
	return &Diagram{
		nodes:      make(map[NodeID]*Node),
		ports:      make(map[PortID]*Port),
		edges:      make(map[EdgeID]*Edge),
		labels:     make(map[LabelID]*Label),
		nodePorts:  make(map[NodeID][]PortID),
		portEdges:  make(map[PortID][]EdgeID),
		nodeLabels: make(map[NodeID][]LabelID),
		edgeLabels: make(map[EdgeID][]LabelID),
		children:   make(map[NodeID][]NodeID),
	}
}

func newID() string { return uuid.NewString() }

// =============================================================================
// Nodes
// =============================================================================

// AddNode adds n to the diagram and returns the stored record. An empty ID
// is replaced by a fresh UUID. Returns ErrDuplicateID for a reused ID and
// ErrUnknownNode if n.Parent names a missing node.
func (d *Diagram) AddNode(n Node) (*Node, error) {
	if n.ID == "" {
		n.ID = NodeID(newID())
	}
	if _, ok := d.nodes[n.ID]; ok {
		return nil, ErrDuplicateID
	}
	if n.Parent != "" {
		if n.Parent == n.ID {
			return nil, ErrContainmentCycle
		}
		if _, ok := d.nodes[n.Parent]; !ok {
			return nil, ErrUnknownNode
		}
	}
	node := &n
	d.nodes[n.ID] = node
	d.nodeOrder = append(d.nodeOrder, n.ID)
	if n.Parent != "" {
		d.children[n.Parent] = append(d.children[n.Parent], n.ID)
	}
	return node, nil
}

// RemoveNode deletes a node together with its ports, their edges and its
// labels. Children of the node move up to the node's own parent.
func (d *Diagram) RemoveNode(id NodeID) error {
	n, ok := d.nodes[id]
	if !ok {
		return ErrUnknownNode
	}
	for _, pid := range slices.Clone(d.nodePorts[id]) {
		_ = d.RemovePort(pid)
	}
	for _, lid := range slices.Clone(d.nodeLabels[id]) {
		_ = d.RemoveLabel(lid)
	}
	for _, cid := range slices.Clone(d.children[id]) {
		_ = d.SetParent(cid, n.Parent)
	}
	if n.Parent != "" {
		d.children[n.Parent] = remove(d.children[n.Parent], id)
	}
	delete(d.children, id)
	delete(d.nodePorts, id)
	delete(d.nodeLabels, id)
	delete(d.nodes, id)
	d.nodeOrder = remove(d.nodeOrder, id)
	return nil
}

// SetParent moves n into parent, or to the top level when parent is empty.
// Returns ErrContainmentCycle if parent is n or one of its descendants.
func (d *Diagram) SetParent(n, parent NodeID) error {
	node, ok := d.nodes[n]
	if !ok {
		return ErrUnknownNode
	}
	if parent != "" {
		if _, ok := d.nodes[parent]; !ok {
			return ErrUnknownNode
		}
		if parent == n || d.IsAncestor(n, parent) {
			return ErrContainmentCycle
		}
	}
	if node.Parent == parent {
		return nil
	}
	if node.Parent != "" {
		d.children[node.Parent] = remove(d.children[node.Parent], n)
	}
	node.Parent = parent
	if parent != "" {
		d.children[parent] = append(d.children[parent], n)
	}
	return nil
}

// SetLayout replaces the box of n. Ports keep their position relative to the
// box, the way free port locations follow a resized node.
func (d *Diagram) SetLayout(n NodeID, r geom.Rect) error {
	node, ok := d.nodes[n]
	if !ok {
		return ErrUnknownNode
	}
	old := node.Layout
	for _, pid := range d.nodePorts[n] {
		p := d.ports[pid]
		p.Location = r.FromRatio(old.ToRatio(p.Location))
	}
	node.Layout = r
	return nil
}

// Translate moves the given nodes, and their ports, by delta. Descendants
// are not moved implicitly; pass them explicitly when the whole subtree
// should follow.
func (d *Diagram) Translate(delta geom.Point, ids ...NodeID) {
	for _, id := range ids {
		node, ok := d.nodes[id]
		if !ok {
			continue
		}
		node.Layout = node.Layout.Translate(delta)
		for _, pid := range d.nodePorts[id] {
			p := d.ports[pid]
			p.Location = p.Location.Add(delta)
		}
	}
}

// =============================================================================
// Ports
// =============================================================================

// AddPort adds a port of type typ to owner at loc.
func (d *Diagram) AddPort(owner NodeID, typ sbgn.Type, loc geom.Point) (*Port, error) {
	return d.addPort(Port{Owner: owner, Type: typ, Location: loc})
}

// InsertPort adds p as given, generating an ID only when p.ID is empty.
func (d *Diagram) InsertPort(p Port) (*Port, error) {
	return d.addPort(p)
}

func (d *Diagram) addPort(p Port) (*Port, error) {
	if _, ok := d.nodes[p.Owner]; !ok {
		return nil, ErrUnknownNode
	}
	if p.ID == "" {
		p.ID = PortID(newID())
	}
	if _, ok := d.ports[p.ID]; ok {
		return nil, ErrDuplicateID
	}
	port := &p
	d.ports[p.ID] = port
	d.nodePorts[p.Owner] = append(d.nodePorts[p.Owner], p.ID)
	return port, nil
}

// RemovePort deletes a port and every edge attached to it.
func (d *Diagram) RemovePort(id PortID) error {
	p, ok := d.ports[id]
	if !ok {
		return ErrUnknownPort
	}
	for _, eid := range slices.Clone(d.portEdges[id]) {
		_ = d.RemoveEdge(eid)
	}
	d.nodePorts[p.Owner] = remove(d.nodePorts[p.Owner], id)
	delete(d.portEdges, id)
	delete(d.ports, id)
	return nil
}

// SetPortLocation moves a port.
func (d *Diagram) SetPortLocation(id PortID, loc geom.Point) error {
	p, ok := d.ports[id]
	if !ok {
		return ErrUnknownPort
	}
	p.Location = loc
	return nil
}

// =============================================================================
// Edges
// =============================================================================

// AddEdge adds e between two existing ports. Bends are copied.
func (d *Diagram) AddEdge(e Edge) (*Edge, error) {
	if _, ok := d.ports[e.Source]; !ok {
		return nil, ErrUnknownPort
	}
	if _, ok := d.ports[e.Target]; !ok {
		return nil, ErrUnknownPort
	}
	if e.ID == "" {
		e.ID = EdgeID(newID())
	}
	if _, ok := d.edges[e.ID]; ok {
		return nil, ErrDuplicateID
	}
	e.Bends = slices.Clone(e.Bends)
	edge := &e
	d.edges[e.ID] = edge
	d.edgeOrder = append(d.edgeOrder, e.ID)
	d.portEdges[e.Source] = append(d.portEdges[e.Source], e.ID)
	if e.Target != e.Source {
		d.portEdges[e.Target] = append(d.portEdges[e.Target], e.ID)
	}
	return edge, nil
}

// RemoveEdge deletes an edge and its labels.
func (d *Diagram) RemoveEdge(id EdgeID) error {
	e, ok := d.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	for _, lid := range slices.Clone(d.edgeLabels[id]) {
		_ = d.RemoveLabel(lid)
	}
	d.portEdges[e.Source] = remove(d.portEdges[e.Source], id)
	d.portEdges[e.Target] = remove(d.portEdges[e.Target], id)
	delete(d.edgeLabels, id)
	delete(d.edges, id)
	d.edgeOrder = remove(d.edgeOrder, id)
	return nil
}

// SetEdgePorts re-points both ends of an edge. Passing the current port for
// an end leaves that end untouched.
func (d *Diagram) SetEdgePorts(id EdgeID, source, target PortID) error {
	e, ok := d.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	if _, ok := d.ports[source]; !ok {
		return ErrUnknownPort
	}
	if _, ok := d.ports[target]; !ok {
		return ErrUnknownPort
	}
	d.portEdges[e.Source] = remove(d.portEdges[e.Source], id)
	d.portEdges[e.Target] = remove(d.portEdges[e.Target], id)
	e.Source, e.Target = source, target
	d.portEdges[source] = append(d.portEdges[source], id)
	if target != source {
		d.portEdges[target] = append(d.portEdges[target], id)
	}
	return nil
}

// SetEdgeSource re-points the source end of an edge.
func (d *Diagram) SetEdgeSource(id EdgeID, source PortID) error {
	e, ok := d.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	return d.SetEdgePorts(id, source, e.Target)
}

// SetEdgeTarget re-points the target end of an edge.
func (d *Diagram) SetEdgeTarget(id EdgeID, target PortID) error {
	e, ok := d.edges[id]
	if !ok {
		return ErrUnknownEdge
	}
	return d.SetEdgePorts(id, e.Source, target)
}

// =============================================================================
// Labels
// =============================================================================

// AddLabel attaches l to its owner node or edge.
func (d *Diagram) AddLabel(l Label) (*Label, error) {
	if (l.Node == "") == (l.Edge == "") {
		return nil, ErrLabelOwner
	}
	if l.Node != "" {
		if _, ok := d.nodes[l.Node]; !ok {
			return nil, ErrUnknownNode
		}
	} else if _, ok := d.edges[l.Edge]; !ok {
		return nil, ErrUnknownEdge
	}
	if l.ID == "" {
		l.ID = LabelID(newID())
	}
	if _, ok := d.labels[l.ID]; ok {
		return nil, ErrDuplicateID
	}
	label := &l
	d.labels[l.ID] = label
	if l.Node != "" {
		d.nodeLabels[l.Node] = append(d.nodeLabels[l.Node], l.ID)
	} else {
		d.edgeLabels[l.Edge] = append(d.edgeLabels[l.Edge], l.ID)
	}
	return label, nil
}

// RemoveLabel detaches and deletes a label.
func (d *Diagram) RemoveLabel(id LabelID) error {
	l, ok := d.labels[id]
	if !ok {
		return ErrUnknownLabel
	}
	if l.Node != "" {
		d.nodeLabels[l.Node] = remove(d.nodeLabels[l.Node], id)
	} else {
		d.edgeLabels[l.Edge] = remove(d.edgeLabels[l.Edge], id)
	}
	delete(d.labels, id)
	return nil
}

// SetLabelText replaces the text of a label.
func (d *Diagram) SetLabelText(id LabelID, text string) error {
	l, ok := d.labels[id]
	if !ok {
		return ErrUnknownLabel
	}
	l.Text = text
	return nil
}

func remove[T comparable](s []T, v T) []T {
	if i := slices.Index(s, v); i >= 0 {
		return slices.Delete(s, i, i+1)
	}
	return s
}
