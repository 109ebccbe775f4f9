package merge

import (
	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/constraint"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Merger performs drop merges under the rules of a constraint manager.
type Merger struct {
	cm *constraint.Manager
}

// New returns a Merger consulting cm. A nil cm means a strict manager.
func New(cm *constraint.Manager) *Merger {
	if cm == nil {
		cm = constraint.New(constraint.Strict)
	}
	return &Merger{cm: cm}
}

// TransferEdgesToNode moves every edge of source onto ports of target.
//
// Each occupied port of source is matched to one port of target:
//   - a typed port goes to the mergeable target port closest to its edges'
//     sector points, on average
//   - an untyped port on source's center goes to target's center port
//   - any other untyped port gets a new port at the same relative position
//
// When no target port qualifies a new center port is created. Edges are
// re-pointed on the end that touched the source port.
func (m *Merger) TransferEdgesToNode(g diagram.Editor, source, target diagram.NodeID) error {
	if _, ok := g.Node(source); !ok {
		return diagram.ErrUnknownNode
	}
	if _, ok := g.Node(target); !ok {
		return diagram.ErrUnknownNode
	}
	targetPorts := g.Ports(target)
	for _, ap := range g.Ports(source) {
		edges := g.EdgesAtPort(ap.ID)
		if len(edges) == 0 {
			continue
		}
		hit, err := m.matchPort(g, ap, source, target, targetPorts)
		if err != nil {
			return err
		}
		for _, e := range edges {
			src, tgt := e.Source, e.Target
			if src == ap.ID {
				src = hit.ID
			}
			if tgt == ap.ID {
				tgt = hit.ID
			}
			if err := g.SetEdgePorts(e.ID, src, tgt); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Merger) matchPort(g diagram.Editor, ap *diagram.Port, source, target diagram.NodeID, targetPorts []*diagram.Port) (*diagram.Port, error) {
	tn, _ := g.Node(target)
	if ap.Type != sbgn.NoType {
		var candidates []*diagram.Port
		for _, tp := range targetPorts {
			if m.cm.IsMergeablePort(g, ap.ID, g, tp.ID) {
				candidates = append(candidates, tp)
			}
		}
		if p, ok := closestPort(g, ap, candidates); ok {
			return p, nil
		}
		return g.AddPort(target, sbgn.NoType, tn.Layout.Center())
	}
	if builder.IsCenterPort(g, ap) {
		return builder.CenterPort(g, target)
	}
	sn, _ := g.Node(source)
	return g.AddPort(target, sbgn.NoType, tn.Layout.FromRatio(sn.Layout.ToRatio(ap.Location)))
}

// closestPort returns the port minimising the mean distance to the sector
// points of ap's edges. The first port wins ties.
func closestPort(g diagram.Reader, ap *diagram.Port, ports []*diagram.Port) (*diagram.Port, bool) {
	edges := g.EdgesAtPort(ap.ID)
	if len(ports) == 0 || len(edges) == 0 {
		return nil, false
	}
	var best *diagram.Port
	bestAvg := 0.0
	for _, p := range ports {
		sum := 0.0
		for _, e := range edges {
			sum += SectorPoint(g, e, e.Source != ap.ID).Dist(p.Location)
		}
		avg := sum / float64(len(edges))
		if best == nil || avg < bestAvg {
			best, bestAvg = p, avg
		}
	}
	return best, true
}

// RemoveTransferSource deletes a node whose edges were transferred away,
// together with its members when it is a complex.
func RemoveTransferSource(g diagram.Editor, node diagram.NodeID) error {
	n, ok := g.Node(node)
	if !ok {
		return diagram.ErrUnknownNode
	}
	if n.Type.IsComplex() {
		if err := removeDescendants(g, node); err != nil {
			return err
		}
	}
	return g.RemoveNode(node)
}

func removeDescendants(g diagram.Editor, node diagram.NodeID) error {
	for _, id := range diagram.Descendants(g, node) {
		if err := g.RemoveNode(id); err != nil {
			return err
		}
	}
	return nil
}
