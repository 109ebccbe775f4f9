package merge

import (
	"slices"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
)

// MergeQuery describes a drop to find a merge pair for.
type MergeQuery struct {
	// Moving holds the dragged nodes; MovingNodes lists them in the order
	// ties are broken by.
	Moving      diagram.Reader
	MovingNodes []diagram.NodeID
	// Offset is added to the moving nodes' layouts.
	Offset geom.Point

	// Stationary holds the nodes that may be dropped onto. It may be the
	// same diagram as Moving. A nil Candidates means every stationary node
	// that is not moving.
	Stationary diagram.Reader
	Candidates []diagram.NodeID

	// Focus is the drop location; the pair nearest to it wins.
	Focus geom.Point
}

// Pair is a moving node and the stationary node it merges into.
type Pair struct {
	Moving     diagram.NodeID
	Stationary diagram.NodeID
}

// FindMergePair picks the pair a drop should merge.
//
// Only candidates touching the moved bounds of all moving nodes are
// considered. A moving node pairs with a candidate when its moved center
// lies in the candidate's box, neither contains the other, and the merge is
// permitted. Of all such pairs the one whose stationary center is nearest
// to q.Focus wins; ties go to the earlier moving node, then to the earlier
// candidate.
func (m *Merger) FindMergePair(q MergeQuery) (Pair, bool) {
	if q.Moving == nil || q.Stationary == nil {
		return Pair{}, false
	}
	bounds, ok := diagram.Bounds(q.Moving, q.MovingNodes...)
	if !ok {
		return Pair{}, false
	}
	bounds = bounds.Translate(q.Offset)

	var candidates []*diagram.Node
	for _, c := range m.candidates(q) {
		if !slices.Contains(q.MovingNodes, c.ID) && bounds.Intersects(c.Layout) {
			candidates = append(candidates, c)
		}
	}

	var best Pair
	found := false
	bestDist := 0.0
	for _, a := range q.MovingNodes {
		an, ok := q.Moving.Node(a)
		if !ok {
			continue
		}
		at := an.Layout.Center().Add(q.Offset)
		for _, c := range candidates {
			if !c.Layout.Contains(at) || q.Moving.IsAncestor(a, c.ID) || q.Stationary.IsAncestor(c.ID, a) {
				continue
			}
			if !m.cm.IsMergeable(q.Moving, a, q.Stationary, c.ID) {
				continue
			}
			d := c.Layout.Center().DistSq(q.Focus)
			if !found || d < bestDist {
				best, bestDist, found = Pair{Moving: a, Stationary: c.ID}, d, true
			}
		}
	}
	return best, found
}

func (m *Merger) candidates(q MergeQuery) []*diagram.Node {
	if q.Candidates == nil {
		return q.Stationary.Nodes()
	}
	out := make([]*diagram.Node, 0, len(q.Candidates))
	for _, id := range q.Candidates {
		if n, ok := q.Stationary.Node(id); ok {
			out = append(out, n)
		}
	}
	return out
}
