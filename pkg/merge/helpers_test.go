package merge

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/sbgnedit/pkg/builder"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

func mustNode(t *testing.T, d *diagram.Diagram, typ sbgn.Type, x, y float64) diagram.NodeID {
	t.Helper()
	n, err := builder.NewNode(d, typ, geom.Point{X: x, Y: y}, "")
	if err != nil {
		t.Fatalf("NewNode(%v) error: %v", typ, err)
	}
	return n.ID
}

func mustNamed(t *testing.T, d *diagram.Diagram, typ sbgn.Type, x, y float64, name string) diagram.NodeID {
	t.Helper()
	n, err := builder.NewNode(d, typ, geom.Point{X: x, Y: y}, name)
	if err != nil {
		t.Fatalf("NewNode(%v) error: %v", typ, err)
	}
	return n.ID
}

// mustOriented adds a node with fixed ports laid out for orientation o.
func mustOriented(t *testing.T, d *diagram.Diagram, typ sbgn.Type, o sbgn.Orientation, x, y float64) diagram.NodeID {
	t.Helper()
	n, err := d.AddNode(diagram.Node{
		Type:        typ,
		Orientation: o,
		Layout:      geom.FromCenter(geom.Point{X: x, Y: y}, builder.DefaultSize(typ, o)),
	})
	if err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if _, err := builder.AddPorts(d, n.ID); err != nil {
		t.Fatalf("AddPorts() error: %v", err)
	}
	return n.ID
}

func mustConnect(t *testing.T, d *diagram.Diagram, src, tgt diagram.NodeID, typ sbgn.Type) *diagram.Edge {
	t.Helper()
	e, err := builder.Connect(d, src, tgt, typ)
	if err != nil {
		t.Fatalf("Connect(%v) error: %v", typ, err)
	}
	return e
}

func portAt(t *testing.T, d *diagram.Diagram, id diagram.PortID) *diagram.Port {
	t.Helper()
	p, ok := d.Port(id)
	if !ok {
		t.Fatalf("port %s does not exist", id)
	}
	return p
}

func layout(t *testing.T, d *diagram.Diagram, id diagram.NodeID) geom.Rect {
	t.Helper()
	n, ok := d.Node(id)
	if !ok {
		t.Fatalf("node %s does not exist", id)
	}
	return n.Layout
}

type mergeEvent struct {
	moving, stationary string
	transfer           bool
}

type recordingHooks struct {
	mu     sync.Mutex
	merges []mergeEvent
}

func (h *recordingHooks) OnEditApplied(context.Context, string, string, time.Duration) {}
func (h *recordingHooks) OnEditRefused(context.Context, string, string, error)         {}

func (h *recordingHooks) OnMerge(_ context.Context, moving, stationary string, transfer bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.merges = append(h.merges, mergeEvent{moving, stationary, transfer})
}
