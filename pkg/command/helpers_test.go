package command

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

func mustNode(t *testing.T, d *diagram.Diagram, typ sbgn.Type, name string) diagram.NodeID {
	t.Helper()
	n, err := builder.NewNode(d, typ, geom.Point{}, name)
	if err != nil {
		t.Fatalf("NewNode(%v) error: %v", typ, err)
	}
	return n.ID
}

func mustChild(t *testing.T, d *diagram.Diagram, typ sbgn.Type, name string, parent diagram.NodeID) diagram.NodeID {
	t.Helper()
	id := mustNode(t, d, typ, name)
	if err := d.SetParent(id, parent); err != nil {
		t.Fatalf("SetParent() error: %v", err)
	}
	return id
}

func mustLabel(t *testing.T, d *diagram.Diagram, l diagram.Label) diagram.LabelID {
	t.Helper()
	out, err := d.AddLabel(l)
	if err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}
	return out.ID
}

func typeOf(t *testing.T, d *diagram.Diagram, id diagram.NodeID) sbgn.Type {
	t.Helper()
	n, ok := d.Node(id)
	if !ok {
		t.Fatalf("node %s does not exist", id)
	}
	return n.Type
}

func isClone(t *testing.T, d *diagram.Diagram, id diagram.NodeID) bool {
	t.Helper()
	n, ok := d.Node(id)
	if !ok {
		t.Fatalf("node %s does not exist", id)
	}
	return n.Clone
}

func labelTexts(d *diagram.Diagram, id diagram.NodeID, typ sbgn.Type) []string {
	var out []string
	for _, l := range d.NodeLabels(id) {
		if l.Type == typ {
			out = append(out, l.Text)
		}
	}
	return out
}

type recordingHooks struct {
	mu      sync.Mutex
	applied []string
	refused []string
}

func (h *recordingHooks) OnEditApplied(_ context.Context, op, _ string, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.applied = append(h.applied, op)
}

func (h *recordingHooks) OnEditRefused(_ context.Context, op, _ string, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.refused = append(h.refused, op)
}

func (h *recordingHooks) OnMerge(context.Context, string, string, bool) {}
