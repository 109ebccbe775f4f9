package diagram

import (
	"errors"
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// fixture builds glucose -> process -> g6p with the process carrying two
// I/O ports.
func fixture(t *testing.T) (*Diagram, map[string]NodeID, map[string]PortID) {
	t.Helper()
	d := New()
	nodes := map[string]NodeID{}
	ports := map[string]PortID{}
	add := func(name string, typ sbgn.Type, r geom.Rect) {
		n, err := d.AddNode(Node{ID: NodeID(name), Type: typ, Layout: r})
		if err != nil {
			t.Fatalf("AddNode(%s) error: %v", name, err)
		}
		nodes[name] = n.ID
	}
	port := func(name, owner string, typ sbgn.Type, loc geom.Point) {
		p, err := d.AddPort(nodes[owner], typ, loc)
		if err != nil {
			t.Fatalf("AddPort(%s) error: %v", name, err)
		}
		ports[name] = p.ID
	}
	add("glc", sbgn.SimpleChemical, geom.Rect{X: 0, Y: 0, W: 60, H: 60})
	add("pn", sbgn.Process, geom.Rect{X: 100, Y: 20, W: 40, H: 20})
	add("g6p", sbgn.SimpleChemical, geom.Rect{X: 200, Y: 0, W: 60, H: 60})
	port("glc", "glc", sbgn.NoType, geom.Point{X: 30, Y: 30})
	port("in", "pn", sbgn.InputAndOutput, geom.Point{X: 100, Y: 30})
	port("out", "pn", sbgn.InputAndOutput, geom.Point{X: 140, Y: 30})
	port("g6p", "g6p", sbgn.NoType, geom.Point{X: 230, Y: 30})
	if _, err := d.AddEdge(Edge{ID: "c", Type: sbgn.Consumption, Source: ports["glc"], Target: ports["in"]}); err != nil {
		t.Fatalf("AddEdge(c) error: %v", err)
	}
	if _, err := d.AddEdge(Edge{ID: "p", Type: sbgn.Production, Source: ports["out"], Target: ports["g6p"]}); err != nil {
		t.Fatalf("AddEdge(p) error: %v", err)
	}
	return d, nodes, ports
}

func TestAddNodeGeneratesID(t *testing.T) {
	d := New()
	n, err := d.AddNode(Node{Type: sbgn.Macromolecule})
	if err != nil {
		t.Fatalf("AddNode() error: %v", err)
	}
	if n.ID == "" {
		t.Error("AddNode() left ID empty")
	}
	if _, err := d.AddNode(Node{ID: n.ID}); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("AddNode(duplicate) error = %v, want %v", err, ErrDuplicateID)
	}
}

func TestAddNodeUnknownParent(t *testing.T) {
	d := New()
	if _, err := d.AddNode(Node{ID: "a", Parent: "missing"}); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("AddNode() error = %v, want %v", err, ErrUnknownNode)
	}
	if _, err := d.AddNode(Node{ID: "a", Parent: "a"}); !errors.Is(err, ErrContainmentCycle) {
		t.Errorf("AddNode(self parent) error = %v, want %v", err, ErrContainmentCycle)
	}
}

func TestDegrees(t *testing.T) {
	d, n, p := fixture(t)

	tests := []struct {
		name     string
		got      int
		expected int
	}{
		{"Degree(pn)", d.Degree(n["pn"]), 2},
		{"InDegree(pn)", d.InDegree(n["pn"]), 1},
		{"OutDegree(pn)", d.OutDegree(n["pn"]), 1},
		{"Degree(glc)", d.Degree(n["glc"]), 1},
		{"PortInDegree(in)", d.PortInDegree(p["in"]), 1},
		{"PortOutDegree(in)", d.PortOutDegree(p["in"]), 0},
		{"PortOutDegree(out)", d.PortOutDegree(p["out"]), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.expected)
		}
	}

	e, _ := d.Edge("c")
	if d.SourceNode(e) != n["glc"] || d.TargetNode(e) != n["pn"] {
		t.Errorf("edge c endpoints = %s -> %s", d.SourceNode(e), d.TargetNode(e))
	}
}

func TestRemovePortRemovesEdges(t *testing.T) {
	d, n, p := fixture(t)
	if err := d.RemovePort(p["in"]); err != nil {
		t.Fatalf("RemovePort() error: %v", err)
	}
	if _, ok := d.Edge("c"); ok {
		t.Error("edge c survived removal of its target port")
	}
	if d.Degree(n["glc"]) != 0 {
		t.Errorf("Degree(glc) = %d, want 0", d.Degree(n["glc"]))
	}
	if got := len(d.Ports(n["pn"])); got != 1 {
		t.Errorf("len(Ports(pn)) = %d, want 1", got)
	}
}

func TestSetEdgePorts(t *testing.T) {
	d, n, p := fixture(t)
	if err := d.SetEdgeTarget("c", p["out"]); err != nil {
		t.Fatalf("SetEdgeTarget() error: %v", err)
	}
	if d.PortInDegree(p["in"]) != 0 || d.PortInDegree(p["out"]) != 1 {
		t.Errorf("port in-degrees = %d/%d, want 0/1", d.PortInDegree(p["in"]), d.PortInDegree(p["out"]))
	}
	if d.Degree(n["pn"]) != 2 {
		t.Errorf("Degree(pn) = %d, want 2", d.Degree(n["pn"]))
	}
	if err := d.SetEdgeSource("c", "missing"); !errors.Is(err, ErrUnknownPort) {
		t.Errorf("SetEdgeSource(missing) error = %v, want %v", err, ErrUnknownPort)
	}
}

func TestContainment(t *testing.T) {
	d := New()
	for _, id := range []NodeID{"comp", "cx", "m"} {
		if _, err := d.AddNode(Node{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	if err := d.SetParent("cx", "comp"); err != nil {
		t.Fatalf("SetParent(cx, comp) error: %v", err)
	}
	if err := d.SetParent("m", "cx"); err != nil {
		t.Fatalf("SetParent(m, cx) error: %v", err)
	}
	if !d.IsAncestor("comp", "m") {
		t.Error("IsAncestor(comp, m) = false, want true")
	}
	if d.IsAncestor("m", "comp") {
		t.Error("IsAncestor(m, comp) = true, want false")
	}
	if d.IsAncestor("m", "m") {
		t.Error("IsAncestor(m, m) = true, want false")
	}
	if err := d.SetParent("comp", "m"); !errors.Is(err, ErrContainmentCycle) {
		t.Errorf("SetParent(comp, m) error = %v, want %v", err, ErrContainmentCycle)
	}

	got := Descendants(d, "comp")
	if len(got) != 2 || got[0] != "m" || got[1] != "cx" {
		t.Errorf("Descendants(comp) = %v, want [m cx]", got)
	}

	if err := d.RemoveNode("cx"); err != nil {
		t.Fatalf("RemoveNode(cx) error: %v", err)
	}
	m, _ := d.Node("m")
	if m.Parent != "comp" {
		t.Errorf("m.Parent after removing cx = %q, want comp", m.Parent)
	}
}

func TestSetLayoutMovesPorts(t *testing.T) {
	d, n, p := fixture(t)
	if err := d.SetLayout(n["pn"], geom.Rect{X: 0, Y: 100, W: 80, H: 40}); err != nil {
		t.Fatalf("SetLayout() error: %v", err)
	}
	in, _ := d.Port(p["in"])
	out, _ := d.Port(p["out"])
	if in.Location != (geom.Point{X: 0, Y: 120}) {
		t.Errorf("in.Location = %v, want {0 120}", in.Location)
	}
	if out.Location != (geom.Point{X: 80, Y: 120}) {
		t.Errorf("out.Location = %v, want {80 120}", out.Location)
	}
}

func TestTranslate(t *testing.T) {
	d, n, p := fixture(t)
	d.Translate(geom.Point{X: 10, Y: -5}, n["glc"], "missing")
	glc, _ := d.Node(n["glc"])
	if glc.Layout.TopLeft() != (geom.Point{X: 10, Y: -5}) {
		t.Errorf("glc top-left = %v, want {10 -5}", glc.Layout.TopLeft())
	}
	port, _ := d.Port(p["glc"])
	if port.Location != (geom.Point{X: 40, Y: 25}) {
		t.Errorf("glc port = %v, want {40 25}", port.Location)
	}
}

func TestLabels(t *testing.T) {
	d, n, _ := fixture(t)
	if _, err := d.AddLabel(Label{Type: sbgn.NameLabel, Text: "x"}); !errors.Is(err, ErrLabelOwner) {
		t.Errorf("AddLabel(no owner) error = %v, want %v", err, ErrLabelOwner)
	}
	l, err := d.AddLabel(Label{Node: n["glc"], Type: sbgn.NameLabel, Text: "glucose"})
	if err != nil {
		t.Fatalf("AddLabel() error: %v", err)
	}
	if got, ok := NameLabel(d, n["glc"]); !ok || got.Text != "glucose" {
		t.Errorf("NameLabel(glc) = %v, %v", got, ok)
	}
	if _, err := d.AddLabel(Label{Edge: "c", Type: sbgn.Cardinality, Text: "2"}); err != nil {
		t.Fatalf("AddLabel(edge) error: %v", err)
	}
	if err := d.RemoveEdge("c"); err != nil {
		t.Fatal(err)
	}
	if len(d.EdgeLabels("c")) != 0 {
		t.Error("edge labels survived edge removal")
	}
	if err := d.SetLabelText(l.ID, "Glc"); err != nil {
		t.Fatal(err)
	}
	if got, _ := d.Label(l.ID); got.Text != "Glc" {
		t.Errorf("label text = %q, want Glc", got.Text)
	}
}

func TestTransactRollsBack(t *testing.T) {
	d, n, _ := fixture(t)
	boom := errors.New("boom")
	err := d.Transact(func(tx *Diagram) error {
		if err := tx.RemoveNode(n["pn"]); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transact() error = %v, want %v", err, boom)
	}
	if _, ok := d.Node(n["pn"]); !ok {
		t.Error("failed transaction removed pn")
	}
	if d.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", d.EdgeCount())
	}
}

func TestTransactCommits(t *testing.T) {
	d, n, _ := fixture(t)
	err := d.Transact(func(tx *Diagram) error {
		return tx.RemoveNode(n["pn"])
	})
	if err != nil {
		t.Fatalf("Transact() error: %v", err)
	}
	if _, ok := d.Node(n["pn"]); ok {
		t.Error("committed transaction kept pn")
	}
	if d.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", d.EdgeCount())
	}
}

func TestCloneIsDeep(t *testing.T) {
	d, n, _ := fixture(t)
	c := d.Clone()
	cn, _ := c.Node(n["glc"])
	cn.Type = sbgn.Macromolecule
	orig, _ := d.Node(n["glc"])
	if orig.Type != sbgn.SimpleChemical {
		t.Errorf("mutating clone changed original type to %v", orig.Type)
	}
}

func TestBoundsAndParentType(t *testing.T) {
	d, n, _ := fixture(t)
	b, ok := Bounds(d, n["glc"], n["g6p"], "missing")
	if !ok || b != (geom.Rect{X: 0, Y: 0, W: 260, H: 60}) {
		t.Errorf("Bounds() = %+v, %v", b, ok)
	}
	if _, ok := Bounds(d, "missing"); ok {
		t.Error("Bounds(missing) ok = true, want false")
	}
	if got := ParentType(d, n["glc"]); got != sbgn.NoType {
		t.Errorf("ParentType(glc) = %v, want NoType", got)
	}
}
