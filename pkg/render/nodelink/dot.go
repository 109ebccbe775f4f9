package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the type and auxiliary units to node labels.
	// When false, only the name (or the type, for unnamed nodes) is shown.
	Detailed bool
}

var nodeShapes = map[sbgn.Type]string{
	sbgn.SimpleChemical:             "circle",
	sbgn.SimpleChemicalMultimer:     "circle",
	sbgn.Macromolecule:              "box",
	sbgn.MacromoleculeMultimer:      "box",
	sbgn.NucleicAcidFeature:         "box",
	sbgn.NucleicAcidFeatureMultimer: "box",
	sbgn.UnspecifiedEntity:          "ellipse",
	sbgn.PerturbingAgent:            "invhouse",
	sbgn.SourceAndSink:              "circle",
	sbgn.Phenotype:                  "hexagon",
	sbgn.Tag:                        "cds",
	sbgn.Submap:                     "folder",
	sbgn.Process:                    "square",
	sbgn.OmittedProcess:             "square",
	sbgn.UncertainProcess:           "square",
	sbgn.Association:                "circle",
	sbgn.Dissociation:               "doublecircle",
	sbgn.And:                        "circle",
	sbgn.Or:                         "circle",
	sbgn.Not:                        "circle",
}

var arrowHeads = map[sbgn.Type]string{
	sbgn.Consumption:          "none",
	sbgn.Production:           "normal",
	sbgn.Modulation:           "odiamond",
	sbgn.Stimulation:          "empty",
	sbgn.Catalysis:            "odot",
	sbgn.Inhibition:           "tee",
	sbgn.NecessaryStimulation: "emptytee",
	sbgn.LogicArc:             "none",
	sbgn.EquivalenceArc:       "none",
}

// fixedText is drawn inside nodes whose symbol carries a glyph rather than a name.
var fixedText = map[sbgn.Type]string{
	sbgn.SourceAndSink:    "∅",
	sbgn.OmittedProcess:   "\\\\",
	sbgn.UncertainProcess: "?",
	sbgn.And:              "AND",
	sbgn.Or:               "OR",
	sbgn.Not:              "NOT",
}

func isCluster(t sbgn.Type) bool { return t == sbgn.Compartment || t.IsComplex() }

// ToDOT converts a diagram to Graphviz DOT format for node-link visualization.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(d *diagram.Diagram, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  compound=true;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range d.Nodes() {
		if n.Parent == "" {
			writeNode(&buf, d, n, opts, "  ")
		}
	}

	buf.WriteString("\n")
	for _, e := range d.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", d.SourceNode(e), d.TargetNode(e), strings.Join(edgeAttrs(d, e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, d *diagram.Diagram, n *diagram.Node, opts Options, indent string) {
	label := fmtLabel(d, n, opts.Detailed)
	if !isCluster(n.Type) {
		fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(fmtAttrs(n, label), ", "))
		return
	}
	fmt.Fprintf(buf, "%ssubgraph %q {\n", indent, clusterName(n.ID))
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, label)
	if n.Type == sbgn.Compartment {
		fmt.Fprintf(buf, "%s  style=\"rounded,bold\";\n", indent)
	} else {
		fmt.Fprintf(buf, "%s  style=\"rounded,filled\";\n", indent)
		fmt.Fprintf(buf, "%s  fillcolor=%q;\n", indent, clusterFill(n))
	}
	fmt.Fprintf(buf, "%s  %q [shape=point, style=invis];\n", indent, n.ID)
	for _, c := range d.Children(n.ID) {
		writeNode(buf, d, c, opts, indent+"  ")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}

func clusterName(id diagram.NodeID) string { return "cluster_" + string(id) }

func clusterFill(n *diagram.Node) string {
	if n.Clone {
		return "lightgrey"
	}
	return "whitesmoke"
}

func fmtLabel(d *diagram.Diagram, n *diagram.Node, detailed bool) string {
	text, ok := fixedText[n.Type]
	if !ok {
		if l, named := diagram.NameLabel(d, n.ID); named {
			text = l.Text
		}
	}
	if text == "" {
		text = strings.ToLower(n.Type.String())
	}
	if !detailed {
		return text
	}

	parts := []string{text, n.Type.String()}
	for _, l := range d.NodeLabels(n.ID) {
		switch l.Type {
		case sbgn.StateVariable:
			parts = append(parts, "["+l.Text+"]")
		case sbgn.UnitOfInformation:
			parts = append(parts, "("+l.Text+")")
		}
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *diagram.Node, label string) []string {
	shape, ok := nodeShapes[n.Type]
	if !ok {
		shape = "box"
	}
	attrs := []string{fmt.Sprintf("label=%q", label), "shape=" + shape}
	if n.Type.IsPN() || n.Type.IsLogic() || n.Type == sbgn.SourceAndSink {
		attrs = append(attrs, "fixedsize=true", "width=0.4", "fontsize=10")
	}
	if n.Type.IsMacromolecule() || n.Type.IsNucleicAcidFeature() {
		attrs = append(attrs, "style=\"rounded,filled\"")
	}
	if n.Type.IsMultimer() {
		attrs = append(attrs, "peripheries=2")
	}
	if n.Clone {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

func edgeAttrs(d *diagram.Diagram, e *diagram.Edge) []string {
	head, ok := arrowHeads[e.Type]
	if !ok {
		head = "normal"
	}
	attrs := []string{"arrowhead=" + head}
	if e.Type == sbgn.EquivalenceArc {
		attrs = append(attrs, "style=dashed")
	}
	for _, l := range d.EdgeLabels(e.ID) {
		if l.Type == sbgn.Cardinality {
			attrs = append(attrs, fmt.Sprintf("label=%q", l.Text))
		}
	}
	if src, ok := d.Node(d.SourceNode(e)); ok && isCluster(src.Type) {
		attrs = append(attrs, fmt.Sprintf("ltail=%q", clusterName(src.ID)))
	}
	if tgt, ok := d.Node(d.TargetNode(e)); ok && isCluster(tgt.Type) {
		attrs = append(attrs, fmt.Sprintf("lhead=%q", clusterName(tgt.ID)))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
