package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
)

// WriteJSON encodes d as an indented JSON snapshot and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *diagram.Diagram, w io.Writer) error {
	out := snapshot{Version: formatVersion, Nodes: make([]node, 0, d.NodeCount())}

	for _, n := range d.Nodes() {
		out.Nodes = append(out.Nodes, node{
			ID:          string(n.ID),
			Type:        n.Type,
			Orientation: n.Orientation,
			Clone:       n.Clone,
			Locked:      n.Locked,
			Layout:      toRect(n.Layout),
			Parent:      string(n.Parent),
		})
		for _, p := range d.Ports(n.ID) {
			out.Ports = append(out.Ports, port{
				ID:    string(p.ID),
				Owner: string(p.Owner),
				Type:  p.Type,
				X:     p.Location.X,
				Y:     p.Location.Y,
			})
		}
		for _, l := range d.NodeLabels(n.ID) {
			out.Labels = append(out.Labels, label{ID: string(l.ID), Node: string(l.Node), Type: l.Type, Text: l.Text})
		}
	}
	for _, e := range d.Edges() {
		out.Edges = append(out.Edges, edge{
			ID:     string(e.ID),
			Type:   e.Type,
			Source: string(e.Source),
			Target: string(e.Target),
			Bends:  toPoints(e.Bends),
		})
		for _, l := range d.EdgeLabels(e.ID) {
			out.Labels = append(out.Labels, label{ID: string(l.ID), Edge: string(l.Edge), Type: l.Type, Text: l.Text})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes d to a JSON snapshot file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *diagram.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(d, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
