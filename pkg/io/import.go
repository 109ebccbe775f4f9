package io

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// ReadJSON decodes a JSON snapshot from r into a new diagram.
//
// ReadJSON returns an error if:
//   - The JSON is malformed or has unknown fields (INVALID_FORMAT)
//   - The version is newer than this reader understands (UNSUPPORTED)
//   - An element ID is empty or repeated (INVALID_FORMAT)
//   - A type name does not fit its element kind (INVALID_TYPE)
//   - A parent, port owner, edge end or label owner is unknown (INVALID_FORMAT)
//   - The containment hierarchy has a cycle (INVALID_FORMAT)
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*diagram.Diagram, error) {
	var data snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode snapshot")
	}
	if data.Version > formatVersion {
		return nil, errors.New(errors.ErrCodeUnsupported, "snapshot version %d is newer than %d", data.Version, formatVersion)
	}

	d := diagram.New()
	for _, n := range data.Nodes {
		if err := checkElement("node", n.ID, n.Type, sbgn.Type.IsNode); err != nil {
			return nil, err
		}
		if !n.Orientation.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "node %s: unknown orientation %q", n.ID, n.Orientation)
		}
		_, err := d.AddNode(diagram.Node{
			ID:          diagram.NodeID(n.ID),
			Type:        n.Type,
			Orientation: n.Orientation,
			Clone:       n.Clone,
			Locked:      n.Locked,
			Layout:      n.Layout.geom(),
		})
		if err != nil {
			return nil, elementError("node", n.ID, err)
		}
	}
	for _, n := range data.Nodes {
		if n.Parent == "" {
			continue
		}
		if err := d.SetParent(diagram.NodeID(n.ID), diagram.NodeID(n.Parent)); err != nil {
			return nil, elementError("node", n.ID, fmt.Errorf("parent %s: %w", n.Parent, err))
		}
	}
	for _, p := range data.Ports {
		if err := checkElement("port", p.ID, p.Type, portType); err != nil {
			return nil, err
		}
		_, err := d.InsertPort(diagram.Port{
			ID:       diagram.PortID(p.ID),
			Owner:    diagram.NodeID(p.Owner),
			Type:     p.Type,
			Location: geom.Point{X: p.X, Y: p.Y},
		})
		if err != nil {
			return nil, elementError("port", p.ID, err)
		}
	}
	for _, e := range data.Edges {
		if err := checkElement("edge", e.ID, e.Type, sbgn.Type.IsArc); err != nil {
			return nil, err
		}
		_, err := d.AddEdge(diagram.Edge{
			ID:     diagram.EdgeID(e.ID),
			Type:   e.Type,
			Source: diagram.PortID(e.Source),
			Target: diagram.PortID(e.Target),
			Bends:  fromPoints(e.Bends),
		})
		if err != nil {
			return nil, elementError("edge", e.ID, err)
		}
	}
	for _, l := range data.Labels {
		if err := checkElement("label", l.ID, l.Type, sbgn.Type.IsLabel); err != nil {
			return nil, err
		}
		_, err := d.AddLabel(diagram.Label{
			ID:   diagram.LabelID(l.ID),
			Node: diagram.NodeID(l.Node),
			Edge: diagram.EdgeID(l.Edge),
			Type: l.Type,
			Text: l.Text,
		})
		if err != nil {
			return nil, elementError("label", l.ID, err)
		}
	}
	return d, nil
}

// ImportJSON reads the JSON snapshot at path. A missing file is reported
// with FILE_NOT_FOUND; everything else as [ReadJSON] reports it.
func ImportJSON(path string) (*diagram.Diagram, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "snapshot %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func portType(t sbgn.Type) bool { return t == sbgn.NoType || t.IsPort() }

func checkElement(kind, id string, t sbgn.Type, valid func(sbgn.Type) bool) error {
	if err := errors.ValidateID(id); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s %q", kind, id)
	}
	if !valid(t) {
		return errors.New(errors.ErrCodeInvalidType, "%s %s: %s is not a %s type", kind, id, t, kind)
	}
	return nil
}

func elementError(kind, id string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidFormat, err, "%s %s", kind, id)
}
