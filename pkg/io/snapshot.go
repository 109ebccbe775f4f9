package io

import (
	"github.com/matzehuels/sbgnedit/pkg/geom"
	"github.com/matzehuels/sbgnedit/pkg/sbgn"
)

// formatVersion is written into every snapshot. Readers accept zero for
// hand-written files.
const formatVersion = 1

type snapshot struct {
	Version int     `json:"version"`
	Nodes   []node  `json:"nodes"`
	Ports   []port  `json:"ports,omitempty"`
	Edges   []edge  `json:"edges,omitempty"`
	Labels  []label `json:"labels,omitempty"`
}

type rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type node struct {
	ID          string           `json:"id"`
	Type        sbgn.Type        `json:"type"`
	Orientation sbgn.Orientation `json:"orientation,omitempty"`
	Clone       bool             `json:"clone,omitempty"`
	Locked      bool             `json:"locked,omitempty"`
	Layout      rect             `json:"layout"`
	Parent      string           `json:"parent,omitempty"`
}

type port struct {
	ID    string    `json:"id"`
	Owner string    `json:"owner"`
	Type  sbgn.Type `json:"type,omitempty"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
}

type edge struct {
	ID     string    `json:"id"`
	Type   sbgn.Type `json:"type"`
	Source string    `json:"source"`
	Target string    `json:"target"`
	Bends  []point   `json:"bends,omitempty"`
}

type label struct {
	ID   string    `json:"id"`
	Node string    `json:"node,omitempty"`
	Edge string    `json:"edge,omitempty"`
	Type sbgn.Type `json:"type"`
	Text string    `json:"text,omitempty"`
}

func toRect(r geom.Rect) rect  { return rect{r.X, r.Y, r.W, r.H} }
func (r rect) geom() geom.Rect { return geom.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H} }

func toPoints(ps []geom.Point) []point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]point, len(ps))
	for i, p := range ps {
		out[i] = point{p.X, p.Y}
	}
	return out
}

func fromPoints(ps []point) []geom.Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = geom.Point{X: p.X, Y: p.Y}
	}
	return out
}
