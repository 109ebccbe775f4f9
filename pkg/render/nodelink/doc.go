// Package nodelink renders SBGN diagrams as Graphviz node-link views.
//
// # Overview
//
// The view is a debugging aid, not an SBGN-compliant drawing. Graphviz
// lays the graph out from scratch, so stored node positions are ignored.
// What the view shows faithfully is structure: which nodes exist, their
// types, how they nest and how they are wired.
//
// # Usage
//
//	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Mapping
//
//   - Compartments and complexes become clusters holding their members.
//     Edges at a container attach to an invisible anchor inside the
//     cluster and are clipped at its border.
//   - Entity and process types map to distinct Graphviz shapes; multimers
//     get a second outline and clones a grey fill.
//   - Arc types map to arrowheads: production is a filled arrow,
//     catalysis an open dot, inhibition a bar, and so on.
//   - Cardinality labels are drawn as edge labels.
//
// # Options
//
// With [Options].Detailed set, node labels also list the element type and
// the node's state variables and units of information.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion goes through the parent render package.
package nodelink
