// Package render turns diagrams into pictures for inspection.
//
// # Overview
//
// The editing engine never draws anything; this package exists so that a
// snapshot can be looked at from the command line. It provides:
//
//   - Node-link debug views (in the [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). A missing tool is reported
// as UNSUPPORTED so callers can fall back to SVG or DOT.
//
//	dot := nodelink.ToDOT(d, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/sbgnedit/pkg/render/nodelink
package render
