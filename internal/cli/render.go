package cli

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnedit/pkg/config"
	"github.com/matzehuels/sbgnedit/pkg/diagram"
	"github.com/matzehuels/sbgnedit/pkg/errors"
	"github.com/matzehuels/sbgnedit/pkg/render"
	"github.com/matzehuels/sbgnedit/pkg/render/nodelink"
)

// pngScale renders PNGs at twice the SVG resolution.
const pngScale = 2.0

var validFormats = []string{config.FormatDOT, config.FormatSVG, config.FormatPDF, config.FormatPNG}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string // output file path, "-" for stdout
	format   string // dot, svg, pdf or png
	detailed bool   // show types, state variables and units of information
}

// renderCommand draws a snapshot with Graphviz.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <snapshot.json>",
		Short: "Draw a diagram as DOT, SVG, PDF or PNG",
		Long: `Draw a diagram with Graphviz. Compartments and complexes become clusters.

PDF and PNG output need rsvg-convert from librsvg on the PATH.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				opts.format = c.Config.Render.Format
			}
			if !cmd.Flags().Changed("detailed") {
				opts.detailed = c.Config.Render.Detailed
			}
			opts.format = strings.ToLower(opts.format)
			if !slices.Contains(validFormats, opts.format) {
				return errors.New(errors.ErrCodeInvalidInput, "invalid format: %s (must be one of %s)", opts.format, strings.Join(validFormats, ", "))
			}
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with the format's extension, - for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatSVG, "output format: dot, svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show types and auxiliary units")
	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	d, err := loadSnapshot(ctx, input)
	if err != nil {
		return err
	}

	data, err := renderDiagram(ctx, d, opts)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debugf("Generated %s: %d bytes", opts.format, len(data))

	w := cmd.OutOrStdout()
	if opts.output == stdoutPath {
		_, err := w.Write(data)
		return err
	}
	path := opts.output
	if path == "" {
		path = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	printFile(w, path)
	return nil
}

// renderDiagram produces the bytes of d in opts.format.
func renderDiagram(ctx context.Context, d *diagram.Diagram, opts renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	dot := nodelink.ToDOT(d, nodelink.Options{Detailed: opts.detailed})
	if opts.format == config.FormatDOT {
		return []byte(dot), nil
	}

	prog := newProgress(logger)
	svg, err := nodelink.RenderSVG(dot)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "graphviz")
	}
	prog.done("Laid out diagram")

	switch opts.format {
	case config.FormatPDF:
		return render.ToPDF(ctx, svg)
	case config.FormatPNG:
		return render.ToPNG(ctx, svg, pngScale)
	}
	return svg, nil
}
