package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/matzehuels/sbgnedit/pkg/errors"
)

// rsvgTool is the librsvg command line converter that backs PDF and PNG
// output. It reads SVG on stdin and writes the converted image to stdout.
const rsvgTool = "rsvg-convert"

// ToPDF converts an SVG picture of a diagram to PDF.
//
// It fails with [errors.ErrCodeUnsupported] when rsvg-convert is not on
// PATH and with [errors.ErrCodeInternal] when the conversion itself fails.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convertSVG(ctx, svg, "pdf")
}

// ToPNG converts an SVG picture of a diagram to PNG, zoomed by scale.
// Errors are reported as for [ToPDF].
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %g", scale)
	}
	return convertSVG(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

func convertSVG(ctx context.Context, svg []byte, format string, args ...string) ([]byte, error) {
	tool, err := exec.LookPath(rsvgTool)
	if err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output needs %s from librsvg (brew install librsvg, apt install librsvg2-bin)", format, rsvgTool)
	}

	cmd := exec.CommandContext(ctx, tool, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s to %s: %s",
			rsvgTool, format, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
