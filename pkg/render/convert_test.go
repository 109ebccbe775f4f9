package render

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/matzehuels/sbgnedit/pkg/errors"
)

const square = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10" fill="black"/></svg>`

func TestConvertWithoutTool(t *testing.T) {
	t.Setenv("PATH", "")
	ctx := context.Background()

	if _, err := ToPDF(ctx, []byte(square)); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF() error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
	if _, err := ToPNG(ctx, []byte(square), 1); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG() error = %v, want %s", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNGRejectsScale(t *testing.T) {
	if _, err := ToPNG(context.Background(), []byte(square), 0); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToPNG(scale 0) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestConvert(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping rsvg-convert in short mode")
	}
	if _, err := exec.LookPath(rsvgTool); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	ctx := context.Background()

	pdf, err := ToPDF(ctx, []byte(square))
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("ToPDF() output starts with %q, want %%PDF", pdf[:min(len(pdf), 8)])
	}

	png, err := ToPNG(ctx, []byte(square), 2)
	if err != nil {
		t.Fatalf("ToPNG() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("ToPNG() output starts with %q, want the PNG signature", png[:min(len(png), 8)])
	}

	if _, err := ToPDF(ctx, []byte("<not svg")); !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("ToPDF(garbage) error = %v, want %s", err, errors.ErrCodeInternal)
	}
}
