package cli

import (
	"strings"
	"testing"

	"github.com/jmylchreest/accent/internal/colour"
)

func TestSwatchLine(t *testing.T) {
	colours := []colour.Colour{colour.New(0xff0000), colour.New(0x0000ff)}
	line := swatchLine(colours)

	if !strings.Contains(line, "#ff0000") || !strings.Contains(line, "#0000ff") {
		t.Errorf("swatch line missing hex codes: %q", line)
	}
	if !strings.Contains(line, "\x1b[48;2;255;0;0m") {
		t.Errorf("swatch line missing truecolour escape for red: %q", line)
	}
	if !strings.HasSuffix(line, "#0000ff") {
		t.Errorf("swatch line does not end with the final hex code: %q", line)
	}
}

func TestSwatchLineEmpty(t *testing.T) {
	if line := swatchLine(nil); line != "" {
		t.Errorf("swatchLine(nil) = %q, want empty", line)
	}
}
