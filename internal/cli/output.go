package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"

	"github.com/jmylchreest/accent/internal/colour"
)

// printSelection emits one line per selected colour with its hex code,
// luma, and a lookup URL for visual inspection. On an interactive terminal
// a truecolour swatch preview follows.
func printSelection(log hclog.Logger, selected []colour.Colour, lookupURL string) {
	if len(selected) == 0 {
		log.Warn("no accent colours selected")
		return
	}

	for _, c := range selected {
		log.Info("selected colour",
			"hex", c.Hex(),
			"luma", fmt.Sprintf("%.1f", c.Luma()),
			"url", lookupURL+strings.TrimPrefix(c.Hex(), "#"),
		)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(swatchLine(selected))
	}
}

// swatchLine renders colours as truecolour background blocks followed by
// their hex codes.
func swatchLine(colours []colour.Colour) string {
	var sb strings.Builder
	for i, c := range colours {
		if i > 0 {
			sb.WriteString("  ")
		}
		rgb := c.RGB()
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm  \x1b[0m %s",
			rgb>>16&0xff, rgb>>8&0xff, rgb&0xff, c.Hex())
	}
	return sb.String()
}
