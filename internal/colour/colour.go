// Package colour implements the accent colour classification pipeline:
// sampling the RGB space between base colours, filtering candidates against
// adaptive perceptual-distance thresholds, and mining a reference palette
// for additional distinct colours.
package colour

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// MaxRGB is the largest valid 24-bit RGB value.
const MaxRGB = 0xffffff

// Colour is an immutable RGB colour with derived perceptual views.
// Construct via New or ParseHex.
type Colour struct {
	rgb int
	c   colorful.Color
}

// Black and White bound the RGB space and act as sentinels during sampling.
var (
	Black = New(0x000000)
	White = New(MaxRGB)
)

// New creates a Colour from a 24-bit RGB integer. Values outside
// [0, MaxRGB] are the caller's responsibility; use Valid to check.
func New(rgb int) Colour {
	return Colour{
		rgb: rgb,
		c: colorful.Color{
			R: float64(rgb>>16&0xff) / 255.0,
			G: float64(rgb>>8&0xff) / 255.0,
			B: float64(rgb&0xff) / 255.0,
		},
	}
}

// ParseHex creates a Colour from a hex string such as "#1a2b3c" or "1a2b3c".
func ParseHex(s string) (Colour, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Colour{}, fmt.Errorf("invalid hex colour %q: expected 6 hex digits", s)
	}
	rgb, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Colour{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return New(int(rgb)), nil
}

// Valid reports whether rgb is a representable 24-bit colour.
func Valid(rgb int) bool {
	return rgb >= 0 && rgb <= MaxRGB
}

// RGB returns the colour as a 24-bit integer.
func (c Colour) RGB() int {
	return c.rgb
}

// Hex returns the colour as a lowercase hex string (e.g. "#1a2b3c").
func (c Colour) Hex() string {
	return fmt.Sprintf("#%06x", c.rgb)
}

// Lab returns the colour in CIE Lab space (L scaled to [0,1]).
func (c Colour) Lab() (l, a, b float64) {
	return c.c.Lab()
}

// Luma returns the perceived brightness on a 0-255 scale (ITU-R BT.601).
func (c Colour) Luma() float64 {
	r := float64(c.rgb >> 16 & 0xff)
	g := float64(c.rgb >> 8 & 0xff)
	b := float64(c.rgb & 0xff)
	return 0.299*r + 0.587*g + 0.114*b
}

// DistanceTo returns the CIEDE2000 Delta E between two colours.
// Larger values are more visually distinct.
func (c Colour) DistanceTo(o Colour) float64 {
	return c.c.DistanceCIEDE2000(o.c)
}

// Luminance calculates the relative luminance of the colour according to
// WCAG 2.0. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func (c Colour) Luminance() float64 {
	rf := gammaCorrect(c.c.R)
	gf := gammaCorrect(c.c.G)
	bf := gammaCorrect(c.c.B)
	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 Colour) float64 {
	l1 := c1.Luminance()
	l2 := c2.Luminance()

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// SortByRGB sorts colours ascending by their 24-bit RGB value.
// Consolidate and the space sampler require this ordering.
func SortByRGB(colours []Colour) {
	sort.Slice(colours, func(i, j int) bool {
		return colours[i].rgb < colours[j].rgb
	})
}

// sortedByRGB reports whether colours are in ascending RGB order.
func sortedByRGB(colours []Colour) bool {
	for i := 1; i < len(colours); i++ {
		if colours[i-1].rgb > colours[i].rgb {
			return false
		}
	}
	return true
}

// Hexes returns the hex string of every colour, preserving order.
func Hexes(colours []Colour) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Hex()
	}
	return out
}
