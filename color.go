package grimbound

import (
	"math"

	"github.com/gogpu/gg"
)

// relativeLuminance computes the WCAG relative luminance of a color,
// ignoring alpha. Result is in [0, 1].
func relativeLuminance(c gg.RGBA) float64 {
	lin := func(v float64) float64 {
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// contrastColor returns black or white, whichever reads better
// against bg. Used for reminder text over the configured fill, so a
// dark custom fill does not end up with invisible dark text.
func contrastColor(bg gg.RGBA) gg.RGBA {
	if relativeLuminance(bg) > 0.45 {
		return gg.RGB(0.1, 0.08, 0.06)
	}
	return gg.RGB(0.96, 0.95, 0.92)
}
