package grimbound

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// MaxArcSpan is the ceiling, in radians, on how far curved text may
// wrap around a token. Longer strings compress proportionally instead
// of spilling past it.
const MaxArcSpan = 0.7 * math.Pi

// ArcPosition selects which half of the circle curved text sits on.
type ArcPosition int

const (
	// ArcBottom curves text along the lower arc, reading left to
	// right with upright glyphs at the six o'clock position.
	ArcBottom ArcPosition = iota

	// ArcTop mirrors ArcBottom along the upper arc.
	ArcTop
)

// GlyphPlacement is one glyph's computed position on the arc. Angles
// follow raster conventions: 0 points right, pi/2 points down.
type GlyphPlacement struct {
	Rune     rune
	Width    float64
	Angle    float64
	Rotation float64
}

// glyphMeasurer reports the horizontal advance of a string at some
// font and size. text.Face satisfies it.
type glyphMeasurer interface {
	Advance(s string) float64
}

// layoutArc computes per-glyph placements for s curved along a circle
// of the given radius. Each glyph's angular allotment is proportional
// to its measured advance, the total span is capped at MaxArcSpan,
// and every glyph is centered within its own slot. Returns nil for
// empty input or a non-positive radius.
func layoutArc(s string, m glyphMeasurer, radius float64, pos ArcPosition) []GlyphPlacement {
	if s == "" || radius <= 0 {
		return nil
	}

	span := math.Min(m.Advance(s)/radius, MaxArcSpan)

	runes := []rune(s)
	widths := make([]float64, len(runes))
	var totalCharWidth float64
	for i, r := range runes {
		widths[i] = m.Advance(string(r))
		totalCharWidth += widths[i]
	}
	if totalCharWidth <= 0 {
		return nil
	}

	// Bottom text starts on the lower-left arc and walks clockwise
	// toward the lower right (decreasing angle); top text is the
	// mirror. Rotation is zero for a glyph at dead center so text is
	// upright where it crosses the vertical axis.
	var angle, dir, upright float64
	switch pos {
	case ArcTop:
		angle = -math.Pi/2 - span/2
		dir = 1
		upright = math.Pi / 2
	default:
		angle = math.Pi/2 + span/2
		dir = -1
		upright = -math.Pi / 2
	}

	placements := make([]GlyphPlacement, 0, len(runes))
	for i, r := range runes {
		slot := widths[i] / totalCharWidth * span
		angle += dir * slot / 2
		placements = append(placements, GlyphPlacement{
			Rune:     r,
			Width:    widths[i],
			Angle:    angle,
			Rotation: angle + upright,
		})
		angle += dir * slot / 2
	}
	return placements
}

// drawCurvedText renders s along an arc centered at (cx, cy). Each
// glyph gets its own rotation so the baseline stays tangent to the
// circle. A dark offset pass underneath keeps the text legible on
// busy backgrounds.
func drawCurvedText(dc *gg.Context, s string, cx, cy, radius float64, face text.Face, pos ArcPosition, col gg.RGBA) {
	placements := layoutArc(s, face, radius, pos)
	if placements == nil {
		return
	}
	dc.SetFont(face)

	shadow := gg.RGBA2(0, 0, 0, 0.55)
	shadowOffset := math.Max(1, face.Size()/16)

	for _, pass := range []struct {
		col    gg.RGBA
		dx, dy float64
	}{
		{shadow, shadowOffset, shadowOffset},
		{col, 0, 0},
	} {
		dc.SetColor(pass.col.Color())
		for _, p := range placements {
			x := cx + radius*math.Cos(p.Angle) + pass.dx
			y := cy + radius*math.Sin(p.Angle) + pass.dy
			dc.Push()
			dc.RotateAbout(p.Rotation, x, y)
			dc.DrawStringAnchored(string(p.Rune), x, y, 0.5, 0.5)
			dc.Pop()
		}
	}
}
