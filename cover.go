package grimbound

import "github.com/gogpu/gg"

// CoverPlacement is the draw rectangle produced by CoverFit, relative
// to the target box origin. Exactly one axis may overflow the box; the
// overflow is split evenly so the crop stays centered.
type CoverPlacement struct {
	X, Y          float64
	Width, Height float64
}

// CoverFit computes where to draw a source of dimensions (srcW, srcH)
// so that it fully covers a (boxW, boxH) target box while preserving
// aspect ratio. The longer axis is cropped, never letterboxed, the
// same effect as CSS "background-size: cover".
//
// CoverFit is a pure function: identical inputs yield identical
// placements. Dimensions must be positive.
func CoverFit(srcW, srcH, boxW, boxH float64) CoverPlacement {
	srcAspect := srcW / srcH
	boxAspect := boxW / boxH

	if srcAspect > boxAspect {
		// Source proportionally wider: height fills the box, width
		// overflows and is centered.
		drawW := srcW * boxH / srcH
		return CoverPlacement{
			X:      (boxW - drawW) / 2,
			Y:      0,
			Width:  drawW,
			Height: boxH,
		}
	}

	// Source proportionally taller (or equal): width fills the box.
	drawH := srcH * boxW / srcW
	return CoverPlacement{
		X:      0,
		Y:      (boxH - drawH) / 2,
		Width:  boxW,
		Height: drawH,
	}
}

// drawCover draws img so that it covers the box at (x, y) with the
// given dimensions. The box itself is pushed as a clip so the
// overflowing axis is cropped, not spilled.
func drawCover(dc *gg.Context, img *gg.ImageBuf, x, y, boxW, boxH float64) {
	srcW, srcH := img.Bounds()
	if srcW <= 0 || srcH <= 0 || boxW <= 0 || boxH <= 0 {
		return
	}
	p := CoverFit(float64(srcW), float64(srcH), boxW, boxH)
	dc.Push()
	dc.ClipRect(x, y, boxW, boxH)
	dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             x + p.X,
		Y:             y + p.Y,
		DstWidth:      p.Width,
		DstHeight:     p.Height,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
	})
	dc.Pop()
}
