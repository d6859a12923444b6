package grimbound

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Phauks/Grimbound-sub005/assets"
)

// Layout fractions relative to the token diameter, tuned to the
// printed-token look.
const (
	portraitFrac     = 0.62
	reminderIconFrac = 0.50
	abilityTopFrac   = 0.15
	abilityWidthFrac = 0.78
	nameRadiusFrac   = 0.40
	nameSizeFrac     = 0.105
	abilitySizeFrac  = 0.060
	reminderSizeFrac = 0.115
	badgeRadiusFrac  = 0.085
	badgeCenterFrac  = 0.135
)

// tokenInk is the text color over the parchment-style role
// background.
var tokenInk = gg.RGB(0.13, 0.09, 0.06)

// upperCaser uppercases curved token names with full Unicode rules.
var upperCaser = cases.Upper(language.Und)

// ErrNoSurface is the fatal error class: a drawing surface could not
// be allocated at all. Batch generation aborts on it; every other
// failure degrades.
var ErrNoSurface = errors.New("cannot allocate drawing surface")

// Renderer composes individual tokens and drives batch generation.
// It holds no per-token state; the only shared mutable resource is
// the asset loader's cache.
type Renderer struct {
	style  StyleOptions
	images *assets.Loader
	fonts  *FontLibrary
}

// NewRenderer creates a Renderer over the given asset loader and font
// library, applying opts over the default style table. The configured
// font families must already be registered so a typo surfaces here
// instead of as missing text on every token.
func NewRenderer(images *assets.Loader, fonts *FontLibrary, opts ...Option) (*Renderer, error) {
	if images == nil {
		return nil, errors.New("nil asset loader")
	}
	if fonts == nil {
		return nil, errors.New("nil font library")
	}

	style := defaultStyle()
	for _, opt := range opts {
		opt(&style)
	}
	if style.RoleDiameter <= 0 || style.ReminderDiameter <= 0 {
		return nil, fmt.Errorf("invalid diameters %dx%d", style.RoleDiameter, style.ReminderDiameter)
	}
	for _, family := range []string{style.NameFont, style.AbilityFont, style.ReminderFont} {
		if !fonts.Has(family) {
			return nil, fmt.Errorf("font %q not registered", family)
		}
	}

	return &Renderer{style: style, images: images, fonts: fonts}, nil
}

// Style returns the resolved style options.
func (r *Renderer) Style() StyleOptions {
	return r.style
}

// newSurface allocates one square drawing surface. Failure here is
// the only fatal condition in the compositor.
func (r *Renderer) newSurface(diameter int) (*gg.Context, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("%w: diameter %d", ErrNoSurface, diameter)
	}
	dc := gg.NewContext(diameter, diameter)
	if dc == nil {
		return nil, ErrNoSurface
	}
	return dc, nil
}

// CharacterToken renders the role token for one character: circular
// background, centered portrait, optional setup overlay, ability
// text, curved name, and optional reminder-count badge. Asset
// failures degrade; only surface allocation errors are returned.
func (r *Renderer) CharacterToken(ctx context.Context, ch CharacterRecord) (*RenderedToken, error) {
	dc, err := r.newSurface(r.style.RoleDiameter)
	if err != nil {
		return nil, err
	}
	d := float64(r.style.RoleDiameter)

	dc.Push()
	dc.DrawCircle(d/2, d/2, d/2)
	dc.Clip()

	r.drawBackground(ctx, dc, d, r.style.RoleBackground, gg.Hex(r.style.RoleFill))

	if ch.Image != "" {
		if img, err := r.images.Image(ctx, ch.Image); err != nil {
			Logger().Warn("portrait unavailable", "character", ch.Name, "image", ch.Image, "error", err)
		} else {
			size := d * portraitFrac
			drawCover(dc, img, (d-size)/2, (d-size)/2, size, size)
		}
	}

	if ch.Setup && r.style.SetupOverlay != "" {
		if img, err := r.images.Image(ctx, r.style.SetupOverlay); err != nil {
			Logger().Warn("setup overlay unavailable", "character", ch.Name, "asset", r.style.SetupOverlay, "error", err)
		} else {
			drawCover(dc, img, 0, 0, d, d)
		}
	}

	// Restore the full canvas before text so glyph shadows near the
	// rim are not clipped to the circle.
	dc.Pop()

	if r.style.DisplayAbilityText && ch.Ability != "" {
		r.drawAbility(dc, d, ch.Ability)
	}

	r.drawCurvedName(dc, d, ch.Name, r.style.NameFont, nameSizeFrac, tokenInk)

	if r.style.TokenCount && len(ch.Reminders) > 0 {
		r.drawCountBadge(dc, d, len(ch.Reminders))
	}

	return &RenderedToken{
		Type:          TokenCharacter,
		Name:          ch.Name,
		Team:          ch.Team,
		Surface:       dc.Image(),
		HasReminders:  len(ch.Reminders) > 0,
		ReminderCount: len(ch.Reminders),
	}, nil
}

// ReminderToken renders one reminder token for a character. The text
// color is chosen to contrast with the configured reminder fill, so a
// dark custom fill still yields readable text.
func (r *Renderer) ReminderToken(ctx context.Context, ch CharacterRecord, reminder string) (*RenderedToken, error) {
	dc, err := r.newSurface(r.style.ReminderDiameter)
	if err != nil {
		return nil, err
	}
	d := float64(r.style.ReminderDiameter)
	fill := gg.Hex(r.style.ReminderFill)

	dc.Push()
	dc.DrawCircle(d/2, d/2, d/2)
	dc.Clip()

	r.drawBackground(ctx, dc, d, r.style.ReminderBackground, fill)

	if ch.Image != "" {
		if img, err := r.images.Image(ctx, ch.Image); err != nil {
			Logger().Warn("reminder icon unavailable", "character", ch.Name, "image", ch.Image, "error", err)
		} else {
			size := d * reminderIconFrac
			// Icon rides above center to leave room for the curved
			// text along the bottom.
			drawCover(dc, img, (d-size)/2, d*0.16, size, size)
		}
	}

	dc.Pop()

	r.drawCurvedName(dc, d, reminder, r.style.ReminderFont, reminderSizeFrac, contrastColor(fill))

	return &RenderedToken{
		Type:            TokenReminder,
		Name:            reminder,
		Team:            ch.Team,
		Surface:         dc.Image(),
		ParentCharacter: ch.Name,
		ReminderText:    reminder,
	}, nil
}

// TrademarkToken renders the single credit token included in every
// batch: the configured body text wrapped in the middle and the tool
// name curved along the bottom.
func (r *Renderer) TrademarkToken(ctx context.Context) (*RenderedToken, error) {
	dc, err := r.newSurface(r.style.RoleDiameter)
	if err != nil {
		return nil, err
	}
	d := float64(r.style.RoleDiameter)

	dc.Push()
	dc.DrawCircle(d/2, d/2, d/2)
	dc.Clip()
	r.drawBackground(ctx, dc, d, r.style.RoleBackground, gg.Hex(r.style.RoleFill))
	dc.Pop()

	if r.style.TrademarkText != "" {
		r.drawCenteredText(dc, d, r.style.TrademarkText)
	}
	r.drawCurvedName(dc, d, r.style.TrademarkName, r.style.NameFont, nameSizeFrac, tokenInk)

	return &RenderedToken{
		Type:    TokenTrademark,
		Name:    r.style.TrademarkName,
		Surface: dc.Image(),
	}, nil
}

// drawBackground fills the token with the configured asset, falling
// back to a flat fill when the asset cannot be loaded.
func (r *Renderer) drawBackground(ctx context.Context, dc *gg.Context, d float64, id string, fill gg.RGBA) {
	if id != "" {
		img, err := r.images.Image(ctx, id)
		if err == nil {
			drawCover(dc, img, 0, 0, d, d)
			return
		}
		Logger().Warn("background unavailable, using flat fill", "asset", id, "error", err)
	}
	dc.SetColor(fill.Color())
	dc.DrawRectangle(0, 0, d, d)
	_ = dc.Fill()
}

// drawAbility word-wraps the ability text and draws it top-aligned
// with a drop shadow.
func (r *Renderer) drawAbility(dc *gg.Context, d float64, ability string) {
	face, err := r.fonts.Face(r.style.AbilityFont, d*abilitySizeFrac)
	if err != nil {
		Logger().Warn("ability font unavailable", "font", r.style.AbilityFont, "error", err)
		return
	}
	dc.SetFont(face)

	lines := text.WrapText(ability, face, d*abilityWidthFrac, text.WrapWordChar)
	m := face.Metrics()
	lineHeight := m.Ascent + m.Descent + m.LineGap

	shadowOffset := math.Max(1, face.Size()/14)
	y := d*abilityTopFrac + lineHeight/2
	for _, line := range lines {
		dc.SetColor(gg.RGBA2(0, 0, 0, 0.5).Color())
		dc.DrawStringAnchored(line.Text, d/2+shadowOffset, y+shadowOffset, 0.5, 0.5)
		dc.SetColor(tokenInk.Color())
		dc.DrawStringAnchored(line.Text, d/2, y, 0.5, 0.5)
		y += lineHeight
	}
}

// drawCenteredText word-wraps s and draws the block vertically
// centered, used by the trademark token.
func (r *Renderer) drawCenteredText(dc *gg.Context, d float64, s string) {
	face, err := r.fonts.Face(r.style.AbilityFont, d*abilitySizeFrac)
	if err != nil {
		Logger().Warn("ability font unavailable", "font", r.style.AbilityFont, "error", err)
		return
	}
	dc.SetFont(face)

	lines := text.WrapText(s, face, d*abilityWidthFrac, text.WrapWordChar)
	m := face.Metrics()
	lineHeight := m.Ascent + m.Descent + m.LineGap

	y := d/2 - lineHeight*float64(len(lines)-1)/2
	dc.SetColor(tokenInk.Color())
	for _, line := range lines {
		dc.DrawStringAnchored(line.Text, d/2, y, 0.5, 0.5)
		y += lineHeight
	}
}

// drawCurvedName draws s uppercased along the bottom arc, sized as a
// fraction of the diameter.
func (r *Renderer) drawCurvedName(dc *gg.Context, d float64, s, family string, sizeFrac float64, col gg.RGBA) {
	if s == "" {
		return
	}
	face, err := r.fonts.Face(family, d*sizeFrac)
	if err != nil {
		Logger().Warn("name font unavailable", "font", family, "error", err)
		return
	}
	drawCurvedText(dc, upperCaser.String(s), d/2, d/2, d*nameRadiusFrac, face, ArcBottom, col)
}

// drawCountBadge draws a small filled circle near the top of the
// token showing the reminder count.
func (r *Renderer) drawCountBadge(dc *gg.Context, d float64, count int) {
	radius := d * badgeRadiusFrac
	cx, cy := d/2, d*badgeCenterFrac

	dc.SetColor(gg.RGBA2(0.11, 0.07, 0.05, 0.88).Color())
	dc.DrawCircle(cx, cy, radius)
	_ = dc.Fill()

	face, err := r.fonts.Face(r.style.NameFont, radius*1.25)
	if err != nil {
		return
	}
	dc.SetFont(face)
	dc.SetColor(gg.RGB(0.96, 0.94, 0.90).Color())
	dc.DrawStringAnchored(strconv.Itoa(count), cx, cy, 0.5, 0.5)
}
