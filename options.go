package grimbound

// StyleOptions is the resolved rendering configuration. Zero values
// are never used directly; NewRenderer starts from defaultStyle and
// applies functional options over it.
type StyleOptions struct {
	// RoleDiameter is the pixel diameter of character and trademark
	// tokens.
	RoleDiameter int

	// ReminderDiameter is the pixel diameter of reminder tokens.
	ReminderDiameter int

	// DisplayAbilityText draws the character ability near the top of
	// role tokens.
	DisplayAbilityText bool

	// TokenCount draws a badge with the reminder count on character
	// tokens that have reminders.
	TokenCount bool

	// RoleBackground is the resource identifier of the role-token
	// background asset. Empty means flat fill only.
	RoleBackground string

	// ReminderBackground is the resource identifier of the
	// reminder-token background asset. Empty means flat fill only.
	ReminderBackground string

	// RoleFill is the hex fallback fill used when the role background
	// asset is missing.
	RoleFill string

	// ReminderFill is the hex fill for reminder tokens, also the
	// basis for the contrast color of reminder text.
	ReminderFill string

	// SetupOverlay is the resource identifier of the decorative
	// overlay drawn on setup-flagged characters.
	SetupOverlay string

	// NameFont, AbilityFont, and ReminderFont are font family names
	// as registered in the FontLibrary.
	NameFont     string
	AbilityFont  string
	ReminderFont string

	// TrademarkName is the curved name on the credit token.
	TrademarkName string

	// TrademarkText is the wrapped body text of the credit token.
	TrademarkText string
}

// defaultStyle returns the default style table. Every option has a
// default; unspecified options resolve from here.
func defaultStyle() StyleOptions {
	return StyleOptions{
		RoleDiameter:       480,
		ReminderDiameter:   280,
		DisplayAbilityText: true,
		TokenCount:         false,
		RoleBackground:     "token-background",
		ReminderBackground: "",
		RoleFill:           "#e8d5a9",
		ReminderFill:       "#f2efdf",
		SetupOverlay:       "setup-flower",
		NameFont:           "Dumbledor",
		AbilityFont:        "TradeGothic",
		ReminderFont:       "Dumbledor",
		TrademarkName:      "Grimbound",
		TrademarkText:      "Blood on the Clocktower is a trademark of Steven Medway and The Pandemonium Institute",
	}
}

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := grimbound.NewRenderer(loader, fonts,
//	    grimbound.WithRoleDiameter(600),
//	    grimbound.WithTokenCount(true),
//	)
type Option func(*StyleOptions)

// WithRoleDiameter sets the pixel diameter of character and trademark
// tokens.
func WithRoleDiameter(d int) Option {
	return func(o *StyleOptions) { o.RoleDiameter = d }
}

// WithReminderDiameter sets the pixel diameter of reminder tokens.
func WithReminderDiameter(d int) Option {
	return func(o *StyleOptions) { o.ReminderDiameter = d }
}

// WithAbilityText toggles drawing of ability text on role tokens.
func WithAbilityText(enabled bool) Option {
	return func(o *StyleOptions) { o.DisplayAbilityText = enabled }
}

// WithTokenCount toggles the reminder-count badge on character tokens.
func WithTokenCount(enabled bool) Option {
	return func(o *StyleOptions) { o.TokenCount = enabled }
}

// WithRoleBackground selects the role-token background asset. Pass an
// empty id to always use the flat fill.
func WithRoleBackground(id string) Option {
	return func(o *StyleOptions) { o.RoleBackground = id }
}

// WithReminderBackground selects the reminder-token background asset.
func WithReminderBackground(id string) Option {
	return func(o *StyleOptions) { o.ReminderBackground = id }
}

// WithRoleFill sets the hex fallback fill for role tokens.
func WithRoleFill(hex string) Option {
	return func(o *StyleOptions) { o.RoleFill = hex }
}

// WithReminderFill sets the hex fill for reminder tokens. Reminder
// text color is chosen to contrast against it.
func WithReminderFill(hex string) Option {
	return func(o *StyleOptions) { o.ReminderFill = hex }
}

// WithSetupOverlay selects the decorative overlay asset for
// setup-flagged characters.
func WithSetupOverlay(id string) Option {
	return func(o *StyleOptions) { o.SetupOverlay = id }
}

// WithNameFont sets the font family for curved token names.
func WithNameFont(family string) Option {
	return func(o *StyleOptions) { o.NameFont = family }
}

// WithAbilityFont sets the font family for ability text.
func WithAbilityFont(family string) Option {
	return func(o *StyleOptions) { o.AbilityFont = family }
}

// WithReminderFont sets the font family for reminder text.
func WithReminderFont(family string) Option {
	return func(o *StyleOptions) { o.ReminderFont = family }
}

// WithTrademark sets the name and body text of the credit token.
func WithTrademark(name, text string) Option {
	return func(o *StyleOptions) {
		o.TrademarkName = name
		o.TrademarkText = text
	}
}
