package grimbound

import "image"

// Team is the sub-faction a character belongs to.
type Team string

// Recognized teams. Unknown values pass through untouched; the
// renderer treats the team as opaque metadata.
const (
	TeamTownsfolk Team = "townsfolk"
	TeamOutsider  Team = "outsider"
	TeamMinion    Team = "minion"
	TeamDemon     Team = "demon"
	TeamTraveler  Team = "traveler"
	TeamFabled    Team = "fabled"
)

// CharacterRecord is one character as parsed and validated upstream.
// The renderer never mutates a record.
type CharacterRecord struct {
	// ID is the stable script identifier (e.g. "imp").
	ID string `json:"id"`

	// Name is the display name drawn on the token. Characters with an
	// empty name are skipped during batch generation.
	Name string `json:"name"`

	// Team is the sub-faction grouping, carried through to the output.
	Team Team `json:"team"`

	// Ability is the rules text drawn on the token when ability text
	// display is enabled.
	Ability string `json:"ability"`

	// Image is an optional resource identifier for the portrait,
	// resolved through the assets.Loader.
	Image string `json:"image,omitempty"`

	// Setup marks characters that change game setup; their tokens get
	// a decorative overlay.
	Setup bool `json:"setup,omitempty"`

	// Reminders are the reminder-token texts for this character, in
	// order.
	Reminders []string `json:"reminders,omitempty"`
}

// TokenType identifies what a rendered token represents.
type TokenType int

const (
	// TokenCharacter is a role token for one character.
	TokenCharacter TokenType = iota

	// TokenReminder is a reminder-note token tied to a character.
	TokenReminder

	// TokenTrademark is the single credit token generated per batch.
	TokenTrademark
)

// String returns the string representation of the token type.
func (t TokenType) String() string {
	switch t {
	case TokenCharacter:
		return "character"
	case TokenReminder:
		return "reminder"
	case TokenTrademark:
		return "trademark"
	default:
		return "unknown"
	}
}

// RenderedToken is one finished token. Ownership of Surface transfers
// to the caller; the renderer keeps no reference after returning it.
type RenderedToken struct {
	// Type is what this token represents.
	Type TokenType

	// Name is the display name the token was rendered with.
	Name string

	// Filename is a batch-unique base name (no extension) suitable
	// for downstream export.
	Filename string

	// Team is copied from the source character, empty for trademark
	// tokens.
	Team Team

	// Surface is the rendered raster. Its width and height equal the
	// configured diameter for the token type.
	Surface image.Image

	// ParentCharacter names the character a reminder token belongs
	// to. Empty for character and trademark tokens.
	ParentCharacter string

	// ReminderText is the reminder string for reminder tokens.
	ReminderText string

	// HasReminders reports whether the source character had any
	// reminders (character tokens only).
	HasReminders bool

	// ReminderCount is the number of reminders on the source
	// character (character tokens only).
	ReminderCount int
}
