package grimbound

import "testing"

func TestDefaultStyle(t *testing.T) {
	s := defaultStyle()

	if s.RoleDiameter <= 0 || s.ReminderDiameter <= 0 {
		t.Errorf("default diameters must be positive, got %d/%d", s.RoleDiameter, s.ReminderDiameter)
	}
	if s.ReminderDiameter >= s.RoleDiameter {
		t.Errorf("reminder tokens should be smaller than role tokens: %d >= %d", s.ReminderDiameter, s.RoleDiameter)
	}
	if !s.DisplayAbilityText {
		t.Error("ability text should default to enabled")
	}
	if s.TokenCount {
		t.Error("count badge should default to disabled")
	}
	if s.RoleFill == "" || s.ReminderFill == "" {
		t.Error("default fills must be set")
	}
	if s.NameFont == "" || s.AbilityFont == "" || s.ReminderFont == "" {
		t.Error("default font families must be set")
	}
}

func TestOptionsApply(t *testing.T) {
	s := defaultStyle()
	opts := []Option{
		WithRoleDiameter(600),
		WithReminderDiameter(300),
		WithAbilityText(false),
		WithTokenCount(true),
		WithRoleBackground("bg-role"),
		WithReminderBackground("bg-reminder"),
		WithRoleFill("#111111"),
		WithReminderFill("#222222"),
		WithSetupOverlay("overlay"),
		WithNameFont("NameFam"),
		WithAbilityFont("AbilityFam"),
		WithReminderFont("ReminderFam"),
		WithTrademark("Tool", "Credit text"),
	}
	for _, opt := range opts {
		opt(&s)
	}

	want := StyleOptions{
		RoleDiameter:       600,
		ReminderDiameter:   300,
		DisplayAbilityText: false,
		TokenCount:         true,
		RoleBackground:     "bg-role",
		ReminderBackground: "bg-reminder",
		RoleFill:           "#111111",
		ReminderFill:       "#222222",
		SetupOverlay:       "overlay",
		NameFont:           "NameFam",
		AbilityFont:        "AbilityFam",
		ReminderFont:       "ReminderFam",
		TrademarkName:      "Tool",
		TrademarkText:      "Credit text",
	}
	if s != want {
		t.Errorf("applied options = %+v, want %+v", s, want)
	}
}
