package models

// ThemeSettings is the UI theme applied to the whole tenant.
type ThemeSettings struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	SurfaceColor    string `json:"surfaceColor"`
	TextColor       string `json:"textColor"`
	TextMutedColor  string `json:"textMutedColor"`
	BorderColor     string `json:"borderColor"`
	SuccessColor    string `json:"successColor"`
	WarningColor    string `json:"warningColor"`
	ErrorColor      string `json:"errorColor"`
	InfoColor       string `json:"infoColor"`
	FontFamily      string `json:"fontFamily"`
	BorderRadius    string `json:"borderRadius"`
	ButtonStyle     string `json:"buttonStyle"`
}

// ThemePatch is a partial theme; nil fields are left untouched.
type ThemePatch struct {
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	SecondaryColor  *string `json:"secondaryColor,omitempty"`
	AccentColor     *string `json:"accentColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	SurfaceColor    *string `json:"surfaceColor,omitempty"`
	TextColor       *string `json:"textColor,omitempty"`
	TextMutedColor  *string `json:"textMutedColor,omitempty"`
	BorderColor     *string `json:"borderColor,omitempty"`
	SuccessColor    *string `json:"successColor,omitempty"`
	WarningColor    *string `json:"warningColor,omitempty"`
	ErrorColor      *string `json:"errorColor,omitempty"`
	InfoColor       *string `json:"infoColor,omitempty"`
	FontFamily      *string `json:"fontFamily,omitempty"`
	BorderRadius    *string `json:"borderRadius,omitempty" validate:"omitempty,oneof=none sm md lg xl full"`
	ButtonStyle     *string `json:"buttonStyle,omitempty" validate:"omitempty,oneof=filled outlined ghost"`
}

// Apply merges the patch over t and returns the result.
func (p ThemePatch) Apply(t ThemeSettings) ThemeSettings {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.PrimaryColor, p.PrimaryColor)
	set(&t.SecondaryColor, p.SecondaryColor)
	set(&t.AccentColor, p.AccentColor)
	set(&t.BackgroundColor, p.BackgroundColor)
	set(&t.SurfaceColor, p.SurfaceColor)
	set(&t.TextColor, p.TextColor)
	set(&t.TextMutedColor, p.TextMutedColor)
	set(&t.BorderColor, p.BorderColor)
	set(&t.SuccessColor, p.SuccessColor)
	set(&t.WarningColor, p.WarningColor)
	set(&t.ErrorColor, p.ErrorColor)
	set(&t.InfoColor, p.InfoColor)
	set(&t.FontFamily, p.FontFamily)
	set(&t.BorderRadius, p.BorderRadius)
	set(&t.ButtonStyle, p.ButtonStyle)
	return t
}
