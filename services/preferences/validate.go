package preferences

import (
	"fmt"
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// Defaults returns the documented fallback preferences: light theme,
// 24-hour clock, the configured default reference zone.
func Defaults(defaultZone string) models.Preferences {
	return models.Preferences{
		Theme:         models.ThemeLight,
		TimeFormat:    models.TimeFormat24h,
		ReferenceZone: defaultZone,
	}
}

// Validate rejects preference values outside the accepted set. Used on
// writes; reads sanitize instead.
func Validate(prefs models.Preferences) error {
	if prefs.Theme != models.ThemeLight && prefs.Theme != models.ThemeDark {
		return fmt.Errorf("%w: theme %q", ErrInvalidPreferenceValue, prefs.Theme)
	}
	if prefs.TimeFormat != models.TimeFormat24h && prefs.TimeFormat != models.TimeFormat12h {
		return fmt.Errorf("%w: time format %q", ErrInvalidPreferenceValue, prefs.TimeFormat)
	}
	if _, err := time.LoadLocation(prefs.ReferenceZone); err != nil {
		return fmt.Errorf("%w: reference zone %q", ErrInvalidPreferenceValue, prefs.ReferenceZone)
	}
	return nil
}

// Sanitize replaces each malformed field with its default. Applied to
// stored values on read so a corrupt entry degrades silently instead of
// failing the request.
func Sanitize(prefs models.Preferences, defaultZone string) models.Preferences {
	out := Defaults(defaultZone)
	if prefs.Theme == models.ThemeLight || prefs.Theme == models.ThemeDark {
		out.Theme = prefs.Theme
	}
	if prefs.TimeFormat == models.TimeFormat24h || prefs.TimeFormat == models.TimeFormat12h {
		out.TimeFormat = prefs.TimeFormat
	}
	if prefs.ReferenceZone != "" {
		if _, err := time.LoadLocation(prefs.ReferenceZone); err == nil {
			out.ReferenceZone = prefs.ReferenceZone
		}
	}
	return out
}
