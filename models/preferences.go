package models

// Preference values accepted by the store. Anything else persisted is
// treated as malformed and replaced by the default on read.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	TimeFormat24h = "24h"
	TimeFormat12h = "12h"
)

// Preferences are the per-client display settings. They affect
// formatting and the timeline anchor only, never the underlying
// open/closed truth.
type Preferences struct {
	Theme         string `json:"theme"`
	TimeFormat    string `json:"timeFormat"`
	ReferenceZone string `json:"referenceZone"`
}

// Is24Hour reports whether times should be formatted on a 24-hour clock.
func (p Preferences) Is24Hour() bool {
	return p.TimeFormat != TimeFormat12h
}
