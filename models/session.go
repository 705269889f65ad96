package models

// Session represents one trading venue with a fixed daily window
// expressed in its own civil time.
type Session struct {
	ID         string `json:"id"`         // Unique stable identifier (e.g., "london")
	Name       string `json:"name"`       // Display label
	TimeZone   string `json:"timeZone"`   // IANA zone identifier
	OpenLocal  string `json:"openLocal"`  // Daily open, "HH:MM" wall clock in TimeZone
	CloseLocal string `json:"closeLocal"` // Daily close, "HH:MM" wall clock in TimeZone
	Color      string `json:"color"`      // Display accent
}

// SessionStatus is the derived open/closed state of a session at one
// instant. Recomputed fresh on every evaluation, never cached.
type SessionStatus struct {
	IsOpen bool `json:"isOpen"`
	// Progress is the fraction of the session elapsed, in [0,1].
	// Only meaningful while the session is open.
	Progress float64 `json:"progress"`
	// MinutesToTransition is minutes until close while open, minutes
	// until the next open while closed. Always >= 0.
	MinutesToTransition int `json:"minutesToTransition"`
}

// VolumeTier is a discretized activity level.
type VolumeTier string

const (
	TierLow      VolumeTier = "Low"
	TierMedium   VolumeTier = "Medium"
	TierHigh     VolumeTier = "High"
	TierVeryHigh VolumeTier = "Very High"
)

// VolumeStatus is the heuristic activity level derived from which
// sessions are open. Class and Color feed the rendering layer directly.
type VolumeStatus struct {
	Level VolumeTier `json:"level"`
	Class string     `json:"class"`
	Color string     `json:"color"`
}

// VolumeReading is a sample of the continuous hourly activity profile.
type VolumeReading struct {
	Value float64    `json:"value"`
	Tier  VolumeTier `json:"tier"`
}
