package models

import "time"

// Segment is a drawn interval on the 24-hour timeline axis, both ends
// expressed as fractions in [0,1].
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// TimelineBar is one session's projection onto the timeline axis. A bar
// that crosses the axis edge carries two segments.
type TimelineBar struct {
	SessionID string    `json:"sessionId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Segments  []Segment `json:"segments"`
}

// VolumeSample is one block of the timeline's background volume strip.
type VolumeSample struct {
	Fraction float64    `json:"fraction"`
	Level    VolumeTier `json:"level"`
	Class    string     `json:"class"`
	Color    string     `json:"color"`
}

// ClockInfo is the header clock for the displayed instant.
type ClockInfo struct {
	Time      string `json:"time"`
	Date      string `json:"date"`
	Scrubbing bool   `json:"scrubbing"`
}

// SessionCard is the render payload for one session card.
type SessionCard struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       string  `json:"color"`
	LocalTime   string  `json:"localTime"` // Current time in the session's own zone
	OpenHours   string  `json:"openHours"` // e.g. "08:00 - 17:00", formatted per preference
	IsOpen      bool    `json:"isOpen"`
	ProgressPct float64 `json:"progressPct"` // 0-100, width of the progress bar
	Countdown   string  `json:"countdown"`   // "Closes in 3h 5m" / "Opens in 12h 40m"
}

// Frame is the complete per-tick render payload: everything the
// dashboard needs to draw one instant, real or scrubbed. It is a pure
// function of (instant, preferences) and carries no references back
// into the computation layer.
type Frame struct {
	Clock          ClockInfo      `json:"clock"`
	Volume         VolumeStatus   `json:"volume"`
	Profile        VolumeReading  `json:"profile"`
	Cards          []SessionCard  `json:"cards"`
	Bars           []TimelineBar  `json:"bars"`
	VolumeStrip    []VolumeSample `json:"volumeStrip"`
	VolumePath     string         `json:"volumePath"` // SVG path for the volume curve
	CursorFraction float64        `json:"cursorFraction"`
	ReferenceZone  string         `json:"referenceZone"`
	GeneratedAt    time.Time      `json:"generatedAt"`
}
