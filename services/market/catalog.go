package market

import (
	"fmt"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// DefaultCatalog returns the four major forex sessions. The set is
// fixed for the process lifetime; ids key every per-session lookup.
func DefaultCatalog() []models.Session {
	return []models.Session{
		{ID: "sydney", Name: "Sydney", TimeZone: "Australia/Sydney", OpenLocal: "08:00", CloseLocal: "17:00", Color: "#3b82f6"},
		{ID: "tokyo", Name: "Tokyo", TimeZone: "Asia/Tokyo", OpenLocal: "09:00", CloseLocal: "18:00", Color: "#8b5cf6"},
		{ID: "london", Name: "London", TimeZone: "Europe/London", OpenLocal: "08:00", CloseLocal: "17:00", Color: "#ef4444"},
		{ID: "newyork", Name: "New York", TimeZone: "America/New_York", OpenLocal: "08:00", CloseLocal: "17:00", Color: "#10b981"},
	}
}

// ValidateCatalog verifies the static session set: unique ids,
// parseable open/close wall clocks, and known time zones. Run once at
// startup; any failure is a configuration error.
func ValidateCatalog(sessions []models.Session) error {
	seen := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		if s.ID == "" {
			return fmt.Errorf("session %q has an empty id", s.Name)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate session id %q", s.ID)
		}
		seen[s.ID] = true
		if _, err := ParseWallClock(s.OpenLocal); err != nil {
			return fmt.Errorf("session %q open: %w", s.ID, err)
		}
		if _, err := ParseWallClock(s.CloseLocal); err != nil {
			return fmt.Errorf("session %q close: %w", s.ID, err)
		}
	}
	return ValidateZones(sessions)
}
