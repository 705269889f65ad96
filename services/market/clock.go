package market

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// ErrInvalidTimeZone indicates a zone identifier the IANA database does
// not know. The session catalog is static, so hitting this after
// startup validation means a bad per-request parameter.
var ErrInvalidTimeZone = errors.New("invalid time zone")

// CivilTime is a wall-clock reading in a specific zone.
type CivilTime struct {
	Hour      int
	Minute    int
	Weekday   time.Weekday
	DateLabel string
}

// MinutesSinceMidnight returns the reading as minutes into the civil
// day, 0-1439.
func (c CivilTime) MinutesSinceMidnight() int {
	return c.Hour*60 + c.Minute
}

// CivilTimeIn converts an absolute instant to the wall clock observed
// in zoneID, using the IANA rules (DST-aware, never a fixed offset).
func CivilTimeIn(zoneID string, instant time.Time) (CivilTime, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return CivilTime{}, fmt.Errorf("%w: %q", ErrInvalidTimeZone, zoneID)
	}
	local := instant.In(loc)
	return CivilTime{
		Hour:      local.Hour(),
		Minute:    local.Minute(),
		Weekday:   local.Weekday(),
		DateLabel: local.Format("Monday, January 2, 2006"),
	}, nil
}

// ParseWallClock parses an "HH:MM" wall-clock string into minutes since
// midnight.
func ParseWallClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed wall clock %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("malformed wall clock %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("malformed wall clock %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("wall clock %q out of range", s)
	}
	return h*60 + m, nil
}

// ValidateZones checks every session zone plus any extra zones against
// the IANA database. Called once at startup so a bad identifier fails
// fast instead of surfacing per tick.
func ValidateZones(sessions []models.Session, extra ...string) error {
	for _, s := range sessions {
		if _, err := time.LoadLocation(s.TimeZone); err != nil {
			return fmt.Errorf("session %q: %w: %q", s.ID, ErrInvalidTimeZone, s.TimeZone)
		}
	}
	for _, zone := range extra {
		if _, err := time.LoadLocation(zone); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeZone, zone)
		}
	}
	return nil
}
