package market

import (
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

const minutesPerDay = 24 * 60

// WindowDuration returns the length in minutes of a daily window from
// open to close, wrapping past midnight when close <= open. An
// open == close window has zero duration: the session is treated as
// always closed (the half-open interval [open, open) is empty).
func WindowDuration(openMin, closeMin int) int {
	if openMin == closeMin {
		return 0
	}
	if openMin < closeMin {
		return closeMin - openMin
	}
	return minutesPerDay - openMin + closeMin
}

// minutesUntil returns the forward distance from one wall-clock minute
// to another, modulo the day. Always in [0, 1439].
func minutesUntil(from, to int) int {
	return ((to-from)%minutesPerDay + minutesPerDay) % minutesPerDay
}

// Evaluate determines a session's open/closed state at an instant.
// Both branches use half-open interval semantics: the instant exactly
// at open is open, the instant exactly at close is closed.
func Evaluate(sess models.Session, instant time.Time) (models.SessionStatus, error) {
	ct, err := CivilTimeIn(sess.TimeZone, instant)
	if err != nil {
		return models.SessionStatus{}, err
	}
	openMin, err := ParseWallClock(sess.OpenLocal)
	if err != nil {
		return models.SessionStatus{}, err
	}
	closeMin, err := ParseWallClock(sess.CloseLocal)
	if err != nil {
		return models.SessionStatus{}, err
	}

	cur := ct.MinutesSinceMidnight()
	duration := WindowDuration(openMin, closeMin)
	if duration == 0 {
		// Degenerate zero-width window: always closed.
		return models.SessionStatus{MinutesToTransition: minutesUntil(cur, openMin)}, nil
	}

	var isOpen bool
	if openMin < closeMin {
		isOpen = cur >= openMin && cur < closeMin
	} else {
		// Window crosses midnight.
		isOpen = cur >= openMin || cur < closeMin
	}

	if !isOpen {
		return models.SessionStatus{MinutesToTransition: minutesUntil(cur, openMin)}, nil
	}

	elapsed := minutesUntil(openMin, cur)
	return models.SessionStatus{
		IsOpen:              true,
		Progress:            float64(elapsed) / float64(duration),
		MinutesToTransition: minutesUntil(cur, closeMin),
	}, nil
}

// OpenSessionIDs evaluates every session at the instant and returns the
// ids of the open ones, preserving catalog order.
func OpenSessionIDs(sessions []models.Session, instant time.Time) ([]string, error) {
	var open []string
	for _, s := range sessions {
		status, err := Evaluate(s, instant)
		if err != nil {
			return nil, err
		}
		if status.IsOpen {
			open = append(open, s.ID)
		}
	}
	return open, nil
}
