package market

import (
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// Project maps a session's daily window onto a 24-hour axis anchored at
// the reference zone's midnight for the civil day containing the
// instant. The zone difference comes from two civil-time reads at the
// instant itself, so DST in either zone is accounted for. A window that
// runs past the end of the axis is split into two segments; zero-width
// segments are dropped.
func Project(sess models.Session, refZone string, instant time.Time) ([]models.Segment, error) {
	sessCT, err := CivilTimeIn(sess.TimeZone, instant)
	if err != nil {
		return nil, err
	}
	refCT, err := CivilTimeIn(refZone, instant)
	if err != nil {
		return nil, err
	}
	openMin, err := ParseWallClock(sess.OpenLocal)
	if err != nil {
		return nil, err
	}
	closeMin, err := ParseWallClock(sess.CloseLocal)
	if err != nil {
		return nil, err
	}

	duration := WindowDuration(openMin, closeMin)
	if duration == 0 {
		return nil, nil
	}

	// Calendar-day differences between the zones vanish modulo 24h, so
	// the wall-clock delta alone positions the window on the axis.
	diff := sessCT.MinutesSinceMidnight() - refCT.MinutesSinceMidnight()
	start := ((openMin-diff)%minutesPerDay + minutesPerDay) % minutesPerDay
	end := start + duration

	var segs []models.Segment
	if end > minutesPerDay {
		segs = append(segs,
			models.Segment{Start: frac(start), End: 1},
			models.Segment{Start: 0, End: frac(end - minutesPerDay)},
		)
	} else {
		segs = append(segs, models.Segment{Start: frac(start), End: frac(end)})
	}

	kept := segs[:0]
	for _, s := range segs {
		if s.End > s.Start {
			kept = append(kept, s)
		}
	}
	return kept, nil
}

// CursorFraction returns the position of an instant on the reference
// axis, as a fraction of the day.
func CursorFraction(refZone string, instant time.Time) (float64, error) {
	ct, err := CivilTimeIn(refZone, instant)
	if err != nil {
		return 0, err
	}
	return frac(ct.MinutesSinceMidnight()), nil
}

func frac(minutes int) float64 {
	return float64(minutes) / float64(minutesPerDay)
}
