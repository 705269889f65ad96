package market

import (
	"math"
	"time"
)

// InstantFromFraction maps a cursor position on the reference axis back
// to an absolute instant: the result's civil time in refZone lands
// frac x 1440 minutes after that zone's midnight of the civil day
// containing realNow. Inverse of the timeline anchoring. The fraction
// is clamped to [0,1].
func InstantFromFraction(frac float64, refZone string, realNow time.Time) (time.Time, error) {
	frac = math.Max(0, math.Min(1, frac))
	ct, err := CivilTimeIn(refZone, realNow)
	if err != nil {
		return time.Time{}, err
	}
	target := int(math.Round(frac * minutesPerDay))
	if target >= minutesPerDay {
		target = minutesPerDay - 1
	}
	delta := target - ct.MinutesSinceMidnight()
	// IANA offsets are whole minutes, so truncating to the minute keeps
	// the civil reading exact in every zone.
	return realNow.Add(time.Duration(delta) * time.Minute).Truncate(time.Minute), nil
}
