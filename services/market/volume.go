package market

import (
	"math"
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// hourlyProfile encodes expected relative forex activity per UTC hour,
// 0-100. The peaks follow the London open (08:00) and the London /
// New York overlap (13:00-16:00); the trough is the post-New York lull
// before Sydney picks up.
var hourlyProfile = [24]float64{
	25, 30, 35, 35, 30, 28, 35, 50, // 00-07 Sydney/Tokyo, London pre-open
	70, 72, 68, 62, 70, 85, 95, 90, // 08-15 London, then the NY overlap
	75, 60, 50, 45, 40, 30, 20, 22, // 16-23 NY afternoon, late lull
}

// VolumeAt samples the activity profile at an instant, blending the two
// surrounding hourly values with a raised-cosine weight so the curve is
// continuous across hour marks, including the 23h -> 0h wrap.
func VolumeAt(instant time.Time) float64 {
	utc := instant.UTC()
	h := utc.Hour()
	mu := (float64(utc.Minute()) + float64(utc.Second())/60.0) / 60.0
	w := (1 - math.Cos(mu*math.Pi)) / 2
	return hourlyProfile[h]*(1-w) + hourlyProfile[(h+1)%24]*w
}

// TierOf maps a profile value to its discrete tier.
func TierOf(value float64) models.VolumeTier {
	switch {
	case value >= 80:
		return models.TierVeryHigh
	case value >= 60:
		return models.TierHigh
	case value >= 30:
		return models.TierMedium
	default:
		return models.TierLow
	}
}

// ReadProfile bundles a sample with its tier.
func ReadProfile(instant time.Time) models.VolumeReading {
	v := VolumeAt(instant)
	return models.VolumeReading{Value: v, Tier: TierOf(v)}
}
