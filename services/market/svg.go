package market

import (
	"fmt"
	"strings"
	"time"
)

// VolumeCurvePath assembles an SVG path string tracing the day's volume
// profile across the reference axis, scaled to a width x height
// viewport (y grows downward, profile values span 0-100). The curve is
// sampled through the scrub mapping so it shifts with the reference
// zone like every other timeline element.
func VolumeCurvePath(refZone string, instant time.Time, width, height float64, samples int) (string, error) {
	if samples < 2 {
		samples = 2
	}
	var b strings.Builder
	for i := 0; i < samples; i++ {
		f := float64(i) / float64(samples-1)
		at, err := InstantFromFraction(f, refZone, instant)
		if err != nil {
			return "", err
		}
		x := f * width
		y := height - VolumeAt(at)/100*height
		if i == 0 {
			fmt.Fprintf(&b, "M%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&b, " L%.1f,%.1f", x, y)
		}
	}
	return b.String(), nil
}
