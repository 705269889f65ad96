package market

import "github.com/itskavin/Forex-Market-Hours/models"

// CSS custom properties consumed by the rendering layer.
const (
	colorMuted   = "var(--text-muted)"
	colorAccent  = "var(--accent-color)"
	colorSuccess = "var(--success-color)"
	colorDanger  = "#ef4444"
)

// AggregateStatus classifies overall market activity from the set of
// open session ids. This is a heuristic, not a measurement: the pair
// list and its priority order are a product decision and must stay as
// they are (first match wins).
func AggregateStatus(openIDs []string) models.VolumeStatus {
	switch len(openIDs) {
	case 0:
		return models.VolumeStatus{Level: models.TierLow, Class: "low", Color: colorMuted}
	case 1:
		switch openIDs[0] {
		case "sydney":
			return models.VolumeStatus{Level: models.TierLow, Class: "low", Color: colorMuted}
		case "tokyo":
			return models.VolumeStatus{Level: models.TierMedium, Class: "medium", Color: colorAccent}
		default:
			// London or New York alone.
			return models.VolumeStatus{Level: models.TierHigh, Class: "high", Color: colorSuccess}
		}
	}

	open := make(map[string]bool, len(openIDs))
	for _, id := range openIDs {
		open[id] = true
	}
	switch {
	case open["london"] && open["newyork"]:
		return models.VolumeStatus{Level: models.TierVeryHigh, Class: "very-high", Color: colorDanger}
	case open["london"] && open["tokyo"]:
		return models.VolumeStatus{Level: models.TierHigh, Class: "high", Color: colorSuccess}
	case open["sydney"] && open["tokyo"]:
		return models.VolumeStatus{Level: models.TierMedium, Class: "medium", Color: colorAccent}
	default:
		return models.VolumeStatus{Level: models.TierHigh, Class: "high", Color: colorSuccess}
	}
}
