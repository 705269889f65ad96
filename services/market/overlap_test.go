package market

import (
	"testing"

	"github.com/itskavin/Forex-Market-Hours/models"
)

func TestAggregateStatus(t *testing.T) {
	tests := []struct {
		name    string
		openIDs []string
		want    models.VolumeTier
	}{
		{name: "none open", openIDs: nil, want: models.TierLow},
		{name: "sydney alone", openIDs: []string{"sydney"}, want: models.TierLow},
		{name: "tokyo alone", openIDs: []string{"tokyo"}, want: models.TierMedium},
		{name: "london alone", openIDs: []string{"london"}, want: models.TierHigh},
		{name: "new york alone", openIDs: []string{"newyork"}, want: models.TierHigh},
		{name: "london and new york", openIDs: []string{"london", "newyork"}, want: models.TierVeryHigh},
		{name: "london and tokyo", openIDs: []string{"tokyo", "london"}, want: models.TierHigh},
		{name: "sydney and tokyo", openIDs: []string{"sydney", "tokyo"}, want: models.TierMedium},
		{name: "london newyork beats london tokyo", openIDs: []string{"tokyo", "london", "newyork"}, want: models.TierVeryHigh},
		{name: "sydney tokyo london prefers london pair", openIDs: []string{"sydney", "tokyo", "london"}, want: models.TierHigh},
		{name: "unnamed pair falls back to high", openIDs: []string{"sydney", "newyork"}, want: models.TierHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateStatus(tt.openIDs)
			if got.Level != tt.want {
				t.Errorf("AggregateStatus(%v).Level = %q, want %q", tt.openIDs, got.Level, tt.want)
			}
			if got.Class == "" || got.Color == "" {
				t.Errorf("AggregateStatus(%v) missing class or color: %+v", tt.openIDs, got)
			}
		})
	}
}
