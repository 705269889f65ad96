package market

import (
	"fmt"
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// Strip and curve resolution for the timeline background.
const (
	stripSamples = 48 // one block per 30 minutes
	curveSamples = 97 // one point per 15 minutes, last clamped to 23:59
	curveWidth   = 960.0
	curveHeight  = 40.0
)

// MarketService computes complete render frames from an instant and the
// caller's display preferences. Implementations are stateless: every
// frame is recomputed from scratch, nothing carries over between ticks.
type MarketService interface {
	Sessions() []models.Session
	ComputeFrame(instant time.Time, scrubbing bool, prefs models.Preferences) (*models.Frame, error)
	ScrubFrame(frac float64, realNow time.Time, prefs models.Preferences) (*models.Frame, error)
}

// DefaultMarketService is the production implementation.
type DefaultMarketService struct {
	Catalog []models.Session
}

func NewDefaultMarketService(catalog []models.Session) *DefaultMarketService {
	return &DefaultMarketService{Catalog: catalog}
}

func (s *DefaultMarketService) Sessions() []models.Session {
	return s.Catalog
}

// ComputeFrame derives everything the dashboard draws for one instant.
func (s *DefaultMarketService) ComputeFrame(instant time.Time, scrubbing bool, prefs models.Preferences) (*models.Frame, error) {
	refZone := prefs.ReferenceZone
	is24 := prefs.Is24Hour()

	refCT, err := CivilTimeIn(refZone, instant)
	if err != nil {
		return nil, err
	}

	frame := &models.Frame{
		Clock: models.ClockInfo{
			Time:      formatClockInZone(refZone, instant, is24),
			Date:      refCT.DateLabel,
			Scrubbing: scrubbing,
		},
		Profile:        ReadProfile(instant),
		CursorFraction: frac(refCT.MinutesSinceMidnight()),
		ReferenceZone:  refZone,
		GeneratedAt:    time.Now().UTC(),
	}

	var openIDs []string
	for _, sess := range s.Catalog {
		status, err := Evaluate(sess, instant)
		if err != nil {
			return nil, err
		}
		if status.IsOpen {
			openIDs = append(openIDs, sess.ID)
		}

		card := models.SessionCard{
			ID:        sess.ID,
			Name:      sess.Name,
			Color:     sess.Color,
			LocalTime: formatClockInZone(sess.TimeZone, instant, is24),
			OpenHours: fmt.Sprintf("%s - %s", FormatWallClock(sess.OpenLocal, is24), FormatWallClock(sess.CloseLocal, is24)),
			IsOpen:    status.IsOpen,
			Countdown: formatCountdown(status),
		}
		if status.IsOpen {
			card.ProgressPct = status.Progress * 100
		}
		frame.Cards = append(frame.Cards, card)

		segs, err := Project(sess, refZone, instant)
		if err != nil {
			return nil, err
		}
		frame.Bars = append(frame.Bars, models.TimelineBar{
			SessionID: sess.ID,
			Name:      sess.Name,
			Color:     sess.Color,
			Segments:  segs,
		})
	}
	frame.Volume = AggregateStatus(openIDs)

	if frame.VolumeStrip, err = s.volumeStrip(refZone, instant); err != nil {
		return nil, err
	}
	if frame.VolumePath, err = VolumeCurvePath(refZone, instant, curveWidth, curveHeight, curveSamples); err != nil {
		return nil, err
	}
	return frame, nil
}

// ScrubFrame resolves a cursor fraction to an instant and computes the
// frame there. The scrubbed instant substitutes for real time in every
// evaluator downstream.
func (s *DefaultMarketService) ScrubFrame(frac float64, realNow time.Time, prefs models.Preferences) (*models.Frame, error) {
	at, err := InstantFromFraction(frac, prefs.ReferenceZone, realNow)
	if err != nil {
		return nil, err
	}
	return s.ComputeFrame(at, true, prefs)
}

// volumeStrip samples the overlap heuristic across the reference day,
// one block per half hour.
func (s *DefaultMarketService) volumeStrip(refZone string, instant time.Time) ([]models.VolumeSample, error) {
	strip := make([]models.VolumeSample, 0, stripSamples)
	for i := 0; i < stripSamples; i++ {
		f := float64(i) / stripSamples
		at, err := InstantFromFraction(f, refZone, instant)
		if err != nil {
			return nil, err
		}
		openIDs, err := OpenSessionIDs(s.Catalog, at)
		if err != nil {
			return nil, err
		}
		status := AggregateStatus(openIDs)
		strip = append(strip, models.VolumeSample{
			Fraction: f,
			Level:    status.Level,
			Class:    status.Class,
			Color:    status.Color,
		})
	}
	return strip, nil
}

// formatClockInZone renders an instant's wall clock in a zone. Zones
// reaching this point were validated upstream; on a racey failure the
// zone falls back to UTC rather than dropping the frame.
func formatClockInZone(zoneID string, instant time.Time, is24 bool) string {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		loc = time.UTC
	}
	if is24 {
		return instant.In(loc).Format("15:04:05")
	}
	return instant.In(loc).Format("3:04:05 PM")
}

// FormatWallClock renders a static "HH:MM" string per the time-format
// preference. Malformed input is returned unchanged.
func FormatWallClock(s string, is24 bool) string {
	if is24 {
		return s
	}
	minutes, err := ParseWallClock(s)
	if err != nil {
		return s
	}
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

func formatCountdown(status models.SessionStatus) string {
	h := status.MinutesToTransition / 60
	m := status.MinutesToTransition % 60
	if status.IsOpen {
		return fmt.Sprintf("Closes in %dh %dm", h, m)
	}
	return fmt.Sprintf("Opens in %dh %dm", h, m)
}
