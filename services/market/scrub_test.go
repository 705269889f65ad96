package market

import (
	"testing"
	"time"

	"github.com/itskavin/Forex-Market-Hours/models"
)

func TestInstantFromFraction(t *testing.T) {
	realNow := mustTime(t, "2025-01-15T12:34:56Z")

	got, err := InstantFromFraction(0.5, "UTC", realNow)
	if err != nil {
		t.Fatalf("InstantFromFraction: %v", err)
	}
	if want := mustTime(t, "2025-01-15T12:00:00Z"); !got.Equal(want) {
		t.Errorf("frac 0.5 = %v, want %v", got, want)
	}

	// Fraction zero lands on the reference zone's midnight.
	got, err = InstantFromFraction(0, "Asia/Tokyo", realNow)
	if err != nil {
		t.Fatalf("InstantFromFraction: %v", err)
	}
	ct, err := CivilTimeIn("Asia/Tokyo", got)
	if err != nil {
		t.Fatalf("CivilTimeIn: %v", err)
	}
	if ct.MinutesSinceMidnight() != 0 {
		t.Errorf("frac 0 in Tokyo reads %02d:%02d, want 00:00", ct.Hour, ct.Minute)
	}

	// Fraction one clamps to the last minute of the same day.
	got, err = InstantFromFraction(1, "UTC", realNow)
	if err != nil {
		t.Fatalf("InstantFromFraction: %v", err)
	}
	if want := mustTime(t, "2025-01-15T23:59:00Z"); !got.Equal(want) {
		t.Errorf("frac 1 = %v, want %v", got, want)
	}

	// Out-of-range input clamps instead of erroring.
	got, err = InstantFromFraction(-3, "UTC", realNow)
	if err != nil {
		t.Fatalf("InstantFromFraction: %v", err)
	}
	if want := mustTime(t, "2025-01-15T00:00:00Z"); !got.Equal(want) {
		t.Errorf("frac -3 = %v, want %v", got, want)
	}
}

func TestInstantFromFractionInvalidZone(t *testing.T) {
	if _, err := InstantFromFraction(0.5, "Nope/Nowhere", time.Now()); err == nil {
		t.Fatal("expected error for unknown zone")
	}
}

// Projecting a session, picking a point inside a drawn segment, and
// feeding the fraction back through the scrub mapping must land on an
// instant where the session is open.
func TestScrubProjectRoundTrip(t *testing.T) {
	realNow := mustTime(t, "2025-07-15T12:00:00Z")
	refZone := "America/New_York"
	sessions := []models.Session{
		{ID: "london", TimeZone: "Europe/London", OpenLocal: "08:00", CloseLocal: "17:00"},
		{ID: "sydney", TimeZone: "Australia/Sydney", OpenLocal: "08:00", CloseLocal: "17:00"},
		{ID: "overnight", TimeZone: "UTC", OpenLocal: "22:00", CloseLocal: "06:00"},
	}
	for _, sess := range sessions {
		t.Run(sess.ID, func(t *testing.T) {
			segs, err := Project(sess, refZone, realNow)
			if err != nil {
				t.Fatalf("Project: %v", err)
			}
			if len(segs) == 0 {
				t.Fatal("no segments")
			}
			for _, seg := range segs {
				mid := (seg.Start + seg.End) / 2
				at, err := InstantFromFraction(mid, refZone, realNow)
				if err != nil {
					t.Fatalf("InstantFromFraction: %v", err)
				}
				status, err := Evaluate(sess, at)
				if err != nil {
					t.Fatalf("Evaluate: %v", err)
				}
				if !status.IsOpen {
					t.Errorf("session closed at segment midpoint %f (instant %v)", mid, at)
				}
			}
		})
	}
}
