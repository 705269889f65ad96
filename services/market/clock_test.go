package market

import (
	"errors"
	"testing"
	"time"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestCivilTimeIn(t *testing.T) {
	tests := []struct {
		name    string
		zone    string
		instant string
		hour    int
		minute  int
		weekday time.Weekday
	}{
		{name: "utc passthrough", zone: "UTC", instant: "2025-01-15T12:34:00Z", hour: 12, minute: 34, weekday: time.Wednesday},
		{name: "tokyo fixed offset", zone: "Asia/Tokyo", instant: "2025-01-15T12:34:00Z", hour: 21, minute: 34, weekday: time.Wednesday},
		{name: "new york standard time", zone: "America/New_York", instant: "2025-01-15T12:34:00Z", hour: 7, minute: 34, weekday: time.Wednesday},
		{name: "new york daylight time", zone: "America/New_York", instant: "2025-07-15T12:34:00Z", hour: 8, minute: 34, weekday: time.Tuesday},
		{name: "sydney daylight time", zone: "Australia/Sydney", instant: "2025-01-15T12:34:00Z", hour: 23, minute: 34, weekday: time.Wednesday},
		{name: "crosses calendar day", zone: "Asia/Tokyo", instant: "2025-01-15T20:00:00Z", hour: 5, minute: 0, weekday: time.Thursday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, err := CivilTimeIn(tt.zone, mustTime(t, tt.instant))
			if err != nil {
				t.Fatalf("CivilTimeIn: %v", err)
			}
			if ct.Hour != tt.hour || ct.Minute != tt.minute {
				t.Errorf("got %02d:%02d, want %02d:%02d", ct.Hour, ct.Minute, tt.hour, tt.minute)
			}
			if ct.Weekday != tt.weekday {
				t.Errorf("Weekday = %v, want %v", ct.Weekday, tt.weekday)
			}
		})
	}
}

func TestCivilTimeInInvalidZone(t *testing.T) {
	_, err := CivilTimeIn("Mars/Olympus_Mons", time.Now())
	if !errors.Is(err, ErrInvalidTimeZone) {
		t.Fatalf("expected ErrInvalidTimeZone, got %v", err)
	}
}

func TestParseWallClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "08:00", want: 480},
		{in: "23:59", want: 1439},
		{in: "9:05", want: 545},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseWallClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWallClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseWallClock(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseWallClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestValidateZones(t *testing.T) {
	if err := ValidateZones(DefaultCatalog(), "UTC", "Europe/Paris"); err != nil {
		t.Fatalf("valid zones rejected: %v", err)
	}
	if err := ValidateZones(nil, "Not/AZone"); !errors.Is(err, ErrInvalidTimeZone) {
		t.Fatalf("expected ErrInvalidTimeZone, got %v", err)
	}
}

func TestValidateCatalog(t *testing.T) {
	if err := ValidateCatalog(DefaultCatalog()); err != nil {
		t.Fatalf("default catalog rejected: %v", err)
	}
	bad := DefaultCatalog()
	bad[1].ID = bad[0].ID
	if err := ValidateCatalog(bad); err == nil {
		t.Fatal("duplicate id accepted")
	}
}
