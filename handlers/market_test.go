package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/itskavin/Forex-Market-Hours/models"
	"github.com/itskavin/Forex-Market-Hours/services/market"
	"github.com/itskavin/Forex-Market-Hours/services/preferences"
)

// memoryPrefs is an in-memory stand-in for the redis preference store.
type memoryPrefs struct {
	data map[string]models.Preferences
}

func newMemoryPrefs() *memoryPrefs {
	return &memoryPrefs{data: make(map[string]models.Preferences)}
}

func (m *memoryPrefs) Get(_ context.Context, clientID string) (models.Preferences, error) {
	if p, ok := m.data[clientID]; ok {
		return preferences.Sanitize(p, "UTC"), nil
	}
	return preferences.Defaults("UTC"), nil
}

func (m *memoryPrefs) Set(_ context.Context, clientID string, prefs models.Preferences) error {
	if err := preferences.Validate(prefs); err != nil {
		return err
	}
	m.data[clientID] = prefs
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := market.NewDefaultMarketService(market.DefaultCatalog())
	prefs := newMemoryPrefs()
	mh := NewMarketHandler(svc, prefs)
	ph := NewPreferenceHandler(prefs)

	r := gin.New()
	api := r.Group("/api/market")
	api.GET("/snapshot", mh.SnapshotHandler)
	api.GET("/sessions", mh.SessionsHandler)
	api.GET("/scrub", mh.ScrubHandler)
	api.GET("/volume", mh.VolumeHandler)
	r.GET("/api/preferences", ph.GetPreferencesHandler)
	r.PUT("/api/preferences", ph.SetPreferencesHandler)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSnapshotHandler(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/market/snapshot?at=2025-01-15T14:30:00Z&tz=UTC", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var frame models.Frame
	if err := json.Unmarshal(w.Body.Bytes(), &frame); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(frame.Cards) != 4 {
		t.Errorf("got %d cards, want 4", len(frame.Cards))
	}
	if !frame.Clock.Scrubbing {
		t.Error("an explicit at parameter should mark the frame as scrubbed")
	}
	if frame.Volume.Level != models.TierVeryHigh {
		t.Errorf("Volume.Level = %q, want %q", frame.Volume.Level, models.TierVeryHigh)
	}
}

func TestSnapshotHandlerLiveInstant(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/market/snapshot", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var frame models.Frame
	if err := json.Unmarshal(w.Body.Bytes(), &frame); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if frame.Clock.Scrubbing {
		t.Error("live frame marked as scrubbed")
	}
}

func TestSnapshotHandlerRejectsBadInput(t *testing.T) {
	r := newTestRouter()
	if w := doRequest(t, r, http.MethodGet, "/api/market/snapshot?tz=Bad/Zone", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad tz: status = %d, want 400", w.Code)
	}
	if w := doRequest(t, r, http.MethodGet, "/api/market/snapshot?at=yesterday", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad at: status = %d, want 400", w.Code)
	}
}

func TestScrubHandler(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/market/scrub?frac=0.5&tz=UTC", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var frame models.Frame
	if err := json.Unmarshal(w.Body.Bytes(), &frame); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !frame.Clock.Scrubbing {
		t.Error("scrub frame not marked as scrubbed")
	}
	if frame.Clock.Time != "12:00:00" {
		t.Errorf("Clock.Time = %q, want 12:00:00", frame.Clock.Time)
	}

	for _, bad := range []string{"", "1.5", "-0.1", "abc", "NaN", "+Inf", "-Inf"} {
		w := doRequest(t, r, http.MethodGet, "/api/market/scrub?frac="+bad, "")
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("frac %q: status = %d, want 422", bad, w.Code)
		}
	}
}

func TestSessionsHandler(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/market/sessions", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Sessions []models.Session `json:"sessions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Sessions) != 4 {
		t.Errorf("got %d sessions, want 4", len(body.Sessions))
	}
}

func TestVolumeHandler(t *testing.T) {
	r := newTestRouter()
	w := doRequest(t, r, http.MethodGet, "/api/market/volume?at=2025-01-15T14:00:00Z", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var reading models.VolumeReading
	if err := json.Unmarshal(w.Body.Bytes(), &reading); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if reading.Value != 95 || reading.Tier != models.TierVeryHigh {
		t.Errorf("reading = %+v, want value 95 tier Very High", reading)
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	r := newTestRouter()

	// A first visit mints a client id.
	w := doRequest(t, r, http.MethodGet, "/api/preferences", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got struct {
		Client      string             `json:"client"`
		Preferences models.Preferences `json:"preferences"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Client == "" {
		t.Fatal("no client id minted")
	}
	if got.Preferences != preferences.Defaults("UTC") {
		t.Errorf("preferences = %+v, want defaults", got.Preferences)
	}

	// Store and read back.
	body := `{"theme":"dark","timeFormat":"12h","referenceZone":"Asia/Tokyo"}`
	if w := doRequest(t, r, http.MethodPut, "/api/preferences?client="+got.Client, body); w.Code != http.StatusOK {
		t.Fatalf("put status = %d, want 200: %s", w.Code, w.Body.String())
	}
	w = doRequest(t, r, http.MethodGet, "/api/preferences?client="+got.Client, "")
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Preferences.Theme != "dark" || got.Preferences.TimeFormat != "12h" || got.Preferences.ReferenceZone != "Asia/Tokyo" {
		t.Errorf("round trip = %+v", got.Preferences)
	}
}

func TestSetPreferencesRejectsInvalid(t *testing.T) {
	r := newTestRouter()
	if w := doRequest(t, r, http.MethodPut, "/api/preferences", `{"theme":"dark"}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing client: status = %d, want 400", w.Code)
	}
	body := `{"theme":"neon","timeFormat":"24h","referenceZone":"UTC"}`
	if w := doRequest(t, r, http.MethodPut, "/api/preferences?client=abc", body); w.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid theme: status = %d, want 422", w.Code)
	}
}

func TestResolveInstantDefaultsToNow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/market/snapshot", nil)
	instant, scrubbing, ok := resolveInstant(c)
	if !ok || scrubbing {
		t.Fatalf("ok = %v scrubbing = %v, want true false", ok, scrubbing)
	}
	if time.Since(instant) > time.Minute {
		t.Errorf("instant %v not close to now", instant)
	}
}
