package preferences

import (
	"context"
	"errors"

	"github.com/itskavin/Forex-Market-Hours/models"
)

// ErrInvalidPreferenceValue indicates a submitted preference outside
// the accepted values. Malformed *stored* values never produce this
// error: reads recover to the documented defaults instead.
var ErrInvalidPreferenceValue = errors.New("invalid preference value")

// PreferenceService persists per-client display preferences.
type PreferenceService interface {
	// Get returns the client's preferences, substituting defaults for
	// any absent or malformed stored value.
	Get(ctx context.Context, clientID string) (models.Preferences, error)
	// Set validates and persists the given preferences.
	Set(ctx context.Context, clientID string, prefs models.Preferences) error
}
