package preferences

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/itskavin/Forex-Market-Hours/models"
)

const (
	fieldTheme  = "theme"
	fieldFormat = "format"
	fieldZone   = "referenceZone"
)

// RedisPreferenceService stores preferences as one redis hash per
// client, mirroring the key-value contract of a browser's localStorage.
type RedisPreferenceService struct {
	Client      *redis.Client
	DefaultZone string
	TTL         time.Duration
	Logger      *zap.Logger
}

func NewRedisPreferenceService(client *redis.Client, defaultZone string, ttl time.Duration, logger *zap.Logger) *RedisPreferenceService {
	return &RedisPreferenceService{Client: client, DefaultZone: defaultZone, TTL: ttl, Logger: logger}
}

func prefsKey(clientID string) string {
	return fmt.Sprintf("prefs:%s", clientID)
}

func (s *RedisPreferenceService) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	if clientID == "" {
		return Defaults(s.DefaultZone), nil
	}
	fields, err := s.Client.HGetAll(ctx, prefsKey(clientID)).Result()
	if err != nil {
		return models.Preferences{}, fmt.Errorf("preferences: read %q: %w", clientID, err)
	}
	stored := models.Preferences{
		Theme:         fields[fieldTheme],
		TimeFormat:    fields[fieldFormat],
		ReferenceZone: fields[fieldZone],
	}
	clean := Sanitize(stored, s.DefaultZone)
	if len(fields) > 0 && clean != stored && s.Logger != nil {
		s.Logger.Debug("recovered malformed stored preferences",
			zap.String("clientID", clientID))
	}
	return clean, nil
}

func (s *RedisPreferenceService) Set(ctx context.Context, clientID string, prefs models.Preferences) error {
	if clientID == "" {
		return fmt.Errorf("%w: empty client id", ErrInvalidPreferenceValue)
	}
	if err := Validate(prefs); err != nil {
		return err
	}
	key := prefsKey(clientID)
	if err := s.Client.HSet(ctx, key,
		fieldTheme, prefs.Theme,
		fieldFormat, prefs.TimeFormat,
		fieldZone, prefs.ReferenceZone,
	).Err(); err != nil {
		return fmt.Errorf("preferences: write %q: %w", clientID, err)
	}
	if s.TTL > 0 {
		if err := s.Client.Expire(ctx, key, s.TTL).Err(); err != nil {
			return fmt.Errorf("preferences: expire %q: %w", clientID, err)
		}
	}
	return nil
}
