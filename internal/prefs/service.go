package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flightplanner/internal/planner"
	"flightplanner/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports that no preferences are stored for the user.
var ErrNotFound = errors.New("preferences not found")

// Service persists per-user planner defaults as small JSON documents in the
// cache, keyed by user id. Preferences have no TTL; they live until
// overwritten.
type Service struct {
	cache cache.Cache
}

func NewService(cache cache.Cache) *Service {
	return &Service{
		cache: cache,
	}
}

func prefsKey(userID string) string {
	return "prefs:" + userID
}

func (s *Service) Get(ctx context.Context, userID string) (*planner.Preferences, error) {
	raw, err := s.cache.Get(ctx, prefsKey(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if raw == "" {
		return nil, ErrNotFound
	}

	var prefs planner.Preferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return nil, fmt.Errorf("failed to decode preferences: %w", err)
	}

	return &prefs, nil
}

func (s *Service) Put(ctx context.Context, userID string, prefs planner.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := s.cache.Set(ctx, prefsKey(userID), string(raw), 0); err != nil {
		return fmt.Errorf("failed to store preferences: %w", err)
	}

	return nil
}
