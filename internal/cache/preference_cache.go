package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/redis/go-redis/v9"
)

// PreferenceCache is an advisory read-through cache for resolved preferences.
// The store stays authoritative: every upsert invalidates the entry, and a
// cache miss or failure just falls back to the repository.
type PreferenceCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPreferenceCache(rdb *redis.Client, ttl time.Duration) *PreferenceCache {
	return &PreferenceCache{rdb: rdb, ttl: ttl}
}

type cachedPreference struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Channel     string    `json:"channel"`
	Enabled     bool      `json:"enabled"`
	ContactInfo string    `json:"contactInfo"`
	CreatedOn   time.Time `json:"createdOn"`
	UpdatedOn   time.Time `json:"updatedOn"`
}

func preferenceKey(userID string) string {
	return fmt.Sprintf("pref:%s", userID)
}

// Get returns the cached preference, or (nil, nil) on a miss.
func (c *PreferenceCache) Get(ctx context.Context, userID string) (*domain.Preference, error) {
	raw, err := c.rdb.Get(ctx, preferenceKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var val cachedPreference
	if err := json.Unmarshal(raw, &val); err != nil {
		return nil, err
	}

	return &domain.Preference{
		ID:          val.ID,
		UserID:      val.UserID,
		Channel:     domain.Channel(val.Channel),
		Enabled:     val.Enabled,
		ContactInfo: val.ContactInfo,
		CreatedOn:   val.CreatedOn,
		UpdatedOn:   val.UpdatedOn,
	}, nil
}

func (c *PreferenceCache) Set(ctx context.Context, p *domain.Preference) error {
	if p == nil {
		return nil
	}

	val := cachedPreference{
		ID:          p.ID,
		UserID:      p.UserID,
		Channel:     p.Channel.String(),
		Enabled:     p.Enabled,
		ContactInfo: p.ContactInfo,
		CreatedOn:   p.CreatedOn.UTC(),
		UpdatedOn:   p.UpdatedOn.UTC(),
	}

	b, err := json.Marshal(val)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, preferenceKey(p.UserID), b, c.ttl).Err()
}

func (c *PreferenceCache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, preferenceKey(userID)).Err()
}
