package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*PreferenceCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPreferenceCache(rdb, 10*time.Second), mr
}

func TestPreferenceCache_SetGetRoundTrip(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	pref := &domain.Preference{
		ID:          "p-1",
		UserID:      "u-1",
		Channel:     domain.ChannelSMS,
		Enabled:     true,
		ContactInfo: "+359893454943",
		CreatedOn:   time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		UpdatedOn:   time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	}

	if err := c.Set(ctx, pref); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if !mr.Exists("pref:u-1") {
		t.Fatal("expected key pref:u-1 to exist")
	}
	if ttl := mr.TTL("pref:u-1"); ttl <= 0 {
		t.Fatalf("expected TTL to be set, got %v", ttl)
	}

	got, err := c.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil, want cached preference")
	}
	if got.Channel != domain.ChannelSMS {
		t.Fatalf("channel = %s, want SMS", got.Channel)
	}
	if got.ContactInfo != pref.ContactInfo {
		t.Fatalf("contactInfo = %q, want %q", got.ContactInfo, pref.ContactInfo)
	}
	if !got.CreatedOn.Equal(pref.CreatedOn) {
		t.Fatalf("createdOn = %v, want %v", got.CreatedOn, pref.CreatedOn)
	}
}

func TestPreferenceCache_GetMissReturnsNil(t *testing.T) {
	t.Parallel()

	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), "unknown")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Get() = %+v, want nil on miss", got)
	}
}

func TestPreferenceCache_Invalidate(t *testing.T) {
	t.Parallel()

	c, mr := newTestCache(t)
	ctx := context.Background()

	pref := &domain.Preference{ID: "p-1", UserID: "u-1", Channel: domain.ChannelEmail}
	if err := c.Set(ctx, pref); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := c.Invalidate(ctx, "u-1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}
	if mr.Exists("pref:u-1") {
		t.Fatal("expected key pref:u-1 to be removed")
	}
}
