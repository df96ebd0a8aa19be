package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/minimalism94/notification-svc/internal/observability"
	"github.com/minimalism94/notification-svc/internal/repository"
	"go.uber.org/zap"
)

// PreferenceCache is the advisory cache port; nil disables caching.
type PreferenceCache interface {
	Get(ctx context.Context, userID string) (*domain.Preference, error)
	Set(ctx context.Context, p *domain.Preference) error
	Invalidate(ctx context.Context, userID string) error
}

type UpsertPreferenceRequest struct {
	UserID      string
	Enabled     bool
	ContactInfo string
	// Channel overrides detection when set; when nil the channel is
	// re-derived from ContactInfo even for existing preferences, so an
	// upsert without an explicit channel can flip EMAIL to SMS and back.
	Channel *domain.Channel
}

type PreferenceService struct {
	preferences repository.PreferenceRepository
	cache       PreferenceCache
	metrics     *observability.Metrics
	logger      *zap.Logger
	now         func() time.Time
}

func NewPreferenceService(
	preferences repository.PreferenceRepository,
	cache PreferenceCache,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*PreferenceService, error) {
	if preferences == nil {
		return nil, fmt.Errorf("preference repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &PreferenceService{
		preferences: preferences,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Upsert creates or overwrites the single preference row for the user.
// CreatedOn is set once; UpdatedOn advances on every call, no-op updates
// included. Concurrent first-time upserts are resolved by the store's
// unique constraint on user_id, not by locking here.
func (s *PreferenceService) Upsert(ctx context.Context, req UpsertPreferenceRequest) (*domain.Preference, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}

	channel := resolveChannel(req.Channel, req.ContactInfo)
	now := s.now().UTC()

	existing, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	var pref *domain.Preference
	if existing != nil {
		existing.Enabled = req.Enabled
		existing.ContactInfo = req.ContactInfo
		existing.Channel = channel
		existing.UpdatedOn = now
		pref = existing
	} else {
		pref = &domain.Preference{
			ID:          uuid.NewString(),
			UserID:      userID,
			Channel:     channel,
			Enabled:     req.Enabled,
			ContactInfo: req.ContactInfo,
			CreatedOn:   now,
			UpdatedOn:   now,
		}
	}

	if err := pref.Validate(); err != nil {
		return nil, err
	}

	if err := s.preferences.Save(ctx, pref); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, userID)

	s.logger.Info("preference upserted",
		zap.String("userId", userID),
		zap.String("channel", pref.Channel.String()),
		zap.Bool("enabled", pref.Enabled),
	)

	return pref, nil
}

// GetByUserID resolves the user's preference, serving from cache when it
// can. Returns domain.ErrNotFound when the user never configured
// notifications, which callers must keep distinct from "disabled".
func (s *PreferenceService) GetByUserID(ctx context.Context, userID string) (*domain.Preference, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			s.logger.Warn("preference cache read failed",
				zap.String("userId", userID),
				zap.Error(err),
			)
		}
		if cached != nil {
			s.metrics.IncPreferenceCacheHit()
			return cached, nil
		}
		s.metrics.IncPreferenceCacheMiss()
	}

	pref, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pref); err != nil {
			s.logger.Warn("preference cache write failed",
				zap.String("userId", userID),
				zap.Error(err),
			)
		}
	}

	return pref, nil
}

func (s *PreferenceService) invalidateCache(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn("preference cache invalidation failed",
			zap.String("userId", userID),
			zap.Error(err),
		)
	}
}

func resolveChannel(explicit *domain.Channel, contactInfo string) domain.Channel {
	if explicit != nil && explicit.IsValid() {
		return *explicit
	}
	return domain.DetectChannel(contactInfo)
}
