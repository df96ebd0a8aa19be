package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minimalism94/notification-svc/internal/domain"
	"github.com/minimalism94/notification-svc/internal/observability"
	"github.com/minimalism94/notification-svc/internal/provider"
	"github.com/minimalism94/notification-svc/internal/repository"
	"go.uber.org/zap"
)

// PreferenceResolver is the dispatcher's view of the preference service.
type PreferenceResolver interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Preference, error)
}

type SendRequest struct {
	UserID  string
	Subject string
	Body    string
}

type NotificationService struct {
	preferences   PreferenceResolver
	notifications repository.NotificationRepository
	mailer        provider.Mailer
	sms           provider.SmsProvider
	metrics       *observability.Metrics
	logger        *zap.Logger
	now           func() time.Time
}

func NewNotificationService(
	preferences PreferenceResolver,
	notifications repository.NotificationRepository,
	mailer provider.Mailer,
	sms provider.SmsProvider,
	metrics *observability.Metrics,
	logger *zap.Logger,
) (*NotificationService, error) {
	if preferences == nil {
		return nil, fmt.Errorf("preference resolver is required")
	}
	if notifications == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if sms == nil {
		return nil, fmt.Errorf("sms provider is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationService{
		preferences:   preferences,
		notifications: notifications,
		mailer:        mailer,
		sms:           sms,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}, nil
}

// Send resolves the user's preference, enforces the enabled gate, attempts
// delivery on the preferred channel, and persists the outcome. Only the two
// precondition failures escape as errors: ErrNotFound (no preference) and
// ErrDisabled (gate closed, before any record exists). Every failure past
// the gate is data, not an error: the attempt is recorded as FAILED and the
// record is returned.
func (s *NotificationService) Send(ctx context.Context, req SendRequest) (*domain.Notification, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}

	pref, err := s.preferences.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !pref.Enabled {
		return nil, fmt.Errorf("%w: user %s turned off their notifications", domain.ErrDisabled, userID)
	}

	notification := &domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Channel:   pref.Channel,
		Subject:   req.Subject,
		Body:      req.Body,
		Deleted:   false,
		CreatedOn: s.now().UTC(),
	}

	notification.Status = s.dispatch(ctx, pref, req)

	if notification.Status == domain.StatusSucceeded {
		s.metrics.IncNotificationSent(pref.Channel.String())
	} else {
		s.metrics.IncNotificationFailed(pref.Channel.String())
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to persist notification record: %w", err)
	}

	return notification, nil
}

// dispatch performs the actual delivery attempt and classifies the outcome.
// It never returns an error: transport failures of any kind are logged and
// downgraded to FAILED.
func (s *NotificationService) dispatch(ctx context.Context, pref *domain.Preference, req SendRequest) domain.Status {
	switch pref.Channel {
	case domain.ChannelEmail:
		if err := s.mailer.Send(ctx, pref.ContactInfo, req.Subject, req.Body); err != nil {
			s.logger.Error("email delivery failed",
				zap.String("userId", pref.UserID),
				zap.Error(err),
			)
			return domain.StatusFailed
		}
		s.logger.Info("email delivered",
			zap.String("userId", pref.UserID),
		)
		return domain.StatusSucceeded

	case domain.ChannelSMS:
		delivered, err := s.sms.SendSMS(ctx, pref.ContactInfo, req.Body)
		if err != nil {
			s.logger.Error("sms delivery failed",
				zap.String("userId", pref.UserID),
				zap.Error(err),
			)
			return domain.StatusFailed
		}
		if !delivered {
			s.logger.Error("sms rejected by provider",
				zap.String("userId", pref.UserID),
			)
			return domain.StatusFailed
		}
		s.logger.Info("sms delivered",
			zap.String("userId", pref.UserID),
		)
		return domain.StatusSucceeded

	default:
		// Unreachable with a valid preference, but an unknown channel must
		// never escape as an error.
		s.logger.Warn("unknown notification channel",
			zap.String("userId", pref.UserID),
			zap.String("channel", pref.Channel.String()),
		)
		return domain.StatusFailed
	}
}

// GetHistory returns the user's non-deleted send attempts as an eagerly
// materialized list. A user with no records gets an empty slice, not an
// error.
func (s *NotificationService) GetHistory(ctx context.Context, userID string) ([]domain.Notification, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", domain.ErrValidation)
	}

	records, err := s.notifications.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	history := make([]domain.Notification, 0, len(records))
	for _, record := range records {
		if record.Deleted {
			continue
		}
		history = append(history, record)
	}

	return history, nil
}
