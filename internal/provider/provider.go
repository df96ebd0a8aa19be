package provider

import (
	"context"

	"github.com/minimalism94/notification-svc/internal/config"
	"go.uber.org/zap"
)

// Mailer is the outbound email delivery port.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SmsProvider is the outbound SMS/chat delivery port. The boolean reports
// whether the provider accepted the message; an error means the call itself
// failed (network, malformed number).
type SmsProvider interface {
	SendSMS(ctx context.Context, to, message string) (bool, error)
}

// NewSmsProvider picks the SMS transport once, at startup: the real
// GREEN-API client when credentials are present, the log-only variant
// otherwise. The unconfigured mode is a distinct implementation, not a
// runtime branch inside the real one.
func NewSmsProvider(cfg *config.Config, logger *zap.Logger) (SmsProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.SMSConfigured() {
		logger.Warn("green-api credentials missing, sms provider runs in log-only mode")
		return NewLogOnlySmsProvider(logger), nil
	}

	logger.Info("sms provider using green-api",
		zap.String("instanceId", cfg.GreenAPIInstanceID),
	)
	return NewGreenAPIProvider(cfg.GreenAPIURL, cfg.GreenAPIInstanceID, cfg.GreenAPIToken, cfg.SMSDefaultCountryCode, logger)
}
