package provider

import (
	"context"

	"go.uber.org/zap"
)

// LogOnlySmsProvider is the startup-selected fallback when GREEN-API
// credentials are absent. It logs the message and reports success.
type LogOnlySmsProvider struct {
	logger *zap.Logger
}

func NewLogOnlySmsProvider(logger *zap.Logger) *LogOnlySmsProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogOnlySmsProvider{logger: logger}
}

func (p *LogOnlySmsProvider) SendSMS(_ context.Context, to, message string) (bool, error) {
	p.logger.Info("sms log-only mode",
		zap.String("to", to),
		zap.Int("messageLength", len(message)),
	)
	return true, nil
}
