package config

import (
	"fmt"

	"github.com/Netflix/go-env"
)

type Config struct {
	DatabaseDSN string `env:"DATABASE_DSN,required=true"`
	RedisURL    string `env:"REDIS_URL,required=true"`
	APIPort     int    `env:"API_PORT,default=8080"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT,default=587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	// GREEN-API credentials; when instance id or token are blank the SMS
	// provider runs in log-only mode.
	GreenAPIURL        string `env:"GREEN_API_URL,default=https://api.green-api.com"`
	GreenAPIInstanceID string `env:"GREEN_API_INSTANCE_ID"`
	GreenAPIToken      string `env:"GREEN_API_TOKEN"`

	// Country code prepended to national numbers with a leading zero.
	SMSDefaultCountryCode string `env:"SMS_DEFAULT_COUNTRY_CODE,default=359"`

	PreferenceCacheTTLSeconds int `env:"PREFERENCE_CACHE_TTL_SECONDS,default=300"`
}

func Load() (*Config, error) {
	var cfg Config
	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// SMSConfigured reports whether real GREEN-API credentials are present.
func (c *Config) SMSConfigured() bool {
	return c.GreenAPIInstanceID != "" && c.GreenAPIToken != ""
}
