package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	AppEnv   string // dev | prod
	HTTPAddr string
	DBDSN    string
	Currency string // ISO code for display amounts

	JWTSecret string
	JWTTTL    time.Duration

	SendGrid SendGridConfig
	SMTP     SMTPConfig
	Twilio   TwilioConfig

	StatsPollInterval time.Duration
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Configured reports whether both values the outbound-email path needs are
// present. Missing config is a normal state, not an error.
func (c SendGridConfig) Configured() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

type SMTPConfig struct {
	Host          string
	Port          string
	User          string
	Pass          string
	TLSMode       string // "", "tls", "starttls"
	SkipVerifyTLS bool
}

type TwilioConfig struct {
	AccountSID          string
	AuthToken           string
	MessagingServiceSID string
	BaseURL             string // override for tests; empty = Twilio API
}

func (c TwilioConfig) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.MessagingServiceSID != ""
}

// FromEnv builds the config from environment variables. Only DB_DSN and
// JWT_SECRET are hard requirements; everything else has a usable default
// or degrades a feature (email/SMS) to not-configured.
func FromEnv() (Config, error) {
	cfg := Config{
		AppEnv:   envOr("APP_ENV", "dev"),
		HTTPAddr: envOr("HTTP_ADDR", ":8080"),
		DBDSN:    os.Getenv("DB_DSN"),
		Currency: envOr("CURRENCY", "DKK"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    durationOr("JWT_TTL", 12*time.Hour),

		SendGrid: SendGridConfig{
			APIKey:    os.Getenv("SENDGRID_API_KEY"),
			FromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
			FromName:  envOr("SENDGRID_FROM_NAME", "Smartbuy"),
		},
		SMTP: SMTPConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          envOr("SMTP_PORT", "1025"),
			User:          os.Getenv("SMTP_USER"),
			Pass:          os.Getenv("SMTP_PASS"),
			TLSMode:       os.Getenv("SMTP_TLS_MODE"),
			SkipVerifyTLS: os.Getenv("SMTP_SKIP_VERIFY_TLS") == "1",
		},
		Twilio: TwilioConfig{
			AccountSID:          os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:           os.Getenv("TWILIO_AUTH_TOKEN"),
			MessagingServiceSID: os.Getenv("TWILIO_MESSAGING_SERVICE_SID"),
			BaseURL:             os.Getenv("TWILIO_BASE_URL"),
		},

		StatsPollInterval: durationOr("STATS_POLL_INTERVAL", 10*time.Second),
	}

	if cfg.DBDSN == "" {
		return Config{}, fmt.Errorf("DB_DSN environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	return cfg, nil
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func durationOr(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
