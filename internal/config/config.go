package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Global singleton kept for call sites that cannot take injection (scheduler
// reload, init paths).
var globalConfig *Config

// Config holds all environment backed configuration for titan-server.
type Config struct {
	// HTTP Server
	HTTPPort    int    `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int    `env:"METRICS_PORT" envDefault:"9091"`
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Completion service
	CompletionAPIKey  string        `env:"COMPLETION_API_KEY"`
	CompletionBaseURL string        `env:"COMPLETION_BASE_URL" envDefault:"https://api.openai.com/v1"`
	CompletionModel   string        `env:"COMPLETION_MODEL" envDefault:"gpt-4o-mini"`
	CompletionTimeout time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`

	// Autonomy scheduler
	AutonomyEnabled         bool `env:"AUTONOMY_ENABLED" envDefault:"false"`
	AutonomyIntervalMinutes int  `env:"AUTONOMY_INTERVAL_MINUTES" envDefault:"15"`

	// Realtime
	RealtimeEnabled bool `env:"REALTIME_ENABLED" envDefault:"true"`

	// Secrets
	WebhookSecret    string `env:"WEBHOOK_SECRET"`
	CredentialSecret string `env:"CREDENTIAL_SECRET"`

	// Persona template catalog override (embedded catalog used when empty)
	PersonaTemplateFile string `env:"PERSONA_TEMPLATE_FILE"`

	// Observability / Logging
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	OTLPEndpoint     string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders      string        `env:"OTEL_EXPORTER_OTLP_HEADERS"`
	ServiceName      string        `env:"SERVICE_NAME" envDefault:"titan-server"`
	ServiceNamespace string        `env:"SERVICE_NAMESPACE" envDefault:"titan"`
	Environment      string        `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat        string        `env:"LOG_FORMAT" envDefault:"console"`

	// Features
	AutoMigrate   bool `env:"AUTO_MIGRATE" envDefault:"true"`
	EnableSwagger bool `env:"ENABLE_SWAGGER" envDefault:"true"`

	// Internal
	EnvReloadedAt time.Time
}

// Load parses environment variables into Config and performs minimal validation.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := url.ParseRequestURI(cfg.CompletionBaseURL); err != nil {
		return nil, fmt.Errorf("invalid COMPLETION_BASE_URL: %w", err)
	}

	if cfg.AutonomyIntervalMinutes <= 0 {
		return nil, fmt.Errorf("AUTONOMY_INTERVAL_MINUTES must be positive, got %d", cfg.AutonomyIntervalMinutes)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.EnvReloadedAt = time.Now()

	globalConfig = cfg

	return cfg, nil
}

// CompletionConfigured reports whether a completion credential is present.
// The chat pipeline degrades to a fallback reply when it is not.
func (c *Config) CompletionConfigured() bool {
	return strings.TrimSpace(c.CompletionAPIKey) != ""
}

// GetGlobal returns the global config instance.
// Deprecated: Use dependency injection with Load() instead.
func GetGlobal() *Config {
	return globalConfig
}

var Version = "dev"

func IsDev() bool {
	return strings.HasPrefix(Version, "dev")
}
