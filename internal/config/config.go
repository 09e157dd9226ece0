/*
Package config loads process configuration from the environment.
A .env file in the working directory is read first when present.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config is the complete runtime configuration for the API process.
type Config struct {
	Port   int    `envconfig:"PORT" default:"8080"`
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	AppURL string `envconfig:"APP_URL" default:"http://localhost:8080"`

	// LogLevel accepts any zerolog level name.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	SessionSecret string   `envconfig:"SESSION_SECRET"`
	CORSOrigins   []string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`
	UploadDir     string   `envconfig:"UPLOAD_DIR" default:"uploads"`

	DB    DBConfig
	SMTP  SMTPConfig
	Ark   ArkConfig
	Gem   GeminiConfig
	OAuth OAuthConfig

	// ReferralDoctor is the clinician the chat companion refers patients to.
	ReferralDoctor string `envconfig:"REFERRAL_DOCTOR" default:"your healthcare provider"`
	// AppointmentNotify receives a copy of every appointment confirmation.
	AppointmentNotify string `envconfig:"APPOINTMENT_NOTIFY_EMAIL"`
}

type DBConfig struct {
	Host     string `envconfig:"BLUEPRINT_DB_HOST" default:"localhost"`
	Port     string `envconfig:"BLUEPRINT_DB_PORT" default:"5432"`
	Database string `envconfig:"BLUEPRINT_DB_DATABASE" default:"health_companion"`
	Username string `envconfig:"BLUEPRINT_DB_USERNAME" default:"postgres"`
	Password string `envconfig:"BLUEPRINT_DB_PASSWORD"`
	Schema   string `envconfig:"BLUEPRINT_DB_SCHEMA" default:"public"`
	MaxConns int32  `envconfig:"BLUEPRINT_DB_MAX_CONNS" default:"10"`
}

// DSN builds a pgx connection string.
func (d DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		d.Username, d.Password, d.Host, d.Port, d.Database, d.Schema)
}

type SMTPConfig struct {
	Host    string        `envconfig:"SMTP_HOST"`
	Port    int           `envconfig:"SMTP_PORT" default:"587"`
	User    string        `envconfig:"SMTP_USER"`
	Pass    string        `envconfig:"SMTP_PASS"`
	From    string        `envconfig:"SMTP_FROM"`
	Timeout time.Duration `envconfig:"SMTP_TIMEOUT" default:"15s"`
}

// Enabled reports whether enough SMTP settings are present to send mail.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.User != "" && s.Pass != ""
}

// Sender returns the From address, falling back to the SMTP user.
func (s SMTPConfig) Sender() string {
	if s.From != "" {
		return s.From
	}
	return s.User
}

type ArkConfig struct {
	BaseURL     string  `envconfig:"ARK_BASE_URL"`
	Region      string  `envconfig:"ARK_REGION"`
	APIKey      string  `envconfig:"ARK_API_KEY"`
	AccessKey   string  `envconfig:"ARK_ACCESS_KEY"`
	SecretKey   string  `envconfig:"ARK_SECRET_KEY"`
	Model       string  `envconfig:"ARK_MODEL"`
	MaxTokens   int     `envconfig:"ARK_MAX_TOKENS" default:"1000"`
	Temperature float32 `envconfig:"ARK_TEMPERATURE" default:"0.7"`
}

// Enabled reports whether credentials and a model are configured.
func (a ArkConfig) Enabled() bool {
	if a.Model == "" {
		return false
	}
	return a.APIKey != "" || (a.AccessKey != "" && a.SecretKey != "")
}

type GeminiConfig struct {
	APIKey  string `envconfig:"GEMINI_API_KEY"`
	BaseURL string `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Model   string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

type OAuthConfig struct {
	GoogleClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
}

// GoogleEnabled reports whether Google sign-in should be offered.
func (o OAuthConfig) GoogleEnabled() bool {
	return o.GoogleClientID != "" && o.GoogleClientSecret != ""
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.AppURL = strings.TrimRight(cfg.AppURL, "/")
	return &cfg, nil
}

// IsProduction reports whether the process runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Validate checks the settings the HTTP server cannot run without.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET environment variable is not set")
	}
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters")
	}
	return nil
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
