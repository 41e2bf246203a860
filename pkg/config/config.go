package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"contact-relay/pkg/localtime"
)

// Environment variable names
const (
	EnvWebhookURL = "GOOGLE_CHAT_WEBHOOK_URL"
	EnvTimeZone   = "TIME_ZONE"
	EnvLocale     = "LOCALE"
	EnvDateStyle  = "DATE_STYLE"
	EnvTimeStyle  = "TIME_STYLE"
	EnvPort       = "PORT"
	EnvLogLevel   = "LOG_LEVEL"
	EnvGinMode    = "GIN_MODE"
)

// ErrInvalidConfig wraps every configuration failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration values.
// The webhook URL is deliberately absent; see TakeWebhookURL.
type Config struct {
	TimeZone  string          `validate:"required,timezone"`
	Locale    string          `validate:"required,locale"`
	DateStyle localtime.Style `validate:"oneof=full long medium short"`
	TimeStyle localtime.Style `validate:"oneof=full long medium short"`
	Port      string          `validate:"required,numeric"`
	LogLevel  string          `validate:"oneof=trace debug info warn error"`
	GinMode   string          `validate:"oneof=debug release test"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
		return localtime.SupportedLocale(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Option overrides a value after the environment has been read
type Option func(*Config)

// WithPort overrides PORT. An empty port leaves the environment value in place.
func WithPort(port string) Option {
	return func(c *Config) {
		if port = strings.TrimSpace(port); port != "" {
			c.Port = port
		}
	}
}

// LoadConfig reads configuration from environment variables, applying
// defaults for anything unset and then opts, and validates the result
func LoadConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		TimeZone:  getenv(EnvTimeZone, "America/Los_Angeles"),
		Locale:    getenv(EnvLocale, "en-US"),
		DateStyle: localtime.Style(getenv(EnvDateStyle, string(localtime.Medium))),
		TimeStyle: localtime.Style(getenv(EnvTimeStyle, string(localtime.Short))),
		Port:      getenv(EnvPort, "8080"),
		LogLevel:  strings.ToLower(getenv(EnvLogLevel, "info")),
		GinMode:   getenv(EnvGinMode, "release"),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, describe(err))
	}

	return cfg, nil
}

type webhookSecret struct {
	URL string `validate:"required,url"`
}

// TakeWebhookURL captures the chat webhook URL and removes it from the
// process environment. It is the only place the secret is read; callers hand
// it straight to the chat client. Errors never include the value.
func TakeWebhookURL() (string, error) {
	secret := webhookSecret{URL: strings.TrimSpace(os.Getenv(EnvWebhookURL))}
	if err := os.Unsetenv(EnvWebhookURL); err != nil {
		return "", fmt.Errorf("%w: unset %s: %v", ErrInvalidConfig, EnvWebhookURL, err)
	}

	if err := validate.Struct(secret); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && fieldErrs[0].Tag() == "required" {
			return "", fmt.Errorf("%w: %s is required", ErrInvalidConfig, EnvWebhookURL)
		}
		return "", fmt.Errorf("%w: %s must be a valid URL", ErrInvalidConfig, EnvWebhookURL)
	}

	return secret.URL, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

var envNames = map[string]string{
	"TimeZone":  EnvTimeZone,
	"Locale":    EnvLocale,
	"DateStyle": EnvDateStyle,
	"TimeStyle": EnvTimeStyle,
	"Port":      EnvPort,
	"LogLevel":  EnvLogLevel,
	"GinMode":   EnvGinMode,
}

func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := envNames[fe.Field()]
		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", name, fe.Param(), fe.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is not a valid %s: %q", name, fe.Tag(), fe.Value()))
		}
	}
	return strings.Join(msgs, "; ")
}
