package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.ensureBaseURL(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RESTOPOS_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"RESTOPOS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RESTOPOS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the client at the backend REST service.
type APIConfig struct {
	BaseURL string        `envconfig:"RESTOPOS_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"RESTOPOS_API_TIMEOUT" default:"30s"`
}

func (a *APIConfig) ensureBaseURL() error {
	raw := strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if raw == "" {
		return fmt.Errorf("api base url is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("api base url must be http or https, got %q", parsed.Scheme)
	}
	a.BaseURL = raw
	return nil
}

// SessionConfig seeds the bearer token used on every API call.
type SessionConfig struct {
	Token string `envconfig:"RESTOPOS_API_TOKEN"`

	BranchID  string `envconfig:"RESTOPOS_BRANCH_ID"`
	CompanyID string `envconfig:"RESTOPOS_COMPANY_ID"`
}
