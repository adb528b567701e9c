package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration values
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Decorative hero scene. Empty disables the viewer and leaves the overlay.
	SceneURL string `env:"SPLINE_SCENE_URL" envDefault:"https://prod.spline.design/LU2mWMPbF3Qi1Qxh/scene.splinecode"`

	SessionTTL   time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SessionSweep time.Duration `env:"SESSION_SWEEP" envDefault:"1m"`
	CookieSecure bool          `env:"COOKIE_SECURE" envDefault:"false"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Proxies (IPs or CIDRs) allowed to set X-Forwarded-For. Empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	WaitlistRatePerMin int `env:"WAITLIST_RATE_PER_MIN" envDefault:"30"`
	WaitlistBurst      int `env:"WAITLIST_BURST" envDefault:"10"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Airtable AirtableConfig
}

// AirtableConfig configures the optional waitlist sink.
type AirtableConfig struct {
	APIKey        string `env:"AIRTABLE_API_KEY"`
	BaseID        string `env:"AIRTABLE_BASE_ID"`
	WaitlistTable string `env:"AIRTABLE_WAITLIST_TABLE" envDefault:"Waitlist"`
	Endpoint      string `env:"AIRTABLE_ENDPOINT" envDefault:"https://api.airtable.com/v0"`
}

// Enabled reports whether signups should be forwarded to Airtable.
func (a AirtableConfig) Enabled() bool {
	return a.APIKey != "" && a.BaseID != ""
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if c.Port != "" && c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// LoadConfig reads .env files (missing files are ignored) and then the environment.
func LoadConfig(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot express.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.SessionTTL)
	}
	if c.SessionSweep <= 0 {
		return fmt.Errorf("SESSION_SWEEP must be positive, got %s", c.SessionSweep)
	}
	if c.WaitlistRatePerMin <= 0 || c.WaitlistBurst <= 0 {
		return errors.New("WAITLIST_RATE_PER_MIN and WAITLIST_BURST must be positive")
	}
	return nil
}
