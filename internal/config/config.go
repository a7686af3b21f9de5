package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the full process configuration, parsed once in main and passed
// into constructors. Nothing else reads the environment.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	LogMode string `env:"LOG_MODE" envDefault:"development"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	// Google Sheets access. CredentialsJSON wins over CredentialsFile when
	// both are set. The store degrades to fallback reads when any of these
	// is missing.
	SpreadsheetID   string `env:"GOOGLE_SHEET_ID"`
	CredentialsJSON string `env:"GOOGLE_APPLICATION_CREDENTIALS_JSON"`
	CredentialsFile string `env:"GOOGLE_APPLICATION_CREDENTIALS"`

	CatalogSheet string `env:"CATALOG_SHEET" envDefault:"Games"`
	RatingsSheet string `env:"RATINGS_SHEET" envDefault:"UsersRatings"`

	AdminUsername     string `env:"ADMIN_USERNAME"`
	AdminPassword     string `env:"ADMIN_PASSWORD"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	SessionSecret string        `env:"ADMIN_SESSION_SECRET"`
	SessionTTL    time.Duration `env:"ADMIN_SESSION_TTL" envDefault:"12h"`
	CookieSecure  bool          `env:"COOKIE_SECURE"`

	ProbeTimeout time.Duration `env:"PREVIEW_PROBE_TIMEOUT" envDefault:"8s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionSecret == "" {
		// Matches the historical behavior of deriving the signing key from
		// the admin password when no dedicated secret is configured.
		cfg.SessionSecret = cfg.AdminPassword
	}
	return cfg, nil
}

// StoreConfigured reports whether the spreadsheet connection has everything
// it needs. When false, every store call fails as unavailable and public
// reads serve the fallback catalog.
func (c *Config) StoreConfigured() bool {
	return c.SpreadsheetID != "" && (c.CredentialsJSON != "" || c.CredentialsFile != "")
}
