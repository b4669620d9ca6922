package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Default values applied when neither the config file nor the environment
// provides a setting.
const (
	DefaultHTTPAddr    = ":8080"
	DefaultMetricsAddr = ":9090"
	DefaultCalendarID  = "primary"
	DefaultTimeZone    = "UTC"
	DefaultAccount     = "default"

	// DefaultRedirectURI is the out-of-band redirect used by the CLI
	// authorization-code flow.
	DefaultRedirectURI = "urn:ietf:wg:oauth:2.0:oob"
)

// Config holds all meetmint configuration. Values are resolved in order:
// hard defaults, then the optional TOML config file, then environment
// variables (optionally loaded from a .env file).
type Config struct {
	// Google OAuth client credentials. Supplied externally; never embedded.
	GoogleClientID     string `toml:"client_id" env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `toml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string `toml:"redirect_uri" env:"GOOGLE_REDIRECT_URI"`

	// HTTPAddr is the bind address of the JSON API server.
	HTTPAddr string `toml:"http_addr" env:"MEETMINT_HTTP_ADDR"`

	// Metrics server settings. MetricsEnabled is environment-only so the
	// envDefault can distinguish "unset" from an explicit false.
	MetricsEnabled bool   `toml:"-" env:"METRICS_ENABLED" envDefault:"true"`
	MetricsAddr    string `toml:"metrics_addr" env:"METRICS_ADDR"`

	// StorePath is the sqlite database file backing the meeting store.
	StorePath string `toml:"store_path" env:"MEETMINT_STORE_PATH"`

	// CalendarID is the calendar events are created in.
	CalendarID string `toml:"calendar_id" env:"MEETMINT_CALENDAR_ID"`

	// TimeZone is attached to event start/end times sent to the provider.
	TimeZone string `toml:"time_zone" env:"MEETMINT_TIMEZONE"`

	// Account is the named token slot used by the CLI token provider.
	Account string `toml:"account" env:"MEETMINT_ACCOUNT"`
}

// Path returns the location of the TOML config file. MEETMINT_CONFIG
// overrides the default of ~/.config/meetmint/config.toml.
func Path() string {
	if p := os.Getenv("MEETMINT_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "meetmint", "config.toml")
}

// Load resolves the full configuration. A missing config file is not an
// error; a malformed one is.
func Load() (*Config, error) {
	// .env is a development convenience; absence is expected in production.
	_ = godotenv.Load()

	cfg := &Config{}

	if path := Path(); path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	// Environment wins over the file. env.Parse only assigns fields whose
	// variables are actually set (plus envDefault-tagged booleans), so file
	// values survive unless overridden.
	overrides := &Config{}
	if err := env.Parse(overrides); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.merge(overrides)
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.GoogleClientID != "" {
		c.GoogleClientID = o.GoogleClientID
	}
	if o.GoogleClientSecret != "" {
		c.GoogleClientSecret = o.GoogleClientSecret
	}
	if o.GoogleRedirectURI != "" {
		c.GoogleRedirectURI = o.GoogleRedirectURI
	}
	if o.HTTPAddr != "" {
		c.HTTPAddr = o.HTTPAddr
	}
	c.MetricsEnabled = o.MetricsEnabled
	if o.MetricsAddr != "" {
		c.MetricsAddr = o.MetricsAddr
	}
	if o.StorePath != "" {
		c.StorePath = o.StorePath
	}
	if o.CalendarID != "" {
		c.CalendarID = o.CalendarID
	}
	if o.TimeZone != "" {
		c.TimeZone = o.TimeZone
	}
	if o.Account != "" {
		c.Account = o.Account
	}
}

func (c *Config) applyDefaults() {
	if c.GoogleRedirectURI == "" {
		c.GoogleRedirectURI = DefaultRedirectURI
	}
	if c.HTTPAddr == "" {
		c.HTTPAddr = DefaultHTTPAddr
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = DefaultMetricsAddr
	}
	if c.CalendarID == "" {
		c.CalendarID = DefaultCalendarID
	}
	if c.TimeZone == "" {
		c.TimeZone = DefaultTimeZone
	}
	if c.Account == "" {
		c.Account = DefaultAccount
	}
	if c.StorePath == "" {
		c.StorePath = defaultStorePath()
	}
}

// defaultStorePath places the sqlite database under the user data directory.
func defaultStorePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "meetmint.db"
	}
	return filepath.Join(dir, "meetmint", "meetmint.db")
}

// HasCredentials reports whether OAuth client credentials are configured.
func (c *Config) HasCredentials() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}
