package config

import "time"

// Config holds runtime settings for the Smart Fit client.
//
// Fields:
//   - APIBaseURL: base URL of the Smart Fit HTTP API, including the /api
//     prefix.
//   - RequestTimeout: per-request timeout. Requests have no other bound and
//     are never retried.
//   - CredentialDBPath: path to the local SQLite file holding the persisted
//     credential slot.
//   - RefreshThreshold: how close to expiry a session must be before the
//     client proactively refreshes the token.
type Config struct {
	APIBaseURL       string
	RequestTimeout   time.Duration
	CredentialDBPath string
	RefreshThreshold time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.CredentialDBPath = "smartfit.db"
	c.RefreshThreshold = 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
