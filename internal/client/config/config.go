package config

import "time"

// Config holds runtime settings for the WomShop CLI.
//
// Fields:
//   - BaseURL: root of the remote storefront API, no trailing slash.
//   - RequestTimeout: hard cap for a single HTTP request.
//   - DatabasePath: SQLite file holding the persisted session.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "https://dummyjson.com"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "womshop.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given via -c/-config), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
