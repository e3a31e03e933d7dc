package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if it exists; real environment
// variables keep precedence over file entries, as godotenv never overrides
// variables that are already set.
//
// Recognized variables:
//
//	WOMSHOP_BASE_URL   string
//	WOMSHOP_TIMEOUT    integer seconds
//	WOMSHOP_DB_PATH    string
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("WOMSHOP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("WOMSHOP_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("WOMSHOP_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
