package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ipmark/ipmark/internal/flagx"
)

// Environment variables recognized by parseEnv.
const (
	envBookmarksFile  = "IPMARK_BOOKMARKS_FILE"
	envAPIBaseURL     = "IPMARK_API_BASE_URL"
	envRequestTimeout = "IPMARK_REQUEST_TIMEOUT" // seconds
)

// parseEnv overlays Config with values from the process environment. A dotenv
// file is loaded first (path from -e/-env, falling back to ./.env); variables
// already present in the environment win over the file, which is godotenv's
// default behavior. Unset variables leave the Config untouched.
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load()
	}

	applyEnv(cfg, os.Getenv)
}

// applyEnv is split out so tests can feed a fake environment.
func applyEnv(cfg *Config, getenv func(string) string) {
	if v := getenv(envBookmarksFile); v != "" {
		cfg.BookmarksFile = v
	}
	if v := getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(envRequestTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}
