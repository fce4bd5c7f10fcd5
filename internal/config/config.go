package config

import "time"

// Config holds runtime settings for the ipmark application.
//
// Fields:
//   - BookmarksFile: path of the persisted bookmark list (JSON array).
//   - APIBaseURL: base URL of the geolocation API; lookups hit
//     <APIBaseURL>/<address>/json.
//   - RequestTimeout: per-lookup HTTP timeout.
//   - TaskReplaceWait: how long to wait for a superseded lookup task to wind
//     down before discarding it.
//   - ShutdownWait: how long shutdown waits for an in-flight task before
//     releasing it regardless.
type Config struct {
	BookmarksFile   string
	APIBaseURL      string
	RequestTimeout  time.Duration
	TaskReplaceWait time.Duration
	ShutdownWait    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BookmarksFile = "ip_bookmarks.json"
	c.APIBaseURL = "https://ipinfo.io"
	c.RequestTimeout = 10 * time.Second
	c.TaskReplaceWait = 1 * time.Second
	c.ShutdownWait = 1500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (dotenv-aware), a JSON file (if present) and command-line
// flags (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
