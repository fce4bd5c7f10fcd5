package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ipmark/ipmark/internal/flagx"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations are
// given in seconds so a config file stays readable.
type JSONConfig struct {
	BookmarksFile  string `json:"bookmarks_file"`
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout int    `json:"request_timeout"`
}

// parseJSON overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JSONConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Fields absent from the file leave the Config untouched. Read or unmarshal
// errors panic; configuration is resolved once at startup and a broken config
// file should stop the program there.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	applyJSON(cfg, data)
}

// applyJSON is split out so tests can feed raw config bytes.
func applyJSON(cfg *Config, data []byte) {
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BookmarksFile != "" {
		cfg.BookmarksFile = jc.BookmarksFile
	}
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
}
