package config

import (
	"flag"
	"os"
	"time"

	"github.com/ipmark/ipmark/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path of the bookmarks file (default from Config)
//	-u string   base URL of the geolocation API (default from Config)
//	-t int      lookup request timeout in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-u", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BookmarksFile, "f", cfg.BookmarksFile, "path of the bookmarks file")
	fs.StringVar(&cfg.APIBaseURL, "u", cfg.APIBaseURL, "base URL of the geolocation API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "lookup request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
