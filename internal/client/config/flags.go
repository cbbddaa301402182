package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/blogfolio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     base URL of the blog API
//	-alt string   alternate host for content recovery
//	-d string     local database path
//	-r string     Redis address
//	-p string     fallback policy
//	-i int        online check interval (seconds)
//	-v            debug logging
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// loaders (-c, -e) do not fail the parse.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-alt", "-d", "-r", "-p", "-i", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the blog API")
	fs.StringVar(&cfg.AlternateBaseURL, "alt", cfg.AlternateBaseURL, "alternate host for content recovery")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address for the posts cache")
	fs.StringVar(&cfg.FallbackPolicy, "p", cfg.FallbackPolicy, "fallback policy (seed, propagate, retry)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	verbose := fs.Bool("v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	if *verbose {
		cfg.LogLevel = "debug"
	}
}
