package config

import "time"

// Config holds runtime settings for the blogfolio CLI.
type Config struct {
	APIBaseURL        string
	AlternateBaseURL  string
	DatabasePath      string
	RedisAddr         string
	FallbackPolicy    string
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	RecoveryTimeout   time.Duration
	CacheTTL          time.Duration
	SubmitInterval    time.Duration
	RecoveryEndpoints []string
	LogLevel          string

	// OnlineCheckInterval is how often the CLI probes the health endpoint.
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.AlternateBaseURL = ""
	c.DatabasePath = "blogfolio.db"
	c.RedisAddr = ""
	c.FallbackPolicy = "seed"
	c.ReadTimeout = 5 * time.Second
	c.WriteTimeout = 8 * time.Second
	c.RecoveryTimeout = 3 * time.Second
	c.CacheTTL = 10 * time.Minute
	c.SubmitInterval = 5 * time.Second
	c.RecoveryEndpoints = nil
	c.LogLevel = "info"
	c.OnlineCheckInterval = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
