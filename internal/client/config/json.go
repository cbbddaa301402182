package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/blogfolio/internal/flagx"
	"github.com/dmitrijs2005/blogfolio/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	APIBaseURL        string         `json:"api_base_url"`
	AlternateBaseURL  string         `json:"alternate_base_url"`
	DatabasePath      string         `json:"database_path"`
	RedisAddr         string         `json:"redis_addr"`
	FallbackPolicy    string         `json:"fallback_policy"`
	ReadTimeout       timex.Duration `json:"read_timeout"`
	WriteTimeout      timex.Duration `json:"write_timeout"`
	RecoveryTimeout   timex.Duration `json:"recovery_timeout"`
	CacheTTL          timex.Duration `json:"cache_ttl"`
	SubmitInterval    timex.Duration `json:"submit_interval"`
	RecoveryEndpoints []string       `json:"recovery_endpoints"`
	LogLevel          string         `json:"log_level"`

	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson overlays Config with the fields present in the file named by -c
// or -config. Absent fields keep their current value. Read and decode
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.AlternateBaseURL, jc.AlternateBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.FallbackPolicy, jc.FallbackPolicy)
	setString(&cfg.LogLevel, jc.LogLevel)

	for dst, src := range map[*time.Duration]timex.Duration{
		&cfg.ReadTimeout:         jc.ReadTimeout,
		&cfg.WriteTimeout:        jc.WriteTimeout,
		&cfg.RecoveryTimeout:     jc.RecoveryTimeout,
		&cfg.CacheTTL:            jc.CacheTTL,
		&cfg.SubmitInterval:      jc.SubmitInterval,
		&cfg.OnlineCheckInterval: jc.OnlineCheckInterval,
	} {
		if src.Duration != 0 {
			*dst = src.Duration
		}
	}

	if len(jc.RecoveryEndpoints) > 0 {
		cfg.RecoveryEndpoints = append([]string(nil), jc.RecoveryEndpoints...)
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
