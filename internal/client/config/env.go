package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/blogfolio/internal/flagx"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file named by -e/-env (or ./.env when present)
// and overlays BLOG_* variables. Variables already set in the process
// environment win over the file. A missing explicit file or a malformed
// value panics.
func parseEnv(cfg *Config) {
	loadEnvFile(flagx.EnvFileFlag())

	setString(&cfg.APIBaseURL, getEnv("BLOG_API_URL"))
	setString(&cfg.AlternateBaseURL, getEnv("BLOG_ALT_URL"))
	setString(&cfg.DatabasePath, getEnv("BLOG_DB_PATH"))
	setString(&cfg.RedisAddr, getEnv("BLOG_REDIS_ADDR"))
	setString(&cfg.FallbackPolicy, getEnv("BLOG_FALLBACK_POLICY"))
	setString(&cfg.LogLevel, getEnv("BLOG_LOG_LEVEL"))

	setDuration(&cfg.ReadTimeout, "BLOG_READ_TIMEOUT")
	setDuration(&cfg.WriteTimeout, "BLOG_WRITE_TIMEOUT")
	setDuration(&cfg.RecoveryTimeout, "BLOG_RECOVERY_TIMEOUT")
	setDuration(&cfg.CacheTTL, "BLOG_CACHE_TTL")
	setDuration(&cfg.SubmitInterval, "BLOG_SUBMIT_INTERVAL")
	setDuration(&cfg.OnlineCheckInterval, "BLOG_ONLINE_CHECK_INTERVAL")

	if v := getEnv("BLOG_RECOVERY_ENDPOINTS"); v != "" {
		cfg.RecoveryEndpoints = splitCSV(v)
	}
}

func loadEnvFile(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

func getEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func setDuration(dst *time.Duration, key string) {
	v := getEnv(key)
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	return out
}
