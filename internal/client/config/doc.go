// Package config loads runtime configuration for the blogfolio CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment, after loading a dotenv file (-e/-env, else ./.env).
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-a string     base URL of the blog API
//	-alt string   alternate host used during content recovery
//	-d string     path of the local SQLite database
//	-r string     Redis address for the posts cache (empty: in-memory)
//	-p string     fallback policy: seed, propagate or retry
//	-i int        online check interval (seconds)
//	-v            debug logging
//
// # JSON schema
//
// Durations are timex.Duration, so "5s" and integer nanoseconds both work:
//
//	{
//	  "api_base_url": "https://blog.example.com",
//	  "alternate_base_url": "https://mirror.example.com",
//	  "database_path": "blogfolio.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "fallback_policy": "seed",
//	  "read_timeout": "5s",
//	  "write_timeout": "8s",
//	  "recovery_timeout": "3s",
//	  "cache_ttl": "10m",
//	  "submit_interval": "5s",
//	  "recovery_endpoints": ["standard={base}/api/posts/{slug}"],
//	  "log_level": "info",
//	  "online_check_interval": "15s"
//	}
//
// # Environment
//
// BLOG_API_URL, BLOG_ALT_URL, BLOG_DB_PATH, BLOG_REDIS_ADDR,
// BLOG_FALLBACK_POLICY, BLOG_READ_TIMEOUT, BLOG_WRITE_TIMEOUT,
// BLOG_RECOVERY_TIMEOUT, BLOG_CACHE_TTL, BLOG_SUBMIT_INTERVAL,
// BLOG_RECOVERY_ENDPOINTS (comma separated), BLOG_LOG_LEVEL and
// BLOG_ONLINE_CHECK_INTERVAL.
package config
