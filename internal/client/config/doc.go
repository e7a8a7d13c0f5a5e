// Package config loads runtime configuration for the emforms CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. EMFORMS_* environment variables, also read from a .env file
//     (-e or -env, or ./.env when present). Process variables override
//     the file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # Environment
//
//	EMFORMS_SERVER_URL, EMFORMS_TOKEN, EMFORMS_REQUEST_TIMEOUT (e.g. "30s"),
//	EMFORMS_CACHE_TTL, EMFORMS_MODAL_DIR, EMFORMS_LOG_LEVEL,
//	EMFORMS_S3_REGION, EMFORMS_S3_ENDPOINT, EMFORMS_S3_ACCESS_KEY,
//	EMFORMS_S3_SECRET_KEY
//
// # JSON schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "https://emhub.example.org",
//	  "token": "eyJhbGciOi...",
//	  "request_timeout": "30s",
//	  "fragment_cache_ttl": "5m",
//	  "modal_dir": "modals",
//	  "log_level": "debug",
//	  "s3": {"region": "eu-north-1", "base_endpoint": "http://minio:9000"}
//	}
package config
