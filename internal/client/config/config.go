package config

import "time"

// Config holds runtime settings for the emforms CLI.
//
// Fields:
//   - ServerURL: base URL of the EMhub backend, e.g. http://127.0.0.1:5000.
//   - Token: bearer token sent with every request; empty disables auth.
//   - RequestTimeout: upper bound for a single backend call.
//   - FragmentCacheTTL: how long form fragments are reused; 0 (the default)
//     fetches a fresh form on every open.
//   - ModalDir: directory the terminal view writes opened forms to.
//   - LogLevel: debug, info, warn or error.
//   - S3*: settings for attachments given as s3://bucket/key.
type Config struct {
	ServerURL        string
	Token            string
	RequestTimeout   time.Duration
	FragmentCacheTTL time.Duration
	ModalDir         string
	LogLevel         string

	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:5000"
	c.RequestTimeout = 30 * time.Second
	c.ModalDir = "modals"
	c.LogLevel = "info"
	c.S3Region = "us-east-1"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
