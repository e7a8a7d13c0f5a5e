package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/emforms/internal/flagx"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read when present and no -e/-env flag is given.
const DefaultEnvFile = ".env"

const envPrefix = "EMFORMS_"

// parseEnv overlays Config with EMFORMS_* variables.
//
// Values come from the env file (-e/-env, or ./.env when it exists) and from
// the process environment; the process environment wins. An explicitly named
// file that cannot be read and malformed durations panic.
func parseEnv(cfg *Config) {
	vars := map[string]string{}

	file := flagx.EnvFileFlags()
	explicit := file != ""
	if !explicit {
		file = DefaultEnvFile
	}

	fileVars, err := godotenv.Read(file)
	switch {
	case err == nil:
		vars = fileVars
	case explicit || !errors.Is(err, fs.ErrNotExist):
		panic(err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			return v, true
		}
		v, ok := vars[envPrefix+key]
		return v, ok
	}

	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	setDuration := func(key string, dst *time.Duration) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}

	setString("SERVER_URL", &cfg.ServerURL)
	setString("TOKEN", &cfg.Token)
	setDuration("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	setDuration("CACHE_TTL", &cfg.FragmentCacheTTL)
	setString("MODAL_DIR", &cfg.ModalDir)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("S3_REGION", &cfg.S3Region)
	setString("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	setString("S3_ACCESS_KEY", &cfg.S3AccessKey)
	setString("S3_SECRET_KEY", &cfg.S3SecretKey)
}
