package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/emforms/internal/flagx"
	"github.com/dmitrijs2005/emforms/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Durations use timex.Duration so they can be written as "30s" or as
// integer nanoseconds.
type JsonConfig struct {
	ServerURL        string          `json:"server_url"`
	Token            string          `json:"token"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	FragmentCacheTTL *timex.Duration `json:"fragment_cache_ttl"`
	ModalDir         string          `json:"modal_dir"`
	LogLevel         string          `json:"log_level"`
	S3               struct {
		Region       string `json:"region"`
		BaseEndpoint string `json:"base_endpoint"`
		AccessKey    string `json:"access_key"`
		SecretKey    string `json:"secret_key"`
	} `json:"s3"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Keys missing from the file keep their current value.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	overlay(&cfg.ServerURL, jc.ServerURL)
	overlay(&cfg.Token, jc.Token)
	overlay(&cfg.ModalDir, jc.ModalDir)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.S3Region, jc.S3.Region)
	overlay(&cfg.S3BaseEndpoint, jc.S3.BaseEndpoint)
	overlay(&cfg.S3AccessKey, jc.S3.AccessKey)
	overlay(&cfg.S3SecretKey, jc.S3.SecretKey)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.FragmentCacheTTL != nil {
		cfg.FragmentCacheTTL = jc.FragmentCacheTTL.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
