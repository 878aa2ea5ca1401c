package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/launchpad/internal/flagx"
	"github.com/dmitrijs2005/launchpad/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Fields left
// out of the file keep the value from earlier sources.
type JsonConfig struct {
	StorageDriver string         `json:"storage_driver"`
	StorageDSN    string         `json:"storage_dsn"`
	DataDir       string         `json:"data_dir"`
	SecretKey     string         `json:"secret_key"`
	SecurityMode  string         `json:"security_mode"`
	TokenTTL      timex.Duration `json:"token_ttl"`
	LogLevel      string         `json:"log_level"`
	LogFormat     string         `json:"log_format"`
	AMQPURL       string         `json:"amqp_url"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Read or unmarshal errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.StringFlag(args, "c", "config", "path to JSON config file")
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.StorageDriver, jc.StorageDriver)
	overlay(&cfg.StorageDSN, jc.StorageDSN)
	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.SecretKey, jc.SecretKey)
	overlay(&cfg.SecurityMode, jc.SecurityMode)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.LogFormat, jc.LogFormat)
	overlay(&cfg.AMQPURL, jc.AMQPURL)
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
