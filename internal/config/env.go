package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/dmitrijs2005/launchpad/internal/flagx"
	"github.com/dmitrijs2005/launchpad/internal/timex"
	"github.com/joho/godotenv"
)

const envPrefix = "LAUNCHPAD_"

// parseEnv loads a dotenv file (path from -e/-env, else ./.env if present)
// and overlays LAUNCHPAD_* variables onto cfg. Variables already set in the
// process environment win over the file.
func parseEnv(cfg *Config, args []string) {
	envFile := flagx.StringFlag(args, "e", "env", "path to .env file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	setFromEnv(&cfg.StorageDriver, "STORAGE_DRIVER")
	setFromEnv(&cfg.StorageDSN, "STORAGE_DSN")
	setFromEnv(&cfg.DataDir, "DATA_DIR")
	setFromEnv(&cfg.SecretKey, "SECRET_KEY")
	setFromEnv(&cfg.SecurityMode, "SECURITY_MODE")
	setFromEnv(&cfg.LogLevel, "LOG_LEVEL")
	setFromEnv(&cfg.LogFormat, "LOG_FORMAT")
	setFromEnv(&cfg.AMQPURL, "AMQP_URL")

	if v := os.Getenv(envPrefix + "TOKEN_TTL"); v != "" {
		d, err := timex.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.TokenTTL = d
	}
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(envPrefix + key); v != "" {
		*dst = v
	}
}
