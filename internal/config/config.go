package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"

	ModeLegacy   = "legacy"
	ModeHardened = "hardened"
)

// Config holds runtime settings for the Launchpad CLI.
//
// StorageDSN is interpreted per driver: a file path for sqlite (empty means
// DataDir/launchpad.db), a postgres URL, or a redis URL. It is ignored for
// the memory driver.
type Config struct {
	StorageDriver string        `validate:"oneof=sqlite postgres redis memory"`
	StorageDSN    string        `validate:"required_if=StorageDriver postgres,required_if=StorageDriver redis"`
	DataDir       string        `validate:"required"`
	SecretKey     string        `validate:"required"`
	SecurityMode  string        `validate:"oneof=legacy hardened"`
	TokenTTL      time.Duration `validate:"gt=0"`
	LogLevel      string        `validate:"oneof=debug info warn error"`
	LogFormat     string        `validate:"oneof=text json pretty"`
	AMQPURL       string        `validate:"omitempty,url"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = DriverSQLite
	c.StorageDSN = ""
	c.DataDir = "data"
	c.SecretKey = "LAUNCHPAD_SECRET_KEY"
	c.SecurityMode = ModeLegacy
	c.TokenTTL = 7 * 24 * time.Hour
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.AMQPURL = ""
}

// Validate reports the first group of invalid fields.
func (c *Config) Validate() error {
	c.StorageDriver = strings.ToLower(c.StorageDriver)
	c.SecurityMode = strings.ToLower(c.SecurityMode)
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.LogFormat = strings.ToLower(c.LogFormat)

	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones. Invalid input panics.
func LoadConfig(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseJson(cfg, args)
	parseFlags(cfg, args)

	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}
