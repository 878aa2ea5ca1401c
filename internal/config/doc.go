// Package config loads runtime configuration for the Launchpad CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: LAUNCHPAD_* variables, optionally loaded from a dotenv
//     file given by -e/-env (or ./.env when present).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so "168h", "7d" or integer nanoseconds are
// all accepted:
//
//	{
//	  "storage_driver": "sqlite",
//	  "data_dir": "data",
//	  "security_mode": "legacy",
//	  "token_ttl": "7d",
//	  "log_format": "pretty"
//	}
//
// The merged Config is validated with go-playground/validator; any invalid
// value makes LoadConfig panic at startup.
package config
