package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJson_NoFlag(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()
	want := cfg

	parseJson(&cfg, []string{"-s", "memory"})

	assert.Equal(t, want, cfg)
}

func TestParseJson_Overlay(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"storage_driver": "postgres",
		"storage_dsn":    "postgres://localhost/launchpad",
		"token_ttl":      "7d",
	})

	var cfg Config
	cfg.LoadDefaults()
	cfg.TokenTTL = time.Hour
	parseJson(&cfg, []string{"--config", path})

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/launchpad", cfg.StorageDSN)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "LAUNCHPAD_SECRET_KEY", cfg.SecretKey, "absent fields keep earlier values")
}

func TestParseJson_NanosecondTTL(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{"token_ttl": int64(90 * time.Second)})

	var cfg Config
	parseJson(&cfg, []string{"-c=" + path})

	assert.Equal(t, 90*time.Second, cfg.TokenTTL)
}

func TestParseJson_Panics(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		var cfg Config
		require.Panics(t, func() { parseJson(&cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}) })
	})

	t.Run("bad json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
		var cfg Config
		require.Panics(t, func() { parseJson(&cfg, []string{"-c", path}) })
	})
}
