package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")

	log.Debug(context.Background(), "signed in", "email", "a@b.c")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "DEBUG", line["level"])
	assert.Equal(t, "signed in", line["msg"])
	assert.Equal(t, "a@b.c", line["email"])
}

func TestNew_TextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn", "text")

	log.Info(context.Background(), "hidden")
	log.Warn(context.Background(), "shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chatty", "text")

	log.Debug(context.Background(), "dbg")
	log.Info(context.Background(), "inf")

	assert.NotContains(t, buf.String(), "dbg")
	assert.Contains(t, buf.String(), "inf")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().With("k", "v").Error(context.Background(), "nothing")
	})
}
