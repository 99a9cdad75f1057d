package config

import (
	"testing"

	audioconfig "g711-wav/internal/audio/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvEncodeInput, "")
	t.Setenv(EnvChunkSize, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, audioconfig.InputWidthByte, cfg.EncodeInput)
	assert.Equal(t, audioconfig.DefaultChunkSize, cfg.ChunkSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvEncodeInput, "pcm16")
	t.Setenv(EnvChunkSize, "1024")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, audioconfig.InputWidthPCM16, cfg.EncodeInput)
	assert.Equal(t, 1024, cfg.ChunkSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"unknown width", EnvEncodeInput, "pcm24"},
		{"non-numeric chunk", EnvChunkSize, "big"},
		{"negative chunk", EnvChunkSize, "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvEncodeInput, "")
			t.Setenv(EnvChunkSize, "")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
