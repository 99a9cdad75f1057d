package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	audioconfig "g711-wav/internal/audio/config"
)

const (
	EnvLogLevel    = "LOG_LEVEL"
	EnvEncodeInput = "ENCODE_INPUT"
	EnvChunkSize   = "CHUNK_SIZE"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	LogLevel    string
	EncodeInput audioconfig.InputWidth
	ChunkSize   int
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from environment variables.
func Load() (Config, error) {
	cfg := Config{
		LogLevel: getEnv(EnvLogLevel, "info"),
	}

	width, err := audioconfig.ParseInputWidth(getEnv(EnvEncodeInput, "byte"))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvEncodeInput, err)
	}
	cfg.EncodeInput = width

	chunk, err := strconv.Atoi(getEnv(EnvChunkSize, strconv.Itoa(audioconfig.DefaultChunkSize)))
	if err != nil || chunk <= 0 {
		return Config{}, fmt.Errorf("%s: must be a positive integer, got %q", EnvChunkSize, os.Getenv(EnvChunkSize))
	}
	cfg.ChunkSize = chunk

	return cfg, nil
}
