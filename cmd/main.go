package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"g711-wav/internal/audio/pipeline"
	"g711-wav/internal/wav"
	"g711-wav/pkg/config"
	"g711-wav/pkg/logger"
	"g711-wav/pkg/system"

	"github.com/rs/zerolog/log"
)

const usage = `Usage: g711-wav <input> <output> <mode>
  input   source WAV file, its 44-byte header is skipped
  output  destination WAV file
  mode    0: ulaw to pcm (decoding)
          1: pcm to ulaw (encoding)
`

var errInvalidMode = errors.New("invalid mode")

// loadEnv loads environment variables from a .env file if one exists
func loadEnv() {
	if err := system.LoadOptionalEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}
}

func parseMode(s string) (wav.Direction, error) {
	mode, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidMode, s)
	}
	switch mode {
	case 0:
		return wav.Decode, nil
	case 1:
		return wav.Encode, nil
	default:
		return 0, fmt.Errorf("%w: %d", errInvalidMode, mode)
	}
}

func completionMessage(dir wav.Direction) string {
	if dir == wav.Encode {
		return "The encoding is complete"
	}
	return "The decoding is complete"
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	if len(args) != 3 {
		fmt.Fprint(stdout, usage)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}
	logger.InitLogger(cfg.LogLevel)
	logger.WithRun(system.GenerateSessionID())

	dir, err := parseMode(args[2])
	if err != nil {
		log.Error().Err(err).Msg("Invalid mode")
		fmt.Fprint(stdout, usage)
		return 1
	}

	conv, err := pipeline.NewConverter(dir, cfg.EncodeInput, cfg.ChunkSize)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create converter")
		return 1
	}

	res, err := conv.ConvertFile(ctx, args[0], args[1])
	if err != nil {
		log.Error().Err(err).Str("input", args[0]).Str("output", args[1]).Msg("Conversion failed")
		return 1
	}

	log.Info().
		Str("mode", dir.String()).
		Uint32("input_bytes", res.InputBytes).
		Uint32("output_bytes", res.OutputBytes).
		Uint32("header_data_size", res.HeaderDataSize).
		Msg(completionMessage(dir))
	return 0
}

func main() {
	loadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}
