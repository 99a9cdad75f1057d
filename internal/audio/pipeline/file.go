package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"g711-wav/internal/wav"

	"github.com/rs/zerolog/log"
)

var (
	ErrOpenInput  = errors.New("error opening input file")
	ErrOpenOutput = errors.New("error opening output file")
)

// ConvertFile converts the WAV file at inPath into outPath. The first 44
// bytes of the input are skipped without inspection.
func (c *Converter) ConvertFile(ctx context.Context, inPath, outPath string) (Result, error) {
	input, err := os.Open(inPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOpenInput, err)
	}
	defer input.Close()

	output, err := os.Create(outPath)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrOpenOutput, err)
	}

	res, err := c.convertOpened(ctx, input, output)
	if closeErr := output.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("close output: %w", closeErr)
	}
	return res, err
}

func (c *Converter) convertOpened(ctx context.Context, input *os.File, output *os.File) (Result, error) {
	info, err := input.Stat()
	if err != nil {
		return Result{}, fmt.Errorf("stat input: %w", err)
	}
	log.Info().Int64("input_file_size", info.Size()).Msg("Input opened")

	var data io.Reader = input
	if info.Size() < wav.HeaderSize {
		log.Warn().
			Int64("input_file_size", info.Size()).
			Msg("Input shorter than a WAV header, treating data region as empty")
		data = bytes.NewReader(nil)
	} else {
		logInputHeader(input)
		if _, err := input.Seek(wav.HeaderSize, io.SeekStart); err != nil {
			return Result{}, fmt.Errorf("seek past header: %w", err)
		}
	}

	return c.Run(ctx, data, output)
}

// logInputHeader reports the skipped input header at debug level. It is
// informational only; the header is never validated.
func logInputHeader(r io.Reader) {
	h, err := wav.ParseHeader(r)
	if err != nil {
		log.Debug().Err(err).Msg("Input header unreadable")
		return
	}
	log.Debug().
		Str("chunk_id", string(h.ChunkID[:])).
		Uint16("audio_format", h.AudioFormat).
		Uint32("sample_rate", h.SampleRate).
		Uint16("bits_per_sample", h.BitsPerSample).
		Uint32("data_size", h.Subchunk2Size).
		Msg("Skipping input header")
}
