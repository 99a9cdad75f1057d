package encoder

import (
	"errors"
	"g711-wav/internal/audio/config"

	"github.com/rs/zerolog/log"
)

var ErrUnsupportedCodec = errors.New("unsupported codec for encoding")

type Encoder interface {
	Encode(pcm []int16) ([]byte, error)
}

// New picks an encoder for the target format described by cfg.
func New(cfg config.AudioConfig) (Encoder, error) {
	if cfg.IsPCMU() {
		return &PCMUEncoder{}, nil
	}
	log.Warn().
		Str("codec", cfg.Type.String()).
		Str("mime", cfg.MimeType).
		Uint32("sample_rate", cfg.SampleRate).
		Uint16("channels", cfg.Channels).
		Msg("Unrecognised encoder format")
	return nil, ErrUnsupportedCodec
}
