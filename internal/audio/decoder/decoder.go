package decoder

import (
	"errors"
	"g711-wav/internal/audio/config"

	"github.com/rs/zerolog/log"
)

var ErrUnsupportedCodec = errors.New("unsupported codec for decoding")

type Decoder interface {
	Decode(encoded []byte) ([]int16, error)
}

func New(cfg config.AudioConfig) (Decoder, error) {
	if cfg.IsPCMU() {
		return &PCMUDecoder{}, nil
	}
	log.Warn().
		Str("codec", cfg.Type.String()).
		Str("mime", cfg.MimeType).
		Uint32("sample_rate", cfg.SampleRate).
		Uint16("channels", cfg.Channels).
		Msg("Unrecognised decoder format")
	return nil, ErrUnsupportedCodec
}
