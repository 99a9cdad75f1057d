package decoder

import (
	"g711-wav/internal/audio/codec/pcmu"
	"g711-wav/internal/audio/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dec, err := New(config.NewPCMUConfig())
	require.NoError(t, err)
	assert.IsType(t, &PCMUDecoder{}, dec)

	_, err = New(config.NewL16Config())
	assert.ErrorIs(t, err, ErrUnsupportedCodec)
}

func TestNewSelectsOnMimeType(t *testing.T) {
	cfg := config.NewPCMUConfig()
	cfg.MimeType = "audio/opus"
	dec, err := New(cfg)
	assert.ErrorIs(t, err, ErrUnsupportedCodec)
	assert.Nil(t, dec)

	cfg = config.NewPCMUConfig()
	cfg.Channels = 2
	_, err = New(cfg)
	assert.ErrorIs(t, err, ErrUnsupportedCodec)
}

func TestPCMUDecoder(t *testing.T) {
	mu := []byte{0x7F, 0xFF, 0x00, 0x80}

	dec := &PCMUDecoder{}
	pcm, err := dec.Decode(mu)
	require.NoError(t, err)
	require.Len(t, pcm, len(mu))

	assert.Equal(t, []int16{0, 0, -32124, 32124}, pcm)
	for i, b := range mu {
		assert.Equal(t, pcmu.Decode(b), pcm[i])
	}

	pcm, err = dec.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, pcm)
}
