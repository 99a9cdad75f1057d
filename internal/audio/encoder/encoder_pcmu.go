package encoder

import "g711-wav/internal/audio/codec/pcmu"

type PCMUEncoder struct{}

// Encode encodes PCM int16 samples to mu-law bytes.
// error for compatibility with Encoder interface
func (c *PCMUEncoder) Encode(pcm []int16) ([]byte, error) {
	out := make([]byte, len(pcm))
	pcmu.EncodeBuf(pcm, out)
	return out, nil
}
