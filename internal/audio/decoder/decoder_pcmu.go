package decoder

import "g711-wav/internal/audio/codec/pcmu"

// Mu-law decode (G.711 PCMU)
type PCMUDecoder struct{}

// Decode converts mu-law bytes to PCM int16
func (d *PCMUDecoder) Decode(mu []byte) ([]int16, error) {
	out := make([]int16, len(mu))
	pcmu.DecodeBuf(mu, out)
	return out, nil
}
