package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Header is the decoded form of a canonical 44-byte header.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

var ErrShortHeader = errors.New("wav header shorter than 44 bytes")

// ParseHeader reads the first 44 bytes of r as a canonical header for
// inspection and logging. No field is validated.
func ParseHeader(r io.Reader) (Header, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return Header{}, ErrShortHeader
		}
		return Header{}, err
	}

	var h Header
	err := binary.Read(bytes.NewReader(raw[:]), binary.LittleEndian, &h)
	return h, err
}
