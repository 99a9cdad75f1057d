// Package wav renders and patches the fixed 44-byte WAV header written in
// front of converted audio.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	HeaderSize = 44

	riffSizeOffset = 4
	dataSizeOffset = 40

	// bytes counted by the RIFF size field in addition to the data
	riffOverhead = HeaderSize - 8

	FormatPCM   = 1
	FormatMuLaw = 7

	SampleRate = 8000
	Channels   = 1
)

// Direction selects which way samples flow through the codec, and with it
// the format of the output file.
type Direction int

const (
	// Decode reads µ-law and writes 16-bit PCM.
	Decode Direction = iota
	// Encode reads PCM and writes µ-law.
	Encode
)

func (d Direction) String() string {
	switch d {
	case Decode:
		return "decode"
	case Encode:
		return "encode"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

var ErrUnknownDirection = errors.New("unknown conversion direction")

// templates are never written to; Render copies them.
var (
	muLawToPCMTemplate = [HeaderSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0, // chunk size, patched
		'W', 'A', 'V', 'E',

		'f', 'm', 't', ' ',
		16, 0, 0, 0,
		FormatPCM, 0,
		Channels, 0,
		0x40, 0x1F, 0x00, 0x00, // 8000 Hz
		0x80, 0x3E, 0x00, 0x00, // byte rate 16000
		2, 0, // block align
		16, 0, // bits per sample

		'd', 'a', 't', 'a',
		0, 0, 0, 0, // data size, patched
	}

	pcmToMuLawTemplate = [HeaderSize]byte{
		'R', 'I', 'F', 'F',
		0, 0, 0, 0,
		'W', 'A', 'V', 'E',

		'f', 'm', 't', ' ',
		16, 0, 0, 0,
		FormatMuLaw, 0,
		Channels, 0,
		0x40, 0x1F, 0x00, 0x00,
		0x40, 0x1F, 0x00, 0x00, // byte rate 8000
		1, 0,
		8, 0,

		'd', 'a', 't', 'a',
		0, 0, 0, 0,
	}
)

func template(dir Direction) ([HeaderSize]byte, error) {
	switch dir {
	case Decode:
		return muLawToPCMTemplate, nil
	case Encode:
		return pcmToMuLawTemplate, nil
	default:
		return [HeaderSize]byte{}, ErrUnknownDirection
	}
}

// Render returns a fresh header for dir with both size fields derived
// from dataSize.
func Render(dir Direction, dataSize uint32) ([]byte, error) {
	tmpl, err := template(dir)
	if err != nil {
		return nil, err
	}
	header := tmpl[:]
	putSizes(header, dataSize)
	return header, nil
}

func putSizes(header []byte, dataSize uint32) {
	binary.LittleEndian.PutUint32(header[riffSizeOffset:], dataSize+riffOverhead)
	binary.LittleEndian.PutUint32(header[dataSizeOffset:], dataSize)
}

// Patch overwrites the RIFF and data size fields of a header already
// written at the start of w. The write position is left after the data
// size field.
func Patch(w io.WriteSeeker, dataSize uint32) error {
	var field [4]byte

	binary.LittleEndian.PutUint32(field[:], dataSize+riffOverhead)
	if err := writeAt(w, riffSizeOffset, field[:]); err != nil {
		return fmt.Errorf("patch riff size: %w", err)
	}

	binary.LittleEndian.PutUint32(field[:], dataSize)
	if err := writeAt(w, dataSizeOffset, field[:]); err != nil {
		return fmt.Errorf("patch data size: %w", err)
	}
	return nil
}

func writeAt(w io.WriteSeeker, offset int64, p []byte) error {
	if _, err := w.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

// DataSize derives the output data size from the number of input data
// bytes. Decoding expands each µ-law byte to two PCM bytes; encoding
// halves the input length.
func DataSize(dir Direction, inputLen uint32) (uint32, error) {
	switch dir {
	case Decode:
		return inputLen * 2, nil
	case Encode:
		return inputLen / 2, nil
	default:
		return 0, ErrUnknownDirection
	}
}
