package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"g711-wav/internal/wav"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	dir, err := parseMode("0")
	require.NoError(t, err)
	assert.Equal(t, wav.Decode, dir)

	dir, err = parseMode("1")
	require.NoError(t, err)
	assert.Equal(t, wav.Encode, dir)

	for _, s := range []string{"2", "-1", "abc", ""} {
		_, err := parseMode(s)
		assert.ErrorIs(t, err, errInvalidMode, "mode %q", s)
	}
}

func TestRunArgumentCount(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"a", "b"}, &out))
	assert.Contains(t, out.String(), "Usage")
}

func TestRunInvalidMode(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"in", "out", "7"}, &out))
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	code := run(context.Background(), []string{filepath.Join(dir, "nope.wav"), filepath.Join(dir, "out.wav"), "0"}, &out)
	assert.Equal(t, 1, code)
}

func TestRunDecode(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")

	const dataLen = 100
	require.NoError(t, os.WriteFile(in, make([]byte, wav.HeaderSize+dataLen), 0o644))
	t.Setenv("ENCODE_INPUT", "")
	t.Setenv("CHUNK_SIZE", "")

	var stdout bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{in, out, "0"}, &stdout))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Len(t, raw, wav.HeaderSize+2*dataLen)

	h, err := wav.ParseHeader(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, uint32(2*dataLen), h.Subchunk2Size)
	assert.Equal(t, uint32(2*dataLen+36), h.ChunkSize)

	// code 0x00 is the most negative value
	assert.Equal(t, []byte{0x84, 0x82}, raw[wav.HeaderSize:wav.HeaderSize+2])
}

func TestRunEncodeBadConfig(t *testing.T) {
	t.Setenv("ENCODE_INPUT", "pcm24")
	var out bytes.Buffer
	assert.Equal(t, 1, run(context.Background(), []string{"in", "out", "1"}, &out))
}
