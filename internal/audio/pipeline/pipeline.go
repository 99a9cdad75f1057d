package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"g711-wav/internal/audio/config"
	"g711-wav/internal/audio/convert"
	"g711-wav/internal/audio/decoder"
	"g711-wav/internal/audio/encoder"
	"g711-wav/internal/wav"

	"github.com/rs/zerolog/log"
)

// AddOnPipe adds a processing function to the pipeline.
// q - quit channel to stop the processing
// f - processing function
// in - input channel
// chanBuffer - buffer size for the output channel
// Every input produces exactly one output; a full output channel blocks
// the stage until the consumer catches up or q is closed.
func AddOnPipe[X, Y any](q <-chan struct{}, f func(X) Y, in <-chan X, chanBuffer int) chan Y {
	out := make(chan Y, chanBuffer)
	go func() {
		defer close(out)
		for {
			select {
			case <-q:
				return
			case data, ok := <-in:
				if !ok {
					return
				}
				result := f(data)
				select {
				case out <- result:
				case <-q:
					return
				}
			}
		}
	}()
	return out
}

const stageBuffer = 4

var (
	ErrEncoderNil = errors.New("encoder cannot be nil")
	ErrDecoderNil = errors.New("decoder cannot be nil")
	ErrTooLarge   = errors.New("input exceeds the 32-bit WAV size limit")
)

// Result reports what a conversion consumed and produced.
type Result struct {
	InputBytes     uint32 // data bytes read after the header
	OutputBytes    uint32 // data bytes written after the header
	HeaderDataSize uint32 // value patched into the data size field
}

// Converter streams the data region of one file through the µ-law codec
// and writes a WAV file with a patched header.
type Converter struct {
	Direction  wav.Direction
	InputWidth config.InputWidth
	ChunkSize  int

	encoder encoder.Encoder
	decoder decoder.Decoder
}

func NewConverter(dir wav.Direction, width config.InputWidth, chunkSize int) (*Converter, error) {
	if chunkSize == 0 {
		chunkSize = config.DefaultChunkSize
	}

	c := &Converter{Direction: dir, InputWidth: width, ChunkSize: chunkSize}
	pcmuCfg := config.NewPCMUConfig()
	pcmCfg := config.NewL16Config()

	var err error
	switch dir {
	case wav.Decode:
		if err := convert.ValidateChunkSize(1, chunkSize); err != nil {
			return nil, err
		}
		pcmuCfg.LogSelected("input")
		pcmCfg.LogSelected("output")
		c.decoder, err = decoder.New(pcmuCfg)
	case wav.Encode:
		if err := convert.ValidateChunkSize(int(width), chunkSize); err != nil {
			return nil, err
		}
		pcmCfg.LogSelected("input")
		pcmuCfg.LogSelected("output")
		c.encoder, err = encoder.New(pcmuCfg)
	default:
		return nil, wav.ErrUnknownDirection
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

type chunk struct {
	inLen int
	data  []byte
	err   error
}

// Run writes a placeholder header to out, converts everything readable
// from in, and then patches the header sizes. in must already be
// positioned at the start of the data region.
func (c *Converter) Run(ctx context.Context, in io.Reader, out io.WriteSeeker) (Result, error) {
	var res Result

	header, err := wav.Render(c.Direction, 0)
	if err != nil {
		return res, err
	}
	if _, err := out.Write(header); err != nil {
		return res, fmt.Errorf("write header: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	raw := c.read(ctx, in)
	converted := AddOnPipe(ctx.Done(), c.convert, raw, stageBuffer)

	var consumed, written uint64
	for ch := range converted {
		if ch.err != nil {
			return res, ch.err
		}
		if _, err := out.Write(ch.data); err != nil {
			return res, fmt.Errorf("write samples: %w", err)
		}
		consumed += uint64(ch.inLen)
		written += uint64(len(ch.data))
		if consumed > math.MaxUint32 || written > math.MaxUint32-wav.HeaderSize {
			return res, ErrTooLarge
		}
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	res.InputBytes = uint32(consumed)
	res.OutputBytes = uint32(written)
	res.HeaderDataSize, err = wav.DataSize(c.Direction, res.InputBytes)
	if err != nil {
		return res, err
	}
	if err := wav.Patch(out, res.HeaderDataSize); err != nil {
		return res, err
	}

	if res.HeaderDataSize != res.OutputBytes {
		log.Warn().
			Uint32("header_data_size", res.HeaderDataSize).
			Uint32("written", res.OutputBytes).
			Str("input_width", c.InputWidth.String()).
			Msg("Header data size differs from bytes written")
	}
	return res, nil
}

// read emits fixed-size chunks of in until EOF or the first read error.
func (c *Converter) read(ctx context.Context, in io.Reader) <-chan chunk {
	out := make(chan chunk, stageBuffer)
	go func() {
		defer close(out)
		for {
			buf := make([]byte, c.ChunkSize)
			n, err := io.ReadFull(in, buf)
			if n > 0 {
				select {
				case out <- chunk{inLen: n, data: buf[:n]}:
				case <-ctx.Done():
					return
				}
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return
			}
			if err != nil {
				select {
				case out <- chunk{err: fmt.Errorf("read samples: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return out
}

func (c *Converter) convert(ch chunk) chunk {
	if ch.err != nil {
		return ch
	}

	var err error
	switch c.Direction {
	case wav.Decode:
		ch.data, err = c.Decode(ch.data)
	case wav.Encode:
		ch.data, err = c.Encode(ch.data)
	default:
		err = wav.ErrUnknownDirection
	}
	ch.err = err
	return ch
}

// Encode converts raw input bytes to µ-law according to InputWidth.
func (c *Converter) Encode(raw []byte) ([]byte, error) {
	if c.encoder == nil {
		return nil, ErrEncoderNil
	}

	var samples []int16
	switch c.InputWidth {
	case config.InputWidthPCM16:
		if len(raw)%2 != 0 {
			log.Debug().Int("len", len(raw)).Msg("Dropping trailing odd byte of PCM input")
		}
		samples = convert.BytesToInt16(raw)
	default:
		samples = convert.WidenBytes(raw)
	}

	encoded, err := c.encoder.Encode(samples)
	if err != nil {
		return nil, fmt.Errorf("failed to encode pcm: %w", err)
	}
	return encoded, nil
}

// Decode converts µ-law bytes to little-endian 16-bit PCM bytes.
func (c *Converter) Decode(mu []byte) ([]byte, error) {
	if c.decoder == nil {
		return nil, ErrDecoderNil
	}
	decoded, err := c.decoder.Decode(mu)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return convert.Int16ToBytes(decoded), nil
}
