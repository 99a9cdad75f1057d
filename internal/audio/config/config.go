package config

import (
	"fmt"
	"strings"

	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog/log"
)

type AudioConfigType string

func (ac AudioConfigType) String() string {
	return string(ac)
}

// InputWidth is the number of input bytes consumed per linear sample
// when encoding.
type InputWidth int

const (
	// InputWidthByte treats every input byte as one non-negative sample.
	InputWidthByte InputWidth = 1
	// InputWidthPCM16 reads little-endian 16-bit samples.
	InputWidthPCM16 InputWidth = 2
)

func (w InputWidth) String() string {
	switch w {
	case InputWidthByte:
		return "byte"
	case InputWidthPCM16:
		return "pcm16"
	default:
		return fmt.Sprintf("width(%d)", int(w))
	}
}

// ParseInputWidth maps the ENCODE_INPUT setting to an InputWidth.
func ParseInputWidth(s string) (InputWidth, error) {
	switch s {
	case "", "byte", "8":
		return InputWidthByte, nil
	case "pcm16", "16":
		return InputWidthPCM16, nil
	default:
		return 0, fmt.Errorf("unknown encode input width %q", s)
	}
}

const (
	SampleRatePCM   = 8000
	FrameSamplesPCM = 160 // 20 ms at 8kHz
	ChannelsPCM     = 1

	// DefaultChunkSize is one 20 ms frame of 16-bit PCM in bytes.
	DefaultChunkSize = FrameSamplesPCM * 2

	AudioCodecPCMU AudioConfigType = "pcmu"
	AudioCodecL16  AudioConfigType = "l16"

	MimeTypeL16 = "audio/L16"
)

type AudioConfig struct {
	SampleRate   uint32
	FrameSamples int
	Channels     uint16
	Type         AudioConfigType
	PayloadType  uint8
	MimeType     string
}

// NewPCMUConfig creates AudioConfig for PCMU/G.711 codec
func NewPCMUConfig() AudioConfig {
	return AudioConfig{
		SampleRate:   SampleRatePCM,
		FrameSamples: FrameSamplesPCM,
		Channels:     ChannelsPCM,
		Type:         AudioCodecPCMU,
		PayloadType:  0,
		MimeType:     webrtc.MimeTypePCMU,
	}
}

// NewL16Config creates AudioConfig for 16-bit linear PCM at the PCMU rate.
func NewL16Config() AudioConfig {
	return AudioConfig{
		SampleRate:   SampleRatePCM,
		FrameSamples: FrameSamplesPCM,
		Channels:     ChannelsPCM,
		Type:         AudioCodecL16,
		PayloadType:  11,
		MimeType:     MimeTypeL16,
	}
}

// Capability describes the config the same way an RTP codec is advertised.
func (ac AudioConfig) Capability() webrtc.RTPCodecCapability {
	return webrtc.RTPCodecCapability{
		MimeType:  ac.MimeType,
		ClockRate: ac.SampleRate,
		Channels:  ac.Channels,
	}
}

// IsPCMU reports whether the advertised capability is 8 kHz mono PCMU.
func (ac AudioConfig) IsPCMU() bool {
	c := ac.Capability()
	return strings.EqualFold(c.MimeType, webrtc.MimeTypePCMU) &&
		c.ClockRate == SampleRatePCM && c.Channels == ChannelsPCM
}

// LogSelected logs which format a conversion reads or writes.
func (ac AudioConfig) LogSelected(role string) {
	c := ac.Capability()
	log.Debug().
		Str("role", role).
		Str("mime", c.MimeType).
		Uint32("clock_rate", c.ClockRate).
		Uint16("channels", c.Channels).
		Uint8("payload_type", ac.PayloadType).
		Msg("Audio format selected")
}
