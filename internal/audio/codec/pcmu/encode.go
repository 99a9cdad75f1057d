package pcmu

import "math"

// Gain applied by PreScale before compression.
const Gain = 2

// PreScale doubles the sample and saturates the result to the int16
// range. Encode compresses the pre-scaled value, so Decode(Encode(s))
// tracks PreScale(s) rather than s.
func PreScale(sample int16) int16 {
	v := int32(sample) * Gain
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Magnitude splits a pre-scaled sample into its reduced magnitude and
// the XOR mask that restores polarity and applies the bit inversion.
// The >>2 is an arithmetic shift, so -1 reduces to a magnitude of 1.
func Magnitude(scaled int16) (mag int16, mask byte) {
	v := scaled >> 2
	if v < 0 {
		// v >= -8192 after the shift, negation cannot overflow
		return -v, 0x7F
	}
	return v, 0xFF
}

// Encode compresses a linear 16-bit sample into a µ-law code.
func Encode(sample int16) byte {
	mag, mask := Magnitude(PreScale(sample))
	if mag > Clip {
		mag = Clip
	}
	mag += Bias >> 2

	seg := Search(mag, SegmentEnd)
	if seg >= NumSegs {
		// out of range, maximum magnitude
		return 0x7F ^ mask
	}

	uval := byte(seg<<SegShift) | byte((mag>>(seg+1))&QuantMask)
	return uval ^ mask
}

// EncodeBuf compresses pcm into dst. dst must be at least len(pcm) long.
func EncodeBuf(pcm []int16, dst []byte) {
	for i, s := range pcm {
		dst[i] = Encode(s)
	}
}
