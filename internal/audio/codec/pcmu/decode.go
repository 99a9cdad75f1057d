package pcmu

// Decode expands a µ-law code into a linear 16-bit sample.
func Decode(code byte) int16 {
	// codes are stored with every bit inverted
	u := ^code

	t := (int16(u&QuantMask) << 3) + Bias
	t <<= (u & SegMask) >> SegShift

	if u&SignBit != 0 {
		return Bias - t
	}
	return t - Bias
}

// DecodeBuf expands mu into dst, one sample per code. dst must be at
// least len(mu) long.
func DecodeBuf(mu []byte, dst []int16) {
	for i, b := range mu {
		dst[i] = Decode(b)
	}
}
