// Package pcmu implements the G.711 µ-law compander: the per-sample
// conversion between 16-bit linear PCM and 8-bit µ-law codes.
//
// Every function here is pure. No state is carried between calls, so
// samples may be converted in any order or concurrently.
package pcmu

const (
	SignBit   = 0x80 // polarity bit of a µ-law code
	QuantMask = 0x0F // quantization field
	SegMask   = 0x70 // segment field
	SegShift  = 4    // position of the segment field
	NumSegs   = 8

	Bias = 0x84 // 132, added before segment search and removed on decode
	Clip = 8159 // magnitude ceiling after the >>2 reduction
)

// SegmentEnd holds the upper bound of each µ-law segment in the
// reduced (14-bit) magnitude domain.
var SegmentEnd = [NumSegs]int16{0x3F, 0x7F, 0xFF, 0x1FF, 0x3FF, 0x7FF, 0xFFF, 0x1FFF}

// Search returns the index of the first entry in table that value does
// not exceed, or len(table) when value is above every entry.
func Search(value int16, table [NumSegs]int16) int {
	for i, end := range table {
		if value <= end {
			return i
		}
	}
	return len(table)
}

// Segment extracts the segment number (0-7) carried by a µ-law code.
func Segment(code byte) int {
	return int((^code & SegMask) >> SegShift)
}
