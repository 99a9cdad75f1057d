package convert

import (
	"encoding/binary"
)

// Int16ToBytes convert int16 sample to byte (Little Endian)
func Int16ToBytes(src []int16) []byte {
	dst := make([]byte, len(src)*2)
	for i, v := range src {
		binary.LittleEndian.PutUint16(dst[i*2:i*2+2], uint16(v))
	}
	return dst
}

// BytesToInt16 reads little-endian 16-bit samples. A trailing odd byte is
// dropped.
func BytesToInt16(src []byte) []int16 {
	dst := make([]int16, len(src)/2)
	for i := range dst {
		dst[i] = int16(binary.LittleEndian.Uint16(src[i*2 : i*2+2]))
	}
	return dst
}

// WidenBytes turns every byte into one sample in [0, 255].
func WidenBytes(src []byte) []int16 {
	dst := make([]int16, len(src))
	for i, b := range src {
		dst[i] = int16(b)
	}
	return dst
}
