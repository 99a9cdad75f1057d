package convert

import (
	"errors"
	"fmt"
)

var ErrInvalidChunkSize = errors.New("invalid chunk size")

// ValidateChunkSize checks that a read chunk holds whole samples of the
// given width.
func ValidateChunkSize(width, size int) error {
	if width <= 0 {
		return fmt.Errorf("%w: sample width %d", ErrInvalidChunkSize, width)
	}
	if size <= 0 || size%width != 0 {
		return fmt.Errorf("%w: %d bytes is not a positive multiple of %d", ErrInvalidChunkSize, size, width)
	}
	return nil
}
