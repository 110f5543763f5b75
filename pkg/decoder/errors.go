package decoder

import (
	"errors"
	"fmt"
)

// Error kinds. Every decode failure wraps exactly one of these; match with
// errors.Is. A failed decode leaves no usable partial result.
var (
	ErrBufferUnderrun  = errors.New("buffer underrun")
	ErrInvalidEncoding = errors.New("invalid encoding")
	ErrInvalidPadding  = errors.New("invalid padding")
)

func underrunError(offset, want, have int) error {
	return fmt.Errorf("%w: need %d bytes at offset %d, %d left", ErrBufferUnderrun, want, offset, have)
}

func encodingError(offset int, b []byte) error {
	return fmt.Errorf("%w: string at offset %d is not valid UTF-8: %q", ErrInvalidEncoding, offset, b)
}

func paddingError(offset int, pad byte, decoded string) error {
	return fmt.Errorf("%w: string %q padded with 0x%02x at offset %d", ErrInvalidPadding, decoded, pad, offset)
}
