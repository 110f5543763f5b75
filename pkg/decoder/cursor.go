package decoder

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Cursor is a forward-only reader over an in-memory buffer. The offset only
// ever advances; a read cannot be retried without a fresh Cursor.
type Cursor struct {
	buf  []byte
	next int
}

func From(buf []byte) *Cursor {
	return &Cursor{
		buf:  buf,
		next: 0,
	}
}

// Offset reports the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.next
}

// AtEOF reports whether the cursor sits exactly at the end of the buffer.
// Trailing bytes that do not form a full record keep this false; the next
// read fails with ErrBufferUnderrun rather than stopping early.
func (c *Cursor) AtEOF() bool {
	return c.next == len(c.buf)
}

func (c *Cursor) take(n int) ([]byte, error) {
	if len(c.buf)-c.next < n {
		return nil, underrunError(c.next, n, len(c.buf)-c.next)
	}
	b := c.buf[c.next : c.next+n]
	c.next += n
	return b, nil
}

// ReadU32 consumes 4 bytes as a little-endian unsigned integer.
func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadF32 consumes 4 bytes as a little-endian IEEE-754 float.
func (c *Cursor) ReadF32() (float32, error) {
	u, err := c.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ReadString consumes a u32 length, that many bytes of UTF-8, and padding up
// to the next 4-byte boundary. Every padding byte must be zero.
func (c *Cursor) ReadString() (string, error) {
	n, err := c.ReadU32()
	if err != nil {
		return "", err
	}
	start := c.next
	b, err := c.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", encodingError(start, b)
	}
	s := string(b)
	if n%4 != 0 {
		pad, err := c.take(int(4 - n%4))
		if err != nil {
			return "", err
		}
		for i, p := range pad {
			if p != 0 {
				return "", paddingError(start+len(b)+i, p, s)
			}
		}
	}
	return s, nil
}
