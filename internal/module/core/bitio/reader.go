// Package bitio reads and writes individual bits and fixed-width integers on
// top of a byte-oriented stream. Bits are packed MSB-first and the final byte
// of a written stream is zero-padded to the byte boundary.
package bitio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
)

const eof = -1

// Reader consumes a byte stream bit by bit. It keeps a one-byte lookahead
// buffer and the count of bits in it that have not been handed out yet.
type Reader struct {
	in  *bufio.Reader
	err error // sticky underlying failure
	cur int   // current byte, eof once the source is drained
	n   int   // unread bits remaining in cur, 0..8
}

func NewReader(r io.Reader) *Reader {
	br := &Reader{in: bufio.NewReader(r)}
	br.fill()
	return br
}

func (r *Reader) fill() {
	b, err := r.in.ReadByte()
	if err != nil {
		r.cur, r.n = eof, 0
		if err != io.EOF {
			r.err = fmt.Errorf("%w: %v", ErrIO, err)
		}
		return
	}
	r.cur, r.n = int(b), 8
}

// Exhausted reports whether no further bits are available.
func (r *Reader) Exhausted() bool {
	return r.cur == eof
}

// ReadBit returns the most significant unread bit of the lookahead buffer,
// refilling it from the source once drained.
func (r *Reader) ReadBit() (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.Exhausted() {
		return false, ErrEndOfStream
	}
	r.n--
	bit := (r.cur>>uint(r.n))&1 == 1
	if r.n == 0 {
		r.fill()
	}
	return bit, nil
}

// ReadByte returns the next 8 bits. When the buffer is byte-aligned this is a
// single buffer swap; otherwise the result straddles two source bytes.
func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.Exhausted() {
		return 0, ErrEndOfStream
	}

	if r.n == 8 {
		b := byte(r.cur)
		r.fill()
		return b, nil
	}

	// Combine the last n bits of the current byte with the first 8-n bits of
	// the next one.
	x := byte(r.cur) << uint(8-r.n)
	old := r.n
	r.fill()
	if r.err != nil {
		return 0, r.err
	}
	if r.Exhausted() {
		return 0, ErrEndOfStream
	}
	r.n = old
	x |= byte(r.cur >> uint(r.n))
	return x, nil
}

// ReadBits accumulates width bits MSB-first into an unsigned integer.
// width must be in [1, 64].
func (r *Reader) ReadBits(width int) (uint64, error) {
	if width < 1 || width > 64 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	// Aligned whole-byte fast path.
	if width == 8 && r.n == 8 {
		b, err := r.ReadByte()
		return uint64(b), err
	}

	var v uint64
	for i := 0; i < width; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ReadShort returns the next 16 bits as an unsigned integer.
func (r *Reader) ReadShort() (uint16, error) {
	var x uint16
	for i := 0; i < 2; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint16(b)
	}
	return x, nil
}

// ReadInt returns the next 32 bits as an unsigned integer.
func (r *Reader) ReadInt() (uint32, error) {
	var x uint32
	for i := 0; i < 4; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint32(b)
	}
	return x, nil
}

// ReadLong returns the next 64 bits as an unsigned integer.
func (r *Reader) ReadLong() (uint64, error) {
	var x uint64
	for i := 0; i < 8; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		x = x<<8 | uint64(b)
	}
	return x, nil
}

// ReadFloat reinterprets the next 32 bits as an IEEE-754 float.
func (r *Reader) ReadFloat() (float32, error) {
	x, err := r.ReadInt()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(x), nil
}

// ReadDouble reinterprets the next 64 bits as an IEEE-754 double.
func (r *Reader) ReadDouble() (float64, error) {
	x, err := r.ReadLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(x), nil
}

// ReadRemainingAsText decodes every remaining byte as one character. It fails
// with ErrNotByteAligned when the remaining bit count is not a multiple of 8.
func (r *Reader) ReadRemainingAsText() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.n != 0 && r.n != 8 {
		return "", ErrNotByteAligned
	}

	var sb strings.Builder
	for !r.Exhausted() {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		sb.WriteByte(b)
	}
	if r.err != nil {
		return "", r.err
	}
	return sb.String(), nil
}
