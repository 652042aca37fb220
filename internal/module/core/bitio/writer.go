package bitio

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// Writer emits bits MSB-first into a byte stream. Up to 7 bits are held in an
// accumulator until a full byte can be written out. Flush pads the pending
// bits with zeros to the next byte boundary.
type Writer struct {
	out    *bufio.Writer
	err    error // sticky underlying failure
	buf    byte  // pending bits, left-packed on spill
	n      int   // pending bit count, 0..7
	closed bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

// WriteBit appends one bit. Once 8 bits accumulate, a byte is emitted.
func (w *Writer) WriteBit(bit bool) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	w.buf <<= 1
	if bit {
		w.buf |= 1
	}
	w.n++
	if w.n == 8 {
		w.spill()
	}
	return w.err
}

// spill pads the accumulator with zero bits up to the byte boundary and
// writes it out. No-op when nothing is pending.
func (w *Writer) spill() {
	if w.n == 0 {
		return
	}
	w.buf <<= uint(8 - w.n)
	if err := w.out.WriteByte(w.buf); err != nil {
		w.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
	w.buf, w.n = 0, 0
}

// WriteByte writes the 8 bits of b. Byte-aligned writes bypass the
// accumulator.
func (w *Writer) WriteByte(b byte) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	if w.n == 0 {
		if err := w.out.WriteByte(b); err != nil {
			w.err = fmt.Errorf("%w: %v", ErrIO, err)
		}
		return w.err
	}
	for i := 7; i >= 0; i-- {
		if err := w.WriteBit((b>>uint(i))&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// WriteBits writes the low width bits of value, MSB-first. width must be in
// [1, 64] and value must fit in width bits.
func (w *Writer) WriteBits(value uint64, width int) error {
	if width < 1 || width > 64 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	if width < 64 && value >= 1<<uint(width) {
		return fmt.Errorf("%w: %d does not fit %d bits", ErrInvalidValue, value, width)
	}
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}

	// Aligned whole-byte fast path.
	if w.n == 0 && width%8 == 0 {
		for i := width - 8; i >= 0; i -= 8 {
			if err := w.WriteByte(byte(value >> uint(i))); err != nil {
				return err
			}
		}
		return nil
	}

	for i := width - 1; i >= 0; i-- {
		if err := w.WriteBit((value>>uint(i))&1 == 1); err != nil {
			return err
		}
	}
	return nil
}

// WriteShort writes 16 bits.
func (w *Writer) WriteShort(x uint16) error {
	return w.WriteBits(uint64(x), 16)
}

// WriteInt writes 32 bits.
func (w *Writer) WriteInt(x uint32) error {
	return w.WriteBits(uint64(x), 32)
}

// WriteLong writes 64 bits.
func (w *Writer) WriteLong(x uint64) error {
	if err := w.WriteInt(uint32(x >> 32)); err != nil {
		return err
	}
	return w.WriteInt(uint32(x))
}

// WriteFloat writes the raw IEEE-754 bit pattern of x.
func (w *Writer) WriteFloat(x float32) error {
	return w.WriteInt(math.Float32bits(x))
}

// WriteDouble writes the raw IEEE-754 bit pattern of x.
func (w *Writer) WriteDouble(x float64) error {
	return w.WriteLong(math.Float64bits(x))
}

// WriteText writes each byte of s as one 8-bit character.
func (w *Writer) WriteText(s string) error {
	for i := 0; i < len(s); i++ {
		if err := w.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads the pending bits with zeros up to the next byte boundary and
// forwards everything to the underlying stream. Safe to call repeatedly.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.spill()
	if w.err != nil {
		return w.err
	}
	if err := w.out.Flush(); err != nil {
		w.err = fmt.Errorf("%w: %v", ErrIO, err)
	}
	return w.err
}

// Close flushes and refuses further writes.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if err := w.Flush(); err != nil {
		return err
	}
	w.closed = true
	return nil
}
