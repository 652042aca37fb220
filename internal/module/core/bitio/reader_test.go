package bitio

import (
	"bytes"
	"errors"
	"testing"
)

func TestReadWriteBitsBoundary(t *testing.T) {
	// 5 + 11 + 16 = 32 bits, exactly four bytes.
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteBits(22, 5); err != nil {
		t.Fatalf("WriteBits(22, 5): %v", err)
	}
	if err := w.WriteBits(1445, 11); err != nil {
		t.Fatalf("WriteBits(1445, 11): %v", err)
	}
	if err := w.WriteBits(48879, 16); err != nil {
		t.Fatalf("WriteBits(48879, 16): %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 4 {
		t.Fatalf("expected 4 bytes, got %d", buf.Len())
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	for _, c := range []struct {
		width int
		want  uint64
	}{{5, 22}, {11, 1445}, {16, 48879}} {
		got, err := r.ReadBits(c.width)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", c.width, err)
		}
		if got != c.want {
			t.Errorf("ReadBits(%d): expected %d, got %d", c.width, c.want, got)
		}
	}
	if !r.Exhausted() {
		t.Errorf("expected reader to be exhausted")
	}
}

func TestReadBitMSBFirst(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xB2}))
	want := []bool{true, false, true, true, false, false, true, false}
	for i, expect := range want {
		bit, err := r.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit %d: %v", i, err)
		}
		if bit != expect {
			t.Errorf("bit %d: expected %v, got %v", i, expect, bit)
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("expected ErrEndOfStream, got %v", err)
	}
}

func TestReadBitsWidthValidation(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF}))
	if _, err := r.ReadBits(0); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("width 0: expected ErrInvalidWidth, got %v", err)
	}
	if _, err := r.ReadBits(65); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("width 65: expected ErrInvalidWidth, got %v", err)
	}
}

func TestReadByteAcrossBoundary(t *testing.T) {
	// 0b1_11110000_1111111 laid out as 0xF8, 0x7F.
	r := NewReader(bytes.NewReader([]byte{0xF8, 0x7F}))
	bit, err := r.ReadBit()
	if err != nil || !bit {
		t.Fatalf("ReadBit: expected true, got %v (%v)", bit, err)
	}
	b, err := r.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0xF0 {
		t.Errorf("expected 0xF0, got %#x", b)
	}
}

func TestReadFixedWidthIntegers(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteShort(0xCAFE); err != nil {
		t.Fatalf("WriteShort: %v", err)
	}
	if err := w.WriteInt(0xDEADBEEF); err != nil {
		t.Fatalf("WriteInt: %v", err)
	}
	if err := w.WriteLong(0x0123456789ABCDEF); err != nil {
		t.Fatalf("WriteLong: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if v, err := r.ReadShort(); err != nil || v != 0xCAFE {
		t.Errorf("ReadShort: expected 0xCAFE, got %#x (%v)", v, err)
	}
	if v, err := r.ReadInt(); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadInt: expected 0xDEADBEEF, got %#x (%v)", v, err)
	}
	if v, err := r.ReadLong(); err != nil || v != 0x0123456789ABCDEF {
		t.Errorf("ReadLong: expected 0x0123456789ABCDEF, got %#x (%v)", v, err)
	}
}

func TestReadFloatDoubleRawBits(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteFloat(3.14); err != nil {
		t.Fatalf("WriteFloat: %v", err)
	}
	if err := w.WriteDouble(-2.718281828); err != nil {
		t.Fatalf("WriteDouble: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if v, err := r.ReadFloat(); err != nil || v != 3.14 {
		t.Errorf("ReadFloat: expected 3.14, got %v (%v)", v, err)
	}
	if v, err := r.ReadDouble(); err != nil || v != -2.718281828 {
		t.Errorf("ReadDouble: expected -2.718281828, got %v (%v)", v, err)
	}
}

func TestReadRemainingAsText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteText("hi"); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))
	if _, err := r.ReadByte(); err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	text, err := r.ReadRemainingAsText()
	if err != nil {
		t.Fatalf("ReadRemainingAsText: %v", err)
	}
	if text != "i" {
		t.Errorf("expected %q, got %q", "i", text)
	}
}

func TestReadRemainingAsTextUnaligned(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xAB, 0xCD}))
	for i := 0; i < 3; i++ {
		if _, err := r.ReadBit(); err != nil {
			t.Fatalf("ReadBit: %v", err)
		}
	}
	if _, err := r.ReadRemainingAsText(); !errors.Is(err, ErrNotByteAligned) {
		t.Errorf("expected ErrNotByteAligned, got %v", err)
	}
}

func TestReadPastEnd(t *testing.T) {
	r := NewReader(bytes.NewReader(nil))
	if !r.Exhausted() {
		t.Errorf("expected empty reader to be exhausted")
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("ReadBit: expected ErrEndOfStream, got %v", err)
	}
	if _, err := r.ReadByte(); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("ReadByte: expected ErrEndOfStream, got %v", err)
	}
	if _, err := r.ReadBits(12); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("ReadBits: expected ErrEndOfStream, got %v", err)
	}
}
