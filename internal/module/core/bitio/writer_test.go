package bitio

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteBitsMSBFirstPacking(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for _, bit := range []bool{true, false, true, true, false, false, true, false} {
		if err := w.WriteBit(bit); err != nil {
			t.Fatalf("WriteBit: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xB2 {
		t.Errorf("expected [0xB2], got %v", got)
	}
}

func TestFlushPadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	for i := 0; i < 3; i++ {
		if err := w.WriteBit(true); err != nil {
			t.Fatalf("WriteBit: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.Bytes(); len(got) != 1 || got[0] != 0xE0 {
		t.Errorf("expected [0xE0], got %v", got)
	}

	// A second flush with nothing pending must not emit another byte.
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 1 {
		t.Errorf("expected 1 byte after repeated flush, got %d", buf.Len())
	}
}

func TestWriteBitsValidation(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})

	if err := w.WriteBits(0, 0); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("width 0: expected ErrInvalidWidth, got %v", err)
	}
	if err := w.WriteBits(0, 65); !errors.Is(err, ErrInvalidWidth) {
		t.Errorf("width 65: expected ErrInvalidWidth, got %v", err)
	}
	if err := w.WriteBits(8, 3); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("value 8 in 3 bits: expected ErrInvalidValue, got %v", err)
	}
	if err := w.WriteBits(7, 3); err != nil {
		t.Errorf("value 7 in 3 bits: expected nil, got %v", err)
	}
}

func TestWriteAfterClose(t *testing.T) {
	w := NewWriter(&bytes.Buffer{})
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.WriteBit(true); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if err := w.WriteBits(1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	// Closing twice is a no-op.
	if err := w.Close(); err != nil {
		t.Errorf("second Close: expected nil, got %v", err)
	}
}

func TestWriteByteUnaligned(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.WriteBit(true); err != nil {
		t.Fatalf("WriteBit: %v", err)
	}
	if err := w.WriteByte(0xFF); err != nil {
		t.Fatalf("WriteByte: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	// 1 followed by 11111111, zero-padded: 11111111 10000000.
	if got := buf.Bytes(); len(got) != 2 || got[0] != 0xFF || got[1] != 0x80 {
		t.Errorf("expected [0xFF 0x80], got %v", got)
	}
}
