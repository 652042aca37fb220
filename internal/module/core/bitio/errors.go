package bitio

import "errors"

var (
	// ErrEndOfStream is returned when a read is attempted past the last available bit.
	ErrEndOfStream = errors.New("bitio: end of stream")

	// ErrInvalidWidth is returned when a bit width is outside [1, 64].
	ErrInvalidWidth = errors.New("bitio: invalid bit width")

	// ErrInvalidValue is returned when a value does not fit the requested width.
	ErrInvalidValue = errors.New("bitio: value out of range for width")

	// ErrNotByteAligned is returned when a text decode is attempted while the
	// remaining bit count is not a multiple of 8.
	ErrNotByteAligned = errors.New("bitio: remaining bits are not byte aligned")

	// ErrClosed is returned on writes after Close.
	ErrClosed = errors.New("bitio: writer is closed")

	// ErrIO wraps failures of the underlying byte stream. These are kept apart
	// from the codec-level errors above so callers can tell a broken transport
	// from a broken bit stream.
	ErrIO = errors.New("bitio: stream failure")
)
