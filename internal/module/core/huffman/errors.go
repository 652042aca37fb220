package huffman

import "errors"

var (
	// ErrEmptyInput is returned when an encode, or a tree build, is attempted
	// with no symbols to work from.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMalformedEntry is returned when a serialized frequency table line
	// does not match the <8-bit binary>:<decimal count> format.
	ErrMalformedEntry = errors.New("huffman: malformed frequency entry")

	// ErrTraversal reports an internal tree inconsistency hit while decoding.
	// A well-formed tree never produces it.
	ErrTraversal = errors.New("huffman: broken tree traversal")
)
