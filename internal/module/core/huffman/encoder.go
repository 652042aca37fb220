package huffman

import (
	"bytes"

	"github.com/sbilalh/Binary-Compression/internal/module/core/bitio"
)

// Encode compresses input into an MSB-first bit stream, zero-padded to the
// final byte boundary, and returns it together with the serialized frequency
// table needed to decode it. Encoding an empty input fails with ErrEmptyInput
// rather than producing an empty artifact silently.
func Encode(input []byte) (packed []byte, freqText string, err error) {
	if len(input) == 0 {
		return nil, "", ErrEmptyInput
	}

	table := CountBytes(input)
	root, err := Build(table)
	if err != nil {
		return nil, "", err
	}
	codes := Codes(root)

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, b := range input {
		code := codes[b]
		for i := 0; i < len(code); i++ {
			if err := w.WriteBit(code[i] == '1'); err != nil {
				return nil, "", err
			}
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), table.Serialize(), nil
}
