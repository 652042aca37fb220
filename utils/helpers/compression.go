package helpers

import (
	"bytes"
	"io"

	"github.com/icza/huffman/hufio"
)

// Compress packs data with an adaptive Huffman stream. Used for message
// payloads where the frequency table must not travel with the data.
func Compress(data []byte) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := hufio.NewWriter(buf)

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func Decompress(data []byte) ([]byte, error) {
	r := hufio.NewReader(bytes.NewReader(data))
	if data, err := io.ReadAll(r); err != nil {
		return nil, err
	} else {
		return data, nil
	}
}
