package huffman

import (
	"bytes"
	"fmt"

	"github.com/sbilalh/Binary-Compression/internal/module/core/bitio"
)

// Decode rebuilds the coding tree from the serialized frequency table and
// walks the packed bit stream against it, emitting a symbol each time a leaf
// is reached. The table's summed counts give the exact output length, so the
// zero bits padding the final byte are never misread as extra symbols.
func Decode(packed []byte, freqText string) ([]byte, error) {
	table, err := Deserialize(freqText)
	if err != nil {
		return nil, err
	}
	root, err := Build(table)
	if err != nil {
		return nil, err
	}

	total := table.Total()
	r := bitio.NewReader(bytes.NewReader(packed))
	out := make([]byte, 0, total)

	// Single-symbol alphabet: every code is the one-bit "0", one bit per
	// emitted symbol.
	if root.Leaf() {
		for uint64(len(out)) < total {
			if _, err := r.ReadBit(); err != nil {
				return nil, fmt.Errorf("truncated stream after %d of %d symbols: %w", len(out), total, err)
			}
			out = append(out, root.Symbol)
		}
		return out, nil
	}

	cur := root
	for uint64(len(out)) < total {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("truncated stream after %d of %d symbols: %w", len(out), total, err)
		}
		if bit {
			cur = cur.Right
		} else {
			cur = cur.Left
		}
		if cur == nil {
			return nil, ErrTraversal
		}
		if cur.Leaf() {
			out = append(out, cur.Symbol)
			cur = root
		}
	}
	return out, nil
}
