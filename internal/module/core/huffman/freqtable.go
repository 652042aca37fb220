// Package huffman implements the coding scheme used by the service: a
// frequency-driven prefix code, its line-oriented frequency-table format, and
// the matching bit-stream encoder and decoder.
package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Table maps each symbol observed in one input to its occurrence count.
// It remembers the order in which symbols were first seen, so that a
// serialized table lists entries in discovery order.
type Table struct {
	counts [256]uint64
	order  []byte
}

func NewTable() *Table {
	return &Table{}
}

// CountBytes builds a table from a single scan over input.
func CountBytes(input []byte) *Table {
	t := NewTable()
	for _, b := range input {
		t.Add(b, 1)
	}
	return t
}

// Add increases the count of sym by n. The first addition of a symbol fixes
// its position in the serialization order.
func (t *Table) Add(sym byte, n uint64) {
	if n == 0 {
		return
	}
	if t.counts[sym] == 0 {
		t.order = append(t.order, sym)
	}
	t.counts[sym] += n
}

// Count returns the occurrence count of sym, zero if absent.
func (t *Table) Count(sym byte) uint64 {
	return t.counts[sym]
}

// Len returns the number of distinct symbols.
func (t *Table) Len() int {
	return len(t.order)
}

// Total returns the summed count over all symbols, i.e. the input length.
func (t *Table) Total() uint64 {
	var sum uint64
	for _, sym := range t.order {
		sum += t.counts[sym]
	}
	return sum
}

// Symbols returns the distinct symbols in discovery order.
func (t *Table) Symbols() []byte {
	out := make([]byte, len(t.order))
	copy(out, t.order)
	return out
}

// Serialize renders one line per entry: the symbol as 8 zero-padded binary
// digits, a ':', the decimal count, and a newline.
func (t *Table) Serialize() string {
	var sb strings.Builder
	for _, sym := range t.order {
		fmt.Fprintf(&sb, "%08b:%d\n", sym, t.counts[sym])
	}
	return sb.String()
}

// Deserialize parses the format produced by Serialize. A missing final
// newline is tolerated; anything else off-format fails with ErrMalformedEntry.
func Deserialize(text string) (*Table, error) {
	t := NewTable()
	for i := 0; i < len(text); {
		if i+9 > len(text) {
			return nil, fmt.Errorf("%w: truncated entry at offset %d", ErrMalformedEntry, i)
		}
		sym, err := strconv.ParseUint(text[i:i+8], 2, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: bad symbol bits %q", ErrMalformedEntry, text[i:i+8])
		}
		if text[i+8] != ':' {
			return nil, fmt.Errorf("%w: missing ':' after symbol at offset %d", ErrMalformedEntry, i+8)
		}

		j := i + 9
		k := j
		for k < len(text) && text[k] != '\n' {
			k++
		}
		count, err := strconv.ParseUint(text[j:k], 10, 64)
		if err != nil || count == 0 {
			return nil, fmt.Errorf("%w: bad count %q", ErrMalformedEntry, text[j:k])
		}
		t.Add(byte(sym), count)

		i = k
		if i < len(text) {
			i++ // consume the newline
		}
	}
	return t, nil
}
