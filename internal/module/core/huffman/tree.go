package huffman

import (
	"container/heap"
	"sort"
)

// Node is one vertex of the coding tree. Leaves carry a symbol; internal
// nodes carry the summed frequency of their two children. Children are owned
// exclusively by their parent and never mutated after construction.
type Node struct {
	Left   *Node
	Right  *Node
	Freq   uint64
	Symbol byte
	seq    int
}

// Leaf reports whether n carries a symbol.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// nodeHeap is a min-heap keyed by frequency. Equal frequencies fall back to
// creation order, which makes tree construction fully deterministic: leaves
// are created in ascending symbol order, so the encoder and the decoder
// always rebuild the identical tree from the same frequency table.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].Freq != h[j].Freq {
		return h[i].Freq < h[j].Freq
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*Node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// Build constructs the coding tree by greedily merging the two
// lowest-frequency nodes until one remains. A table with a single entry
// yields a root that is itself a leaf; the merge loop never runs.
func Build(t *Table) (*Node, error) {
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyInput
	}

	syms := t.Symbols()
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	h := make(nodeHeap, 0, len(syms))
	seq := 0
	for _, sym := range syms {
		h = append(h, &Node{Symbol: sym, Freq: t.Count(sym), seq: seq})
		seq++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		seq++
		heap.Push(&h, &Node{Left: left, Right: right, Freq: left.Freq + right.Freq, seq: seq})
	}
	return heap.Pop(&h).(*Node), nil
}

// Codes derives the symbol to bit-string mapping by walking the tree, "0" for
// a left edge and "1" for a right edge. A single-leaf root gets the one-bit
// code "0" so that every symbol occupies at least one bit on the wire.
func Codes(root *Node) map[byte]string {
	codes := make(map[byte]string)
	if root == nil {
		return codes
	}
	if root.Leaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	var walk func(n *Node, path string)
	walk = func(n *Node, path string) {
		if n.Leaf() {
			codes[n.Symbol] = path
			return
		}
		walk(n.Left, path+"0")
		walk(n.Right, path+"1")
	}
	walk(root, "")
	return codes
}
