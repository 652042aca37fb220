package huffman

import (
	"fmt"
	"strings"
)

// Render draws the coding tree as text: right branches extend horizontally,
// left branches extend vertically, and '*' marks an internal node whose
// frequency is the sum of its children.
func Render(root *Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	renderRight(&sb, root, 0)
	return sb.String()
}

func renderRight(sb *strings.Builder, n *Node, indent int) {
	if n.Left != nil && n.Right != nil {
		sb.WriteString("*-")
		renderRight(sb, n.Right, indent+1)
		renderLeft(sb, n.Left, indent)
		return
	}
	fmt.Fprintf(sb, "%c(%d)\n", n.Symbol, n.Freq)
	for i := 0; i < indent; i++ {
		sb.WriteString("| ")
	}
	sb.WriteString("\n")
}

func renderLeft(sb *strings.Builder, n *Node, indent int) {
	for i := 0; i < indent-1; i++ {
		sb.WriteString("| ")
	}
	renderRight(sb, n, indent)
}
