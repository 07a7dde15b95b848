package huffman

// Node is a node in a Huffman tree.  A leaf carries a byte value and its
// weight; an internal node carries exactly two children and the sum of
// their weights.  The one exception is the root synthesized for a
// single-symbol input, which has only a left child.
type Node struct {
	// Value is the byte value of a leaf.  Meaningless for internal nodes.
	Value byte

	// Weight is the cumulative frequency of every leaf below this node.
	Weight uint64

	Left  *Node
	Right *Node
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
