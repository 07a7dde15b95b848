package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size uint8

	// Bits holds the actual values of the bits.  The most significant of
	// the Size low-order bits is the first bit.
	Bits uint64
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// CodeTable maps each byte value to its code.  Values absent from the
// frequency table keep the zero Code, recognizable by Size == 0.
type CodeTable [NumByteValues]Code

// Lookup returns the code for b.  Looking up a byte value that had a zero
// frequency when the table was generated is a programmer error.
func (ct *CodeTable) Lookup(b byte) Code {
	hc := ct[b]
	assert.Assertf(hc.Size != 0, "Lookup: byte %#02x has no code", b)
	return hc
}

// GenerateCodes walks the tree and assigns a code to every leaf, appending
// a 0 bit for each left edge and a 1 bit for each right edge.  The tree is
// not mutated.
func GenerateCodes(root *Node) *CodeTable {
	assert.Assertf(root != nil, "GenerateCodes: nil tree")

	var ct CodeTable
	var walk func(n *Node, bits uint64, size uint8)
	walk = func(n *Node, bits uint64, size uint8) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			assert.Assertf(size != 0, "GenerateCodes: leaf %#02x at depth 0", n.Value)
			ct[n.Value] = Code{Size: size, Bits: bits}
			return
		}
		walk(n.Left, bits<<1, size+1)
		walk(n.Right, bits<<1|1, size+1)
	}
	walk(root, 0, 0)
	return &ct
}
