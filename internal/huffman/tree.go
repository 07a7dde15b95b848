package huffman

import (
	"container/heap"
	"errors"

	"github.com/chronos-tachyon/assert"
)

// ErrNoSymbols is returned by BuildTree when every count in the frequency
// table is zero.  Callers are expected to handle empty input before
// building a tree.
var ErrNoSymbols = errors.New("huffman: frequency table has no symbols")

// BuildTree constructs a Huffman tree from the frequency table by
// repeatedly merging the two lowest-weight nodes.  Leaves are pushed in
// byte-value order and the heap compares weights only, so the same table
// always yields the same tree.
func BuildTree(ft *FreqTable) (*Node, error) {
	assert.Assertf(ft != nil, "BuildTree: nil frequency table")

	h := nodeHeap{list: make([]*Node, 0, ft.Distinct())}
	for value := 0; value < NumByteValues; value++ {
		if freq := ft[value]; freq != 0 {
			h.list = append(h.list, &Node{Value: byte(value), Weight: freq})
		}
	}
	if len(h.list) == 0 {
		return nil, ErrNoSymbols
	}
	h.Init()

	// A lone leaf gets a dummy parent so that its code is "0" rather than
	// the empty string.
	if h.Len() == 1 {
		leaf := heap.Pop(&h).(*Node)
		return &Node{Weight: leaf.Weight, Left: leaf}, nil
	}

	for h.Len() > 1 {
		a := heap.Pop(&h).(*Node)
		b := heap.Pop(&h).(*Node)
		merged := &Node{
			Weight: saturatingAdd(a.Weight, b.Weight),
			Left:   a,
			Right:  b,
		}
		heap.Push(&h, merged)
	}
	return heap.Pop(&h).(*Node), nil
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return h.list[i].Weight < h.list[j].Weight
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
