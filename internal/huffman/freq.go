package huffman

import (
	"math"
)

// NumByteValues is the size of the byte alphabet.
const NumByteValues = 256

// FreqTable maps each byte value to its number of occurrences.  A zero
// count means the value is absent.
type FreqTable [NumByteValues]uint64

// CountFrequencies scans data once and returns the occurrence count for
// each byte value.
func CountFrequencies(data []byte) *FreqTable {
	var ft FreqTable
	for _, b := range data {
		ft[b]++
	}
	return &ft
}

// Distinct returns the number of byte values with a non-zero count.
func (ft *FreqTable) Distinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, saturating at math.MaxUint64.
// Saturation only matters for tables read from untrusted containers;
// tables produced by CountFrequencies cannot overflow.
func (ft *FreqTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum = saturatingAdd(sum, freq)
	}
	return sum
}

func saturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return math.MaxUint64
	}
	return sum
}
