// Package huffman implements byte-oriented Huffman coding: frequency
// counting over the 256 possible byte values, greedy tree construction via
// a min-heap, and derivation of a prefix code for every value that occurs.
//
// The code is not canonical.  The only guarantee is self-consistency:
// building a tree twice from the same frequency table assigns the same bit
// string to the same byte value, which is what the container format in
// internal/codec relies on.
package huffman
