// Package codec turns raw bytes into self-describing Huffman containers
// and back.  A container is laid out as:
//
//	magic           uint32      0x48554646
//	originalLength  uint64      byte count of the original input
//	freqTable       [256]uint64 only present when originalLength > 0
//	body            packed code bits, MSB-first, final byte zero-padded
//
// All integers are little-endian.  The frequency table, not the tree, is
// persisted: decode rebuilds the tree with the same deterministic
// algorithm encode used, so both sides agree on every code.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"

	"huffpack/internal/huffman"
)

// Encode compresses data into a container.  Empty input is legal and
// yields the 12-byte empty container.
func Encode(data []byte) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, emptySize+len(data)/2))

	var scratch [lengthSize]byte
	binary.LittleEndian.PutUint32(scratch[:magicSize], Magic)
	buf.Write(scratch[:magicSize])
	binary.LittleEndian.PutUint64(scratch[:], uint64(len(data)))
	buf.Write(scratch[:])

	if len(data) == 0 {
		return buf.Bytes(), nil
	}

	ft := huffman.CountFrequencies(data)
	root, err := huffman.BuildTree(ft)
	if err != nil {
		return nil, err
	}
	codes := huffman.GenerateCodes(root)

	for _, freq := range ft {
		binary.LittleEndian.PutUint64(scratch[:], freq)
		buf.Write(scratch[:])
	}

	w := bitio.NewWriter(buf)
	for _, b := range data {
		hc := codes.Lookup(b)
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, fmt.Errorf("codec: packing body: %w", err)
		}
	}
	// Close flushes the final partial byte, zero-padded on the low side.
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("codec: packing body: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode reproduces the original bytes from a container produced by
// Encode.  It never returns partial output: the result is either the full
// originalLength bytes or an error.
func Decode(container []byte) ([]byte, error) {
	if len(container) < magicSize {
		return nil, ErrTruncatedHeader
	}
	if binary.LittleEndian.Uint32(container[:magicSize]) != Magic {
		return nil, ErrInvalidFormat
	}
	if len(container) < emptySize {
		return nil, ErrTruncatedHeader
	}
	originalLength := binary.LittleEndian.Uint64(container[magicSize:emptySize])
	if originalLength == 0 {
		return []byte{}, nil
	}
	if len(container) < headerSize {
		return nil, ErrTruncatedHeader
	}

	var ft huffman.FreqTable
	for i := range ft {
		off := emptySize + i*lengthSize
		ft[i] = binary.LittleEndian.Uint64(container[off : off+lengthSize])
	}
	if total := ft.Total(); total != originalLength {
		return nil, fmt.Errorf("%w: frequency table sums to %d, header declares %d",
			ErrInvalidFormat, total, originalLength)
	}

	// Every decoded byte consumes at least one body bit, which bounds the
	// output before anything is allocated.
	body := container[headerSize:]
	if originalLength > uint64(len(body))*8 {
		return nil, ErrTruncatedBody
	}

	root, err := huffman.BuildTree(&ft)
	if err != nil {
		return nil, err
	}

	r := bitio.NewReader(bytes.NewReader(body))
	out := make([]byte, 0, originalLength)
	for uint64(len(out)) < originalLength {
		n := root
		for !n.IsLeaf() {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, ErrTruncatedBody
			}
			if bit {
				n = n.Right
			} else {
				n = n.Left
			}
			if n == nil {
				// Only reachable when a corrupt body steers into the
				// missing right child of a single-symbol root.
				return nil, ErrTruncatedBody
			}
		}
		out = append(out, n.Value)
	}
	return out, nil
}
