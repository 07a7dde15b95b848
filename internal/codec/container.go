package codec

import (
	"errors"
)

// Magic identifies the container format ("HUFF" read as a little-endian
// uint32).
const Magic uint32 = 0x48554646

const (
	magicSize  = 4
	lengthSize = 8
	tableSize  = 256 * 8

	// emptySize is the full size of a container holding zero original
	// bytes: magic and length only, no frequency table and no body.
	emptySize = magicSize + lengthSize

	// headerSize is the fixed header size when the original length is
	// greater than zero.
	headerSize = emptySize + tableSize
)

var (
	// ErrInvalidFormat means the magic marker is wrong or the header
	// contradicts itself.  Nothing past the offending field is touched.
	ErrInvalidFormat = errors.New("codec: not a huffpack container")

	// ErrTruncatedHeader means the container ends inside the fixed header.
	ErrTruncatedHeader = errors.New("codec: truncated container header")

	// ErrTruncatedBody means the body ran out of bits before the declared
	// original length was reproduced.  The container is corrupt or cut
	// short.
	ErrTruncatedBody = errors.New("codec: container body is truncated")
)
