package codec

import (
	"bytes"
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := make([]byte, 10240)
	rng.Read(random)

	allValues := make([]byte, 256)
	for i := range allValues {
		allValues[i] = byte(i)
	}

	testData := map[string][]byte{
		"empty":         {},
		"one byte":      {0x41},
		"five bytes":    []byte("AAABB"),
		"single symbol": bytes.Repeat([]byte{0x41}, 1000),
		"all values":    allValues,
		"text":          []byte("the quick brown fox jumps over the lazy dog"),
		"random":        random,
	}
	for name, data := range testData {
		t.Run(name, func(t *testing.T) {
			container, err := Encode(data)
			require.NoError(t, err)

			decoded, err := Decode(container)
			require.NoError(t, err)
			require.Equal(t, data, decoded)
		})
	}
}

func TestEncode_Empty(t *testing.T) {
	container, err := Encode(nil)
	require.NoError(t, err)

	// Magic and length only: no frequency table, no body.
	require.Len(t, container, emptySize)
	require.Equal(t, Magic, binary.LittleEndian.Uint32(container[:magicSize]))
	require.Equal(t, uint64(0), binary.LittleEndian.Uint64(container[magicSize:emptySize]))
}

func TestEncode_ConcreteScenario(t *testing.T) {
	container, err := Encode([]byte("AAABB"))
	require.NoError(t, err)

	// Fixed header plus a single packed body byte.
	require.Len(t, container, headerSize+1)
	require.Equal(t, Magic, binary.LittleEndian.Uint32(container[:magicSize]))
	require.Equal(t, uint64(5), binary.LittleEndian.Uint64(container[magicSize:emptySize]))

	offA := emptySize + int('A')*lengthSize
	offB := emptySize + int('B')*lengthSize
	require.Equal(t, uint64(3), binary.LittleEndian.Uint64(container[offA:offA+lengthSize]))
	require.Equal(t, uint64(2), binary.LittleEndian.Uint64(container[offB:offB+lengthSize]))

	// A="1", B="0": the five payload bits are 1,1,1,0,0 and the low three
	// bits are zero padding.
	require.Equal(t, byte(0xE0), container[headerSize])
}

func TestDecode_BadMagic(t *testing.T) {
	container, err := Encode([]byte("some data"))
	require.NoError(t, err)

	container[0] ^= 0xFF
	_, err = Decode(container)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecode_TruncatedHeader(t *testing.T) {
	container, err := Encode([]byte("some data"))
	require.NoError(t, err)

	for _, cut := range []int{0, 3, magicSize, emptySize - 1, emptySize + 7, headerSize - 1} {
		_, err := Decode(container[:cut])
		require.ErrorIs(t, err, ErrTruncatedHeader, "cut at %d", cut)
	}
}

func TestDecode_TruncatedBody(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 100)
	container, err := Encode(data)
	require.NoError(t, err)

	_, err = Decode(container[:len(container)-1])
	require.ErrorIs(t, err, ErrTruncatedBody)

	_, err = Decode(container[:headerSize])
	require.ErrorIs(t, err, ErrTruncatedBody)
}

func TestDecode_FrequencyMismatch(t *testing.T) {
	container, err := Encode([]byte("some data"))
	require.NoError(t, err)

	// Inflate one count so the table no longer sums to the declared
	// original length.
	off := emptySize + int('s')*lengthSize
	count := binary.LittleEndian.Uint64(container[off : off+lengthSize])
	binary.LittleEndian.PutUint64(container[off:off+lengthSize], count+1)

	_, err = Decode(container)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDecode_EmptyContainer(t *testing.T) {
	container, err := Encode(nil)
	require.NoError(t, err)

	decoded, err := Decode(container)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestEncode_SkewedDataCompresses(t *testing.T) {
	// 99% one value: the body must come out smaller than the input.
	data := bytes.Repeat([]byte{0x00}, 9900)
	for i := 0; i < 100; i++ {
		data = append(data, byte(i%10+1))
	}
	container, err := Encode(data)
	require.NoError(t, err)

	body := len(container) - headerSize
	require.Less(t, body, len(data))
}

func TestEncode_UniformDataNearIdentity(t *testing.T) {
	// 256 equally frequent values: every code is 8 bits, so the body is
	// the same size as the input.
	data := make([]byte, 0, 1024)
	for rep := 0; rep < 4; rep++ {
		for v := 0; v < 256; v++ {
			data = append(data, byte(v))
		}
	}
	container, err := Encode(data)
	require.NoError(t, err)

	body := len(container) - headerSize
	require.LessOrEqual(t, body, len(data)+1)
}
