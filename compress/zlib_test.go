package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZlibCodec_RoundTrip(t *testing.T) {
	codec := NewZlibCodec()
	data := []byte{0xB9, 0xA3, 0x00, 0xFF, 0x42}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.NotEmpty(t, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestZlibCodec_RoundTrip_Empty(t *testing.T) {
	codec := NewZlibCodec()

	compressed, err := codec.Compress(nil)
	require.NoError(t, err)
	require.NotEmpty(t, compressed, "empty input still produces a framed stream")

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Empty(t, decompressed)
}

func TestZlibCodec_Compress_LongRuns(t *testing.T) {
	codec := NewZlibCodec()
	data := bytes.Repeat([]byte{0x00}, 12500) // a 100k-entry 1-bit list

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), 100, "run-dominated payloads compress to near nothing")

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestZlibCodec_Decompress_MalformedInput(t *testing.T) {
	codec := NewZlibCodec()

	for _, input := range [][]byte{
		nil,
		{},
		{0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("Hello World!"),
	} {
		_, err := codec.Decompress(input)
		require.Error(t, err, "input %v", input)
	}
}

func TestZlibCodec_Decompress_Truncated(t *testing.T) {
	codec := NewZlibCodec()

	compressed, err := codec.Compress([]byte{0xB9, 0xA3})
	require.NoError(t, err)

	_, err = codec.Decompress(compressed[:len(compressed)-3])
	require.Error(t, err)
}

func TestZlibCodec_Decompress_SizeLimit(t *testing.T) {
	codec := NewZlibCodec()

	// A bomb: tiny compressed stream inflating past the bound.
	compressed, err := codec.Compress(make([]byte, MaxDecompressedSize+1))
	require.NoError(t, err)
	require.Less(t, len(compressed), 1<<20)

	_, err = codec.Decompress(compressed)
	require.ErrorIs(t, err, ErrDecompressedTooLarge)
}

func TestNoOpCodec_RoundTrip(t *testing.T) {
	codec := NewNoOpCodec()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

// FuzzZlibCodec_Decompress feeds arbitrary bytes into the decompressor; it
// must return an error or a valid buffer, never panic or over-allocate.
func FuzzZlibCodec_Decompress(f *testing.F) {
	codec := NewZlibCodec()

	valid, err := codec.Compress([]byte{0xB9, 0xA3})
	if err != nil {
		f.Fatal(err)
	}
	f.Add(valid)
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := codec.Decompress(data)
		if err == nil && len(out) > MaxDecompressedSize {
			t.Fatalf("decompressed %d bytes past the limit", len(out))
		}
	})
}
