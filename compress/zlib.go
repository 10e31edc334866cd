package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// MaxDecompressedSize caps the output of a single Decompress call. A status
// list of 16 MiB addresses over 134 million credentials at 1 bit each, far
// beyond any realistic list, while keeping decompression bombs from
// allocating without limit.
const MaxDecompressedSize = 16 << 20

// ErrDecompressedTooLarge is returned when a payload inflates past
// MaxDecompressedSize.
var ErrDecompressedTooLarge = errors.New("decompressed payload exceeds size limit")

// ZlibCodec implements the wire-mandated payload compression: zlib-framed
// DEFLATE at the best compression level.
//
// Packed status lists are dominated by long runs of the same value, so the
// extra effort of the best level pays for itself in envelope size; the
// lists are small enough that compression speed is irrelevant.
//
// The zero value is ready to use and safe for concurrent use: both
// operations are stateless.
type ZlibCodec struct{}

var _ Codec = (*ZlibCodec)(nil)

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress compresses data at zlib.BestCompression.
//
// An empty input still produces a valid (header-only) zlib stream, so an
// empty status list round-trips like any other.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib flush: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream produced by Compress (or any other
// DEFLATE implementation). Corrupted, truncated, or non-zlib input returns
// an error; output larger than MaxDecompressedSize returns
// ErrDecompressedTooLarge.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib reader: %w", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	// Read one byte past the limit so overflow is distinguishable from an
	// exact-size payload.
	n, err := buf.ReadFrom(io.LimitReader(r, MaxDecompressedSize+1))
	if err != nil {
		return nil, fmt.Errorf("zlib decompress: %w", err)
	}
	if n > MaxDecompressedSize {
		return nil, ErrDecompressedTooLarge
	}

	return buf.Bytes(), nil
}
