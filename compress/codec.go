package compress

// Compressor compresses a complete in-memory payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
//
// Implementations must tolerate arbitrary input: corrupted or truncated
// streams return an error, never a panic, and decompressed output is
// bounded so adversarial payloads cannot exhaust memory.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload. Returns an error if the data is corrupted, uses an
	// incompatible format, or inflates past the implementation's bound.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}
