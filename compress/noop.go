package compress

// NoOpCodec bypasses compression, returning input slices unchanged.
//
// It exists for tests and overhead measurements; the wire format never uses
// it. The returned slices alias the input.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data as-is.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
