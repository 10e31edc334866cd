package statuslist

import "errors"

// Every fallible boundary of the codec fails with one of these sentinels,
// wrapped with context via fmt.Errorf("%w: ...") so callers can match with
// errors.Is. Malformed or adversarial input (bad base64, corrupt zlib
// streams, out-of-range indices, undefined status bytes) always surfaces as
// a typed error, never a panic.
var (
	// ErrInvalidBitsPerStatus is returned when a bit width is not 1, 2, 4, or 8.
	ErrInvalidBitsPerStatus = errors.New("invalid bits per status value")

	// ErrUndefinedStatusType is returned when a raw value is outside the
	// closed set of defined status codes.
	ErrUndefinedStatusType = errors.New("undefined status type")

	// ErrInvalidStatusType is returned by the decoder when an extracted
	// field holds a value no StatusType defines.
	ErrInvalidStatusType = errors.New("invalid status type value")

	// ErrInvalidByteIndex is returned when a status index maps past the end
	// of the packed buffer, either because the query is out of range or
	// because the buffer is truncated; the decoder cannot tell these apart.
	ErrInvalidByteIndex = errors.New("invalid byte index")

	// ErrBase64Decode is returned when a status list payload is not valid
	// unpadded base64url.
	ErrBase64Decode = errors.New("base64 decoding error")

	// ErrDecompression is returned when a payload is not a valid DEFLATE
	// stream, or inflates past the decoder's size bound.
	ErrDecompression = errors.New("zlib decompression error")

	// ErrCompression is returned when compressing the packed buffer fails.
	// Unreachable for in-memory buffers in practice, but representable.
	ErrCompression = errors.New("compression error")

	// ErrJSONSerialization is returned when the JSON envelope cannot be
	// produced or parsed.
	ErrJSONSerialization = errors.New("JSON serialization error")

	// ErrCBORSerialization is returned when the CBOR envelope cannot be
	// produced.
	ErrCBORSerialization = errors.New("CBOR serialization error")
)
