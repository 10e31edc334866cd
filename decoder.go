package statuslist

import (
	"encoding/base64"
	"fmt"

	"github.com/arloliu/statuslist/compress"
)

// Decoder reads individual status codes out of a status list payload.
//
// The compressed payload is inflated once at construction; every StatusAt
// call afterwards is an O(1) read of the raw buffer. A Decoder is immutable
// after construction and safe for concurrent readers.
type Decoder struct {
	raw  []byte
	bits BitsPerStatus
}

// NewDecoder decompresses list.Lst and prepares per-index reads.
//
// Fails with ErrInvalidBitsPerStatus if the list carries an undefined bit
// width, or ErrDecompression if the payload is not a valid DEFLATE stream.
// Arbitrary or adversarial payloads are handled without panicking.
func NewDecoder(list *StatusList) (*Decoder, error) {
	bits, err := BitsPerStatusFrom(list.Bits)
	if err != nil {
		return nil, err
	}

	raw, err := compress.NewZlibCodec().Decompress(list.Lst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}

	return &Decoder{raw: raw, bits: bits}, nil
}

// NewDecoderFromBase64 builds a Decoder from the JSON envelope's "lst"
// value: an unpadded base64url string wrapping the compressed payload.
//
// Fails with ErrBase64Decode on malformed base64url, then follows the same
// path as NewDecoder.
func NewDecoderFromBase64(encoded string, bits uint8) (*Decoder, error) {
	compressed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64Decode, err)
	}

	return NewDecoder(&StatusList{Bits: bits, Lst: compressed})
}

// StatusAt returns the status code stored at the given list index.
//
// Fails with ErrInvalidByteIndex when the index maps past the end of the
// decompressed buffer — an out-of-range query and a truncated payload look
// identical here — and with ErrInvalidStatusType when the extracted field
// holds a value outside the defined status set.
func (d *Decoder) StatusAt(index int) (StatusType, error) {
	perByte := d.bits.StatusesPerByte()
	byteIndex := index / perByte
	slot := index % perByte

	if index < 0 || byteIndex >= len(d.raw) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidByteIndex, byteIndex)
	}

	shift := d.bits.bitShift(slot)
	mask := byte(1)<<uint(d.bits) - 1
	value := (d.raw[byteIndex] >> shift) & mask

	status, err := StatusTypeFrom(value)
	if err != nil {
		return 0, fmt.Errorf("%w: 0x%02x", ErrInvalidStatusType, value)
	}

	return status, nil
}

// Len returns the total number of addressable status slots, including any
// unused slots in the final byte.
func (d *Decoder) Len() int {
	return len(d.raw) * d.bits.StatusesPerByte()
}

// IsEmpty reports whether the decompressed buffer holds no statuses at all.
func (d *Decoder) IsEmpty() bool {
	return len(d.raw) == 0
}

// RawBytes returns the decompressed packed buffer. The slice is owned by
// the Decoder and must not be modified.
func (d *Decoder) RawBytes() []byte {
	return d.raw
}

// BitsPerStatus returns the bit width the decoder reads at.
func (d *Decoder) BitsPerStatus() BitsPerStatus {
	return d.bits
}
