package statuslist

import (
	"fmt"

	"github.com/arloliu/statuslist/compress"
)

// Encoder packs an ordered sequence of status codes into the minimal byte
// buffer for a given bit width, and finalizes packed buffers into wire-ready
// StatusList values.
//
// Encoders are stateless beyond the configured width and safe for concurrent
// use.
type Encoder struct {
	bits  BitsPerStatus
	codec compress.ZlibCodec
}

// NewEncoder creates an encoder for the given bit width.
func NewEncoder(bits BitsPerStatus) *Encoder {
	return &Encoder{
		bits:  bits,
		codec: compress.NewZlibCodec(),
	}
}

// bitShift returns the shift of a slot's field within its byte. The layout
// is fixed by the wire format:
//
//	1-bit: 8 slots per byte, packed right to left (slot 0 = bit 0)
//	2-bit: 4 slots per byte, packed right to left in pairs
//	4-bit: 2 slots per byte, packed LEFT to right: slot 0 takes the high
//	       nibble, slot 1 the low nibble — the reverse of the 1/2-bit
//	       convention. Deliberate per the wire format; do not unify.
//	8-bit: one slot per byte
func (b BitsPerStatus) bitShift(slot int) int {
	switch b {
	case OneBit:
		return slot
	case TwoBit:
		return slot * 2
	case FourBit:
		if slot == 0 {
			return 4
		}
		return 0
	default: // EightBit
		return 0
	}
}

// EncodeStatus writes a single status into its slot in buf, leaving every
// other slot untouched. The caller guarantees buf is large enough for index.
func (e *Encoder) EncodeStatus(buf []byte, index int, status StatusType) {
	perByte := e.bits.StatusesPerByte()
	byteIndex := index / perByte
	slot := index % perByte

	shift := e.bits.bitShift(slot)
	mask := byte(1)<<uint(e.bits) - 1

	buf[byteIndex] &^= mask << shift
	buf[byteIndex] |= (byte(status) & mask) << shift
}

// EncodeStatuses packs statuses into a fresh buffer of
// ceil(len(statuses)/statusesPerByte) bytes. The status at sequence position
// i lands in slot i; an empty sequence yields an empty buffer.
//
// Packing itself has no failure modes: every StatusType was validated at
// construction and every width fits its slot.
func (e *Encoder) EncodeStatuses(statuses []StatusType) []byte {
	if e.bits == EightBit {
		buf := make([]byte, len(statuses))
		for i, status := range statuses {
			buf[i] = byte(status)
		}

		return buf
	}

	perByte := e.bits.StatusesPerByte()
	buf := make([]byte, (len(statuses)+perByte-1)/perByte)
	for i, status := range statuses {
		e.EncodeStatus(buf, i, status)
	}

	return buf
}

// Finalize compresses a packed buffer and wraps it into an immutable
// StatusList carrying the encoder's bit width. aggregationURI is optional;
// an empty string leaves the envelope field absent.
func (e *Encoder) Finalize(packed []byte, aggregationURI string) (*StatusList, error) {
	compressed, err := e.codec.Compress(packed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompression, err)
	}

	return &StatusList{
		Bits:           uint8(e.bits),
		Lst:            compressed,
		AggregationURI: aggregationURI,
	}, nil
}
