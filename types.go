package statuslist

import "fmt"

type (
	// StatusType is the 8-bit status code assigned to a single credential
	// inside a status list.
	StatusType uint8

	// BitsPerStatus is the number of bits allocated to each status code in
	// the packed list. Only 1, 2, 4, and 8 are defined.
	BitsPerStatus uint8
)

const (
	StatusValid                 StatusType = 0x00 // StatusValid marks the credential as valid.
	StatusInvalid               StatusType = 0x01 // StatusInvalid marks the credential as revoked.
	StatusSuspended             StatusType = 0x02 // StatusSuspended marks the credential as temporarily invalid.
	StatusApplicationSpecific3  StatusType = 0x03 // StatusApplicationSpecific3 is reserved for application use.
	StatusApplicationSpecific11 StatusType = 0x0B // StatusApplicationSpecific11 is reserved for application use.
	StatusApplicationSpecific12 StatusType = 0x0C // StatusApplicationSpecific12 is reserved for application use.
	StatusApplicationSpecific13 StatusType = 0x0D // StatusApplicationSpecific13 is reserved for application use.
	StatusApplicationSpecific14 StatusType = 0x0E // StatusApplicationSpecific14 is reserved for application use.
	StatusApplicationSpecific15 StatusType = 0x0F // StatusApplicationSpecific15 is reserved for application use.

	OneBit   BitsPerStatus = 1 // OneBit packs 8 statuses per byte.
	TwoBit   BitsPerStatus = 2 // TwoBit packs 4 statuses per byte.
	FourBit  BitsPerStatus = 4 // FourBit packs 2 statuses per byte.
	EightBit BitsPerStatus = 8 // EightBit assigns one full byte per status.
)

// StatusTypeFrom validates a raw byte against the closed set of defined
// status codes. Values 0x04-0x0A are reserved for future registration, and
// anything at or above 0x10 does not fit the widest (4-bit nibble) layout;
// both fail with ErrUndefinedStatusType.
//
// This is the only way to turn untrusted bytes into a StatusType; the
// decoder routes every extracted field through it.
func StatusTypeFrom(value uint8) (StatusType, error) {
	switch StatusType(value) {
	case StatusValid, StatusInvalid, StatusSuspended, StatusApplicationSpecific3,
		StatusApplicationSpecific11, StatusApplicationSpecific12,
		StatusApplicationSpecific13, StatusApplicationSpecific14,
		StatusApplicationSpecific15:
		return StatusType(value), nil
	default:
		return 0, fmt.Errorf("%w: 0x%02x", ErrUndefinedStatusType, value)
	}
}

// BitsPerStatusFrom validates a raw byte as a bit width. Only 1, 2, 4, and 8
// are accepted; anything else fails with ErrInvalidBitsPerStatus.
func BitsPerStatusFrom(value uint8) (BitsPerStatus, error) {
	switch BitsPerStatus(value) {
	case OneBit, TwoBit, FourBit, EightBit:
		return BitsPerStatus(value), nil
	default:
		return 0, fmt.Errorf("%w: %d, must be 1, 2, 4, or 8", ErrInvalidBitsPerStatus, value)
	}
}

// StatusesPerByte returns how many status slots fit in one packed byte.
func (b BitsPerStatus) StatusesPerByte() int {
	return 8 / int(b)
}

func (s StatusType) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusInvalid:
		return "Invalid"
	case StatusSuspended:
		return "Suspended"
	case StatusApplicationSpecific3:
		return "ApplicationSpecific3"
	case StatusApplicationSpecific11:
		return "ApplicationSpecific11"
	case StatusApplicationSpecific12:
		return "ApplicationSpecific12"
	case StatusApplicationSpecific13:
		return "ApplicationSpecific13"
	case StatusApplicationSpecific14:
		return "ApplicationSpecific14"
	case StatusApplicationSpecific15:
		return "ApplicationSpecific15"
	default:
		return "Undefined"
	}
}

func (b BitsPerStatus) String() string {
	switch b {
	case OneBit:
		return "1-bit"
	case TwoBit:
		return "2-bit"
	case FourBit:
		return "4-bit"
	case EightBit:
		return "8-bit"
	default:
		return "Unknown"
	}
}
