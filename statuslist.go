package statuslist

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/segmentio/encoding/json"

	"github.com/arloliu/statuslist/internal/hash"
)

// StatusList is the transmitted form of a status list: the bit width, the
// DEFLATE-compressed packed buffer, and an optional URI pointing at an
// aggregation of related lists.
//
// A StatusList is immutable once built and safe to share across goroutines
// without synchronization. The JSON and CBOR envelopes are derived views of
// the same value, not separate state.
type StatusList struct {
	Bits           uint8
	Lst            []byte
	AggregationURI string
}

type jsonStatusList struct {
	Bits           uint8  `json:"bits"`
	Lst            string `json:"lst"`
	AggregationURI string `json:"aggregation_uri,omitempty"`
}

type cborStatusList struct {
	Bits           uint8  `cbor:"bits"`
	Lst            []byte `cbor:"lst"`
	AggregationURI string `cbor:"aggregation_uri,omitempty"`
}

// cborEncMode keeps struct field order (bits, lst, aggregation_uri), which
// is the key order other status-list implementations put on the wire. Do
// not switch to a sorting mode: sorted keys would put "lst" before "bits"
// and break bit-exact envelope comparison.
var cborEncMode cbor.EncMode

func init() {
	var err error
	cborEncMode, err = cbor.EncOptions{}.EncMode()
	if err != nil {
		panic("statuslist: CBOR encoder initialization failed: " + err.Error())
	}
}

// ToJSON renders the JSON envelope:
//
//	{"bits":1,"lst":"eNrbuRgAAhcBXQ","aggregation_uri":"..."}
//
// The compressed payload is base64url-encoded without padding;
// aggregation_uri is omitted when unset.
func (s *StatusList) ToJSON() (string, error) {
	envelope := jsonStatusList{
		Bits:           s.Bits,
		Lst:            base64.RawURLEncoding.EncodeToString(s.Lst),
		AggregationURI: s.AggregationURI,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrJSONSerialization, err)
	}

	return string(data), nil
}

// ToCBOR renders the CBOR envelope — a map with an unsigned "bits", a byte
// string "lst", and "aggregation_uri" only when set — and returns the
// serialized bytes as a lowercase hex string.
func (s *StatusList) ToCBOR() (string, error) {
	envelope := cborStatusList{
		Bits:           s.Bits,
		Lst:            s.Lst,
		AggregationURI: s.AggregationURI,
	}

	data, err := cborEncMode.Marshal(envelope)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCBORSerialization, err)
	}

	return hex.EncodeToString(data), nil
}

// StatusListFromJSON parses a JSON envelope produced by ToJSON (or any
// conforming issuer) back into a StatusList with the compressed payload in
// raw bytes.
//
// Fails with ErrJSONSerialization on malformed JSON, ErrInvalidBitsPerStatus
// on an undefined width, and ErrBase64Decode when "lst" is not unpadded
// base64url. The payload itself is not decompressed here; NewDecoder does
// that.
func StatusListFromJSON(data []byte) (*StatusList, error) {
	var envelope jsonStatusList
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrJSONSerialization, err)
	}

	if _, err := BitsPerStatusFrom(envelope.Bits); err != nil {
		return nil, err
	}

	compressed, err := base64.RawURLEncoding.DecodeString(envelope.Lst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64Decode, err)
	}

	return &StatusList{
		Bits:           envelope.Bits,
		Lst:            compressed,
		AggregationURI: envelope.AggregationURI,
	}, nil
}

// Fingerprint returns the xxHash64 of the compressed payload. Two builds of
// the same sequence at the same width produce the same fingerprint, which
// makes it a cheap cache key when aggregating or deduplicating lists. Not a
// cryptographic integrity check.
func (s *StatusList) Fingerprint() uint64 {
	return hash.Sum64(s.Lst)
}
