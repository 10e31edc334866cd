package statuslist

import "sync"

// Builder accumulates status codes in append order and produces immutable
// StatusList values on demand.
//
// The index of a credential in the list is defined by append order:
// zero-based, gap-free. Append is atomic — the push and the last-index
// update happen under one lock, so concurrent appenders never observe a
// torn state. Build snapshots the sequence under the same lock and does the
// pack/compress work outside it; Build never mutates the builder, so it can
// be called repeatedly and deterministically from the same state.
type Builder struct {
	mu             sync.Mutex
	statuses       []StatusType
	bits           BitsPerStatus
	aggregationURI string
	encoder        *Encoder
}

// NewBuilder creates an empty builder for the given bit width.
// Fails with ErrInvalidBitsPerStatus for widths outside {1, 2, 4, 8}.
func NewBuilder(bits uint8) (*Builder, error) {
	width, err := BitsPerStatusFrom(bits)
	if err != nil {
		return nil, err
	}

	return &Builder{
		bits:    width,
		encoder: NewEncoder(width),
	}, nil
}

// NewBuilderFromSlice creates a builder pre-seeded with an ordered sequence
// of statuses. The builder takes ownership of the slice; the last index is
// len(statuses)-1, or absent when the slice is empty.
func NewBuilderFromSlice(statuses []StatusType, bits uint8) (*Builder, error) {
	b, err := NewBuilder(bits)
	if err != nil {
		return nil, err
	}
	b.statuses = statuses

	return b, nil
}

// Append adds a status at the next free index and returns that index.
func (b *Builder) Append(status StatusType) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.statuses = append(b.statuses, status)

	return len(b.statuses) - 1
}

// LastIndex returns the index of the most recently appended status. The
// second return is false when nothing has been appended yet.
func (b *Builder) LastIndex() (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.statuses) == 0 {
		return 0, false
	}

	return len(b.statuses) - 1, true
}

// Len returns the number of accumulated statuses.
func (b *Builder) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.statuses)
}

// BitsPerStatus returns the builder's configured bit width.
func (b *Builder) BitsPerStatus() BitsPerStatus {
	return b.bits
}

// SetAggregationURI sets the optional aggregation URI carried by built
// envelopes. An empty string clears it.
func (b *Builder) SetAggregationURI(uri string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.aggregationURI = uri
}

// Build packs, compresses, and wraps the accumulated statuses into an
// immutable StatusList. The builder state is read, never modified; calling
// Build twice on the same state yields byte-identical payloads.
func (b *Builder) Build() (*StatusList, error) {
	b.mu.Lock()
	statuses := make([]StatusType, len(b.statuses))
	copy(statuses, b.statuses)
	uri := b.aggregationURI
	b.mu.Unlock()

	packed := b.encoder.EncodeStatuses(statuses)

	return b.encoder.Finalize(packed, uri)
}
