package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum64(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"empty payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum64(tt.data))
		})
	}
}

func TestSum64_Distinguishes(t *testing.T) {
	assert.NotEqual(t, Sum64([]byte{0x00}), Sum64([]byte{0x01}))
}
