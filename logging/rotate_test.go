package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxSizeMegabytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		size     uint64
		expected int
	}{
		{name: "unset", size: 0, expected: 0},
		{name: "below one megabyte", size: 1, expected: 1},
		{name: "exact", size: 3 << 20, expected: 3},
		{name: "rounds up", size: 10_000_000, expected: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, maxSizeMegabytes(tt.size))
		})
	}
}
