//go:build unit

package queries_test

import (
	"math"
	"testing"

	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	tests := []struct {
		name       string
		from, size int
		offset     int32
		errIs      error
	}{
		{name: "first page", from: 0, size: 10, offset: 0},
		{name: "from inside first page", from: 9, size: 10, offset: 0},
		{name: "from on page boundary", from: 10, size: 10, offset: 10},
		{name: "from not a multiple of size", from: 7, size: 3, offset: 6},
		{name: "size one walks every row", from: 4, size: 1, offset: 4},
		{name: "largest from", from: math.MaxInt32, size: 1, offset: math.MaxInt32},
		{name: "largest size", from: 0, size: math.MaxInt32, offset: 0},
		{name: "negative from", from: -1, size: 10, errIs: errs.ErrInvalidPage},
		{name: "zero size", from: 0, size: 0, errIs: errs.ErrInvalidPage},
		{name: "from beyond int32", from: math.MaxInt32 + 1, size: 1, errIs: errs.ErrInvalidPage},
		{name: "size beyond int32", from: 0, size: math.MaxInt32 + 1, errIs: errs.ErrInvalidPage},
		{name: "from that wraps to zero", from: 1 << 32, size: 1, errIs: errs.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := queries.NewPage(tt.from, tt.size)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, p.Offset())
			assert.Equal(t, int32(tt.size), p.Limit())
		})
	}
}
