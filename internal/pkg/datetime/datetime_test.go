//go:build unit

package datetime_test

import (
	"testing"
	"time"

	"shareit/internal/pkg/datetime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("local layout", func(t *testing.T) {
		got, err := datetime.Parse("2030-01-10T12:30:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2030, 1, 10, 12, 30, 0, 0, time.Local)))
	})

	t.Run("RFC 3339 with offset", func(t *testing.T) {
		got, err := datetime.Parse("2030-01-10T12:30:00+02:00")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2030, 1, 10, 10, 30, 0, 0, time.UTC)))
	})

	for _, in := range []string{"", "tomorrow", "2030-01-10", "10.01.2030 12:30"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := datetime.Parse(in)
			assert.ErrorIs(t, err, datetime.ErrInvalidFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2030, 1, 10, 12, 30, 15, 999, time.Local)
	assert.Equal(t, "2030-01-10T12:30:15", datetime.Format(ts))
	assert.Equal(t, "", datetime.Format(time.Time{}))

	back, err := datetime.Parse(datetime.Format(ts))
	require.NoError(t, err)
	assert.True(t, back.Equal(ts.Truncate(time.Second)))
}
