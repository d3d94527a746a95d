//go:build unit

package itemrequest_test

import (
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/itemrequest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemRequest(t *testing.T) {
	now := time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		r, err := itemrequest.NewItemRequest(4, "  Need a ladder  ", now)
		require.NoError(t, err)

		assert.Equal(t, "Need a ladder", r.Description())
		assert.Equal(t, int64(4), r.RequestorID())
		assert.True(t, r.Created().Equal(now))
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := itemrequest.NewItemRequest(4, " ", now)
		assert.ErrorIs(t, err, itemrequest.ErrEmptyDescription)
	})

	t.Run("description too long", func(t *testing.T) {
		_, err := itemrequest.NewItemRequest(4, strings.Repeat("x", itemrequest.MaxDescriptionLength+1), now)
		assert.ErrorIs(t, err, itemrequest.ErrDescriptionTooLong)
	})

	t.Run("description length counts runes", func(t *testing.T) {
		_, err := itemrequest.NewItemRequest(4, strings.Repeat("ж", itemrequest.MaxDescriptionLength), now)
		assert.NoError(t, err)
	})
}
