//go:build unit

package item_test

import (
	"errors"
	"strings"
	"testing"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/ptr"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ItemBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := builder.NewItemBuilder().With(tc.mutate).BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewItem(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewItemBuilder().WithRequestID(3).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "Cordless drill", actual.Name())
		assert.Equal(t, "18V drill with two batteries", actual.Description())
		assert.True(t, actual.Available())
		assert.Equal(t, int64(1), actual.OwnerID())
		require.NotNil(t, actual.RequestID())
		assert.Equal(t, int64(3), *actual.RequestID())
		assert.True(t, actual.IsOwnedBy(1))
		assert.False(t, actual.IsOwnedBy(2))
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "blank name",
				mutate: func(b *builder.ItemBuilder) { b.WithName("   ") },
				errIs:  item.ErrEmptyName,
			},
			{
				name:   "name too long",
				mutate: func(b *builder.ItemBuilder) { b.WithName(strings.Repeat("n", item.MaxNameLength+1)) },
				errIs:  item.ErrNameTooLong,
			},
			{
				name:   "maximum name",
				mutate: func(b *builder.ItemBuilder) { b.WithName(strings.Repeat("n", item.MaxNameLength)) },
			},
			{
				name:   "name length counts runes",
				mutate: func(b *builder.ItemBuilder) { b.WithName(strings.Repeat("ж", item.MaxNameLength)) },
			},
			{
				name:   "description length counts runes",
				mutate: func(b *builder.ItemBuilder) { b.WithDescription(strings.Repeat("ж", item.MaxDescriptionLength)) },
			},
			{
				name:   "empty description",
				mutate: func(b *builder.ItemBuilder) { b.WithDescription("") },
				errIs:  item.ErrEmptyDescription,
			},
			{
				name:   "description too long",
				mutate: func(b *builder.ItemBuilder) { b.WithDescription(strings.Repeat("d", item.MaxDescriptionLength+1)) },
				errIs:  item.ErrDescriptionTooLong,
			},
			{
				name:   "unavailable item is valid",
				mutate: func(b *builder.ItemBuilder) { b.AsUnavailable() },
			},
		})
	})
}

func TestApplyPatch(t *testing.T) {
	base := func() *item.Item {
		return item.ReconstructItem(1, "Drill", "Old drill", true, 1, nil)
	}

	t.Run("only present fields change", func(t *testing.T) {
		it := base()
		require.NoError(t, it.ApplyPatch(item.Patch{Available: ptr.Of(false)}))

		assert.Equal(t, "Drill", it.Name())
		assert.Equal(t, "Old drill", it.Description())
		assert.False(t, it.Available())
	})

	t.Run("name and description are trimmed", func(t *testing.T) {
		it := base()
		require.NoError(t, it.ApplyPatch(item.Patch{Name: ptr.Of(" Hammer "), Description: ptr.Of(" Steel hammer ")}))

		assert.Equal(t, "Hammer", it.Name())
		assert.Equal(t, "Steel hammer", it.Description())
		assert.True(t, it.Available())
	})

	t.Run("invalid field leaves the item unchanged", func(t *testing.T) {
		it := base()
		err := it.ApplyPatch(item.Patch{Name: ptr.Of("Hammer"), Description: ptr.Of(" "), Available: ptr.Of(false)})
		assert.ErrorIs(t, err, item.ErrEmptyDescription)

		assert.Equal(t, "Drill", it.Name())
		assert.Equal(t, "Old drill", it.Description())
		assert.True(t, it.Available())
	})

	t.Run("empty patch", func(t *testing.T) {
		assert.True(t, item.Patch{}.IsEmpty())
		assert.False(t, item.Patch{Available: ptr.Of(true)}.IsEmpty())
	})
}
