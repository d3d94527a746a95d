//go:build unit

package comment_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"shareit/internal/domain/comment"
	"shareit/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err   error
	input comment.EligibilityInput
}

func (s *stubChecker) CanComment(_ context.Context, input comment.EligibilityInput) error {
	s.input = input
	return s.err
}

func TestNewText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain text", input: "Great drill", want: "Great drill"},
		{name: "trimmed", input: "  Great drill  ", want: "Great drill"},
		{name: "maximum length", input: strings.Repeat("a", comment.MaxTextLength), want: strings.Repeat("a", comment.MaxTextLength)},
		{name: "empty", input: "", errIs: comment.ErrEmptyText},
		{name: "whitespace only", input: " \t\n", errIs: comment.ErrEmptyText},
		{name: "too long", input: strings.Repeat("a", comment.MaxTextLength+1), errIs: comment.ErrTextTooLong},
		{name: "length counts runes", input: strings.Repeat("é", comment.MaxTextLength), want: strings.Repeat("é", comment.MaxTextLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := comment.NewText(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNewComment(t *testing.T) {
	now := time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)
	text, err := comment.NewText("Worked perfectly")
	require.NoError(t, err)

	t.Run("eligible author gets a comment stamped with now", func(t *testing.T) {
		checker := &stubChecker{}
		services := &comment.Services{Clock: clock.NewMockClock(now), EligibilityChecker: checker}

		c, err := comment.NewComment(context.Background(), services, 5, 7, text)
		require.NoError(t, err)

		assert.Equal(t, int64(5), c.ItemID())
		assert.Equal(t, int64(7), c.AuthorID())
		assert.Equal(t, "Worked perfectly", c.Text().String())
		assert.True(t, c.Created().Equal(now))
		assert.Equal(t, comment.EligibilityInput{ItemID: 5, AuthorID: 7, Now: now}, checker.input)
	})

	t.Run("ineligible author is rejected", func(t *testing.T) {
		checker := &stubChecker{err: comment.ErrNotAvailable}
		services := &comment.Services{Clock: clock.NewMockClock(now), EligibilityChecker: checker}

		c, err := comment.NewComment(context.Background(), services, 5, 7, text)
		assert.ErrorIs(t, err, comment.ErrNotAvailable)
		assert.Nil(t, c)
	})
}
