//go:build unit

package booking_test

import (
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewBookingBuilder()
			if tc.mutate != nil {
				b.With(tc.mutate)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewBookingBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusWaiting, actual.Status())
		assert.Equal(t, b.ItemID, actual.ItemID())
		assert.Equal(t, b.BookerID, actual.BookerID())
		assert.Equal(t, b.ItemOwnerID, actual.ItemOwnerID())
		assert.True(t, actual.Period().Start().Equal(b.Start))
		assert.True(t, actual.Period().End().Equal(b.End))
		assert.Zero(t, actual.ID())
	})

	t.Run("item and ownership rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unavailable item",
				mutate: func(b *builder.BookingBuilder) { b.Available = false },
				errIs:  booking.ErrItemNotAvailable,
			},
			{
				name:   "owner books own item",
				mutate: func(b *builder.BookingBuilder) { b.BookerID = b.ItemOwnerID },
				errIs:  booking.ErrOwnerCannotBook,
			},
			{
				name: "availability is checked before ownership",
				mutate: func(b *builder.BookingBuilder) {
					b.Available = false
					b.BookerID = b.ItemOwnerID
				},
				errIs: booking.ErrItemNotAvailable,
			},
		})
	})

	t.Run("period rules", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "end equals start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start },
				errIs:  booking.ErrEndNotAfterStart,
			},
			{
				name:   "end before start",
				mutate: func(b *builder.BookingBuilder) { b.End = b.Start.Add(-time.Minute) },
				errIs:  booking.ErrEndNotAfterStart,
			},
			{
				name:   "missing start",
				mutate: func(b *builder.BookingBuilder) { b.Start = time.Time{} },
				errIs:  booking.ErrMissingDates,
			},
			{
				name:   "start in the past under strict rule",
				mutate: func(b *builder.BookingBuilder) { b.Start = b.Now.Add(-time.Hour) },
				errIs:  booking.ErrStartInPast,
			},
			{
				name: "whole period in the past under strict rule",
				mutate: func(b *builder.BookingBuilder) {
					b.Start = b.Now.Add(-2 * time.Hour)
					b.End = b.Now.Add(-time.Hour)
				},
				errIs: booking.ErrStartInPast,
			},
			{
				name:   "start exactly now is accepted",
				mutate: func(b *builder.BookingBuilder) { b.Start = b.Now },
			},
			{
				name: "past period accepted under loose rule",
				mutate: func(b *builder.BookingBuilder) {
					b.DateRule = booking.DateRuleLoose
					b.Start = b.Now.Add(-2 * time.Hour)
					b.End = b.Now.Add(-time.Hour)
				},
			},
			{
				name: "loose rule still requires end after start",
				mutate: func(b *builder.BookingBuilder) {
					b.DateRule = booking.DateRuleLoose
					b.End = b.Start
				},
				errIs: booking.ErrEndNotAfterStart,
			},
		})
	})
}

func TestDecide(t *testing.T) {
	t.Run("approve moves WAITING to APPROVED", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		require.NoError(t, b.Decide(true))
		assert.Equal(t, booking.StatusApproved, b.Status())
	})

	t.Run("reject moves WAITING to REJECTED", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildStored()
		require.NoError(t, b.Decide(false))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("decided bookings are terminal", func(t *testing.T) {
		for _, status := range []booking.Status{booking.StatusApproved, booking.StatusRejected} {
			for _, approve := range []bool{true, false} {
				b := builder.NewBookingBuilder().WithStatus(status).BuildStored()
				err := b.Decide(approve)
				assert.ErrorIs(t, err, booking.ErrWrongStatus)
				assert.Equal(t, status, b.Status(), "status must not change")
			}
		}
	})
}

func TestVisibility(t *testing.T) {
	b := builder.NewBookingBuilder().
		WithItemOwnerID(10).
		WithBookerID(20).
		BuildStored()

	assert.True(t, b.CanBeViewedBy(10))
	assert.True(t, b.CanBeViewedBy(20))
	assert.False(t, b.CanBeViewedBy(30))

	assert.True(t, b.IsItemOwner(10))
	assert.False(t, b.IsItemOwner(20))
}
