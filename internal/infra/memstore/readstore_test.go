//go:build unit

package memstore

import (
	"context"
	"math"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemSearch(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	drill := seedItem(t, u, owner, "Power DRILL", true, nil)
	seedItem(t, u, owner, "Hidden drill", false, nil)
	seedItem(t, u, owner, "Ladder", true, nil)

	got, err := NewItemReadStore(store).Search(ctx, "drill", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1, "unavailable items are not searchable")
	assert.Equal(t, drill, got[0].ID)

	byDescription, err := NewItemReadStore(store).Search(ctx, "LADDER DESC", 10, 0)
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)
}

func TestItemListByOwnerOrdersByID(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	other := seedUser(t, u, "Other", "other@example.com")
	a := seedItem(t, u, owner, "A", true, nil)
	seedItem(t, u, other, "X", true, nil)
	b := seedItem(t, u, owner, "B", false, nil)
	c := seedItem(t, u, owner, "C", true, nil)

	got, err := NewItemReadStore(store).ListByOwner(ctx, owner, 10, 0)
	require.NoError(t, err)
	ids := make([]int64, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	assert.Equal(t, []int64{a, b, c}, ids)

	paged, err := NewItemReadStore(store).ListByOwner(ctx, owner, 2, 2)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, c, paged[0].ID)
}

func TestLastAndNextApproved(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	it := seedItem(t, u, owner, "Drill", true, nil)
	empty := seedItem(t, u, owner, "Saw", true, nil)

	older := seedBooking(t, u, it, owner, booker, t0.Add(-48*time.Hour), t0.Add(-47*time.Hour), booking.StatusApproved)
	last := seedBooking(t, u, it, owner, booker, t0.Add(-time.Hour), t0.Add(time.Hour), booking.StatusApproved)
	seedBooking(t, u, it, owner, booker, t0.Add(-30*time.Minute), t0.Add(time.Hour), booking.StatusRejected)
	next := seedBooking(t, u, it, owner, booker, t0.Add(2*time.Hour), t0.Add(3*time.Hour), booking.StatusApproved)
	seedBooking(t, u, it, owner, booker, t0.Add(time.Hour), t0.Add(2*time.Hour), booking.StatusWaiting)
	seedBooking(t, u, it, owner, booker, t0.Add(5*time.Hour), t0.Add(6*time.Hour), booking.StatusApproved)

	rs := NewBookingReadStore(store)
	lastByItem, err := rs.LastApproved(ctx, []int64{it, empty}, t0)
	require.NoError(t, err)
	nextByItem, err := rs.NextApproved(ctx, []int64{it, empty}, t0)
	require.NoError(t, err)

	require.Contains(t, lastByItem, it)
	assert.Equal(t, last, lastByItem[it].ID)
	assert.NotEqual(t, older, lastByItem[it].ID)
	require.Contains(t, nextByItem, it)
	assert.Equal(t, next, nextByItem[it].ID)

	assert.NotContains(t, lastByItem, empty)
	assert.NotContains(t, nextByItem, empty)
}

func TestBookingListSortsByStartDescending(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	it := seedItem(t, u, owner, "Drill", true, nil)

	first := seedBooking(t, u, it, owner, booker, t0, t0.Add(time.Hour), booking.StatusWaiting)
	sameStart := seedBooking(t, u, it, owner, booker, t0, t0.Add(2*time.Hour), booking.StatusWaiting)
	latest := seedBooking(t, u, it, owner, booker, t0.Add(time.Hour), t0.Add(2*time.Hour), booking.StatusWaiting)

	got, err := NewBookingReadStore(store).List(ctx, queries.BookingFilter{
		ActorID: booker,
		Role:    booking.RoleBooker,
		State:   booking.StateAll,
		Now:     t0,
		Limit:   10,
	})
	require.NoError(t, err)
	ids := make([]int64, len(got))
	for i, b := range got {
		ids[i] = b.ID
	}
	assert.Equal(t, []int64{latest, sameStart, first}, ids)
	assert.Equal(t, "Booker", got[0].Booker.Name)
	assert.Equal(t, owner, got[0].Item.OwnerID)
}

func TestRequestListOthersNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := New()
	store.t.requests[1] = requestRow{id: 1, description: "old", requestorID: 1, created: t0}
	store.t.requests[2] = requestRow{id: 2, description: "mine", requestorID: 2, created: t0.Add(time.Hour)}
	store.t.requests[3] = requestRow{id: 3, description: "new", requestorID: 1, created: t0.Add(2 * time.Hour)}

	got, err := NewRequestReadStore(store).ListOthers(ctx, 2, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(1), got[1].ID)
}

func TestBookingListPaging(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	it := seedItem(t, u, owner, "Drill", true, nil)
	older := seedBooking(t, u, it, owner, booker, t0, t0.Add(time.Hour), booking.StatusWaiting)
	newer := seedBooking(t, u, it, owner, booker, t0.Add(time.Hour), t0.Add(2*time.Hour), booking.StatusWaiting)

	q := queries.NewBookingQueries(NewBookingReadStore(store), clock.NewMockClock(t0))
	list := func(from, size int) ([]*queries.BookingView, error) {
		p, err := queries.NewPage(from, size)
		require.NoError(t, err)
		return q.List(ctx, booker, booking.RoleBooker, booking.StateAll, p)
	}

	t.Run("size one on the last page", func(t *testing.T) {
		got, err := list(1, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, older, got[0].ID)
	})

	t.Run("from not a multiple of size starts at its page", func(t *testing.T) {
		got, err := list(1, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, newer, got[0].ID)
	})

	t.Run("largest size returns everything", func(t *testing.T) {
		got, err := list(0, math.MaxInt32)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("largest from is past the end", func(t *testing.T) {
		_, err := list(math.MaxInt32, 1)
		assert.ErrorIs(t, err, errs.ErrNoBookings)
	})
}
