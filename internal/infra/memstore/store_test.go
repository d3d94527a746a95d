//go:build unit

package memstore

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, u *UnitOfWork, name, email string) int64 {
	t.Helper()
	var id int64
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		n, _ := user.NewName(name)
		e, _ := user.NewEmail(email)
		var err error
		id, err = tx.Users().Create(ctx, user.NewUser(n, e))
		return err
	})
	require.NoError(t, err)
	return id
}

func seedItem(t *testing.T, u *UnitOfWork, ownerID int64, name string, available bool, requestID *int64) int64 {
	t.Helper()
	var id int64
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		it, err := item.NewItem(ownerID, name, name+" description", available, requestID)
		if err != nil {
			return err
		}
		id, err = tx.Items().Create(ctx, it)
		return err
	})
	require.NoError(t, err)
	return id
}

func seedBooking(t *testing.T, u *UnitOfWork, itemID, ownerID, bookerID int64, start, end time.Time, status booking.Status) int64 {
	t.Helper()
	var id int64
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Bookings().Create(ctx, booking.ReconstructBooking(0, itemID, ownerID, bookerID, start, end, status))
		return err
	})
	require.NoError(t, err)
	return id
}

func TestWithinRollsBackOnError(t *testing.T) {
	store := New()
	u := NewUnitOfWork(store)
	seedUser(t, u, "Alice", "alice@example.com")

	boom := errors.New("boom")
	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		n, _ := user.NewName("Bob")
		e, _ := user.NewEmail("bob@example.com")
		if _, err := tx.Users().Create(ctx, user.NewUser(n, e)); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	users, err := NewUserReadStore(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)

	// the sequence is restored too
	id := seedUser(t, u, "Carol", "carol@example.com")
	assert.Equal(t, int64(2), id)
}

func TestWithinHonoursCancelledContext(t *testing.T) {
	u := NewUnitOfWork(New())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := u.Within(ctx, func(context.Context, shared.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDuplicateEmail(t *testing.T) {
	u := NewUnitOfWork(New())
	seedUser(t, u, "Alice", "alice@example.com")

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		n, _ := user.NewName("Other")
		e, _ := user.NewEmail("alice@example.com")
		_, err := tx.Users().Create(ctx, user.NewUser(n, e))
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestConcurrentDecisionsApplyOnce(t *testing.T) {
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	it := seedItem(t, u, owner, "Drill", true, nil)
	id := seedBooking(t, u, it, owner, booker, t0, t0.Add(time.Hour), booking.StatusWaiting)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
	)
	for i := range 16 {
		wg.Add(1)
		go func(approve bool) {
			defer wg.Done()
			err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
				b, err := tx.Bookings().FindForUpdate(ctx, id)
				if err != nil {
					return err
				}
				if err := b.Decide(approve); err != nil {
					return err
				}
				return tx.Bookings().UpdateStatus(ctx, id, booking.StatusWaiting, b.Status())
			})
			if err == nil {
				succeeded.Add(1)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	snap, err := u.CommandReads().BookingByID(context.Background(), id)
	require.NoError(t, err)
	assert.NotEqual(t, booking.StatusWaiting.String(), snap.Status)
	assert.Equal(t, owner, snap.ItemOwnerID)
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	requestor := seedUser(t, u, "Requestor", "requestor@example.com")
	owner := seedUser(t, u, "Owner", "owner@example.com")

	var requestID int64
	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := itemrequest.NewItemRequest(requestor, "Need a drill", t0)
		if err != nil {
			return err
		}
		requestID, err = tx.Requests().Create(ctx, r)
		return err
	}))
	answer := seedItem(t, u, owner, "Drill", true, &requestID)
	seedBooking(t, u, answer, owner, requestor, t0, t0.Add(time.Hour), booking.StatusApproved)

	require.NoError(t, u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Delete(ctx, requestor)
	}))

	snap, err := u.CommandReads().ItemByID(ctx, answer)
	require.NoError(t, err, "items of other owners survive")
	assert.Nil(t, snap.RequestID, "the answered request is gone")

	_, err = u.CommandReads().RequestByID(ctx, requestID)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))

	assert.Empty(t, store.t.bookings, "bookings of the deleted booker are removed")
}

func TestCompletedBookingExists(t *testing.T) {
	ctx := context.Background()
	u := NewUnitOfWork(New())
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	it := seedItem(t, u, owner, "Drill", true, nil)
	seedBooking(t, u, it, owner, booker, t0, t0.Add(time.Hour), booking.StatusApproved)
	waiter := seedUser(t, u, "Waiter", "waiter@example.com")
	seedBooking(t, u, it, owner, waiter, t0, t0.Add(time.Hour), booking.StatusWaiting)

	reads := u.CommandReads()
	tests := []struct {
		name   string
		booker int64
		before time.Time
		want   bool
	}{
		{"ended approved booking", booker, t0.Add(2 * time.Hour), true},
		{"end equal to cutoff", booker, t0.Add(time.Hour), false},
		{"not yet ended", booker, t0.Add(30 * time.Minute), false},
		{"other user", owner, t0.Add(2 * time.Hour), false},
		{"waiting booking", waiter, t0.Add(2 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reads.CompletedBookingExists(ctx, it, tt.booker, tt.before)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithinRollsBackCascadingDelete(t *testing.T) {
	ctx := context.Background()
	store := New()
	u := NewUnitOfWork(store)
	owner := seedUser(t, u, "Owner", "owner@example.com")
	booker := seedUser(t, u, "Booker", "booker@example.com")
	drill := seedItem(t, u, owner, "Drill", true, nil)
	b := seedBooking(t, u, drill, owner, booker, t0, t0.Add(time.Hour), booking.StatusWaiting)

	boom := errors.New("boom")
	err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Delete(ctx, owner); err != nil {
			return err
		}
		if _, err := tx.Items().Create(ctx, mustItem(t, booker, "Saw")); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = u.CommandReads().UserByID(ctx, owner)
	assert.NoError(t, err)
	snap, err := u.CommandReads().BookingByID(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, owner, snap.ItemOwnerID)
	assert.Len(t, store.t.items, 1)
	assert.Empty(t, store.t.undo)

	next := seedItem(t, u, booker, "Saw", true, nil)
	assert.Equal(t, drill+1, next, "the item sequence is restored")
}

func TestCommittedWritesLeaveNoJournal(t *testing.T) {
	store := New()
	u := NewUnitOfWork(store)
	seedUser(t, u, "Alice", "alice@example.com")
	assert.Empty(t, store.t.undo)
}

func TestRequestNeedsExistingRequestor(t *testing.T) {
	u := NewUnitOfWork(New())

	err := u.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		r, err := itemrequest.NewItemRequest(42, "Need a drill", t0)
		if err != nil {
			return err
		}
		_, err = tx.Requests().Create(ctx, r)
		return err
	})
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
}

func mustItem(t *testing.T, ownerID int64, name string) *item.Item {
	t.Helper()
	it, err := item.NewItem(ownerID, name, name+" description", true, nil)
	require.NoError(t, err)
	return it
}
