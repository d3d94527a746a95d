package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

// BookingFilter selects the bookings of an actor on one side of the relation
type BookingFilter struct {
	ActorID int64
	Role    booking.Role
	State   booking.State
	Now     time.Time
	Limit   int32
	Offset  int32
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	// List orders by start descending, then id descending
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
	// LastApproved: per item, the approved booking with the latest start <= now
	LastApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*BookingShortView, error)
	// NextApproved: per item, the approved booking with the earliest start > now
	NextApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*BookingShortView, error)
}

type BookingQueries interface {
	Get(ctx context.Context, actorID, bookingID int64) (*BookingView, error)
	List(ctx context.Context, actorID int64, role booking.Role, state booking.State, page Page) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	clock clock.Clock
}

func NewBookingQueries(repo BookingReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{repo: repo, clock: clk}
}

func (q *bookingQueriesImpl) Get(ctx context.Context, actorID, bookingID int64) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, err
	}

	agg := booking.ReconstructBooking(view.ID, view.ItemID, view.Item.OwnerID, view.Booker.ID, view.Start, view.End, booking.Status(view.Status))
	if !agg.CanBeViewedBy(actorID) {
		return nil, errs.ErrNotBookingParticipant
	}
	return view, nil
}

// List reports ErrNoBookings instead of an empty page
func (q *bookingQueriesImpl) List(ctx context.Context, actorID int64, role booking.Role, state booking.State, page Page) ([]*BookingView, error) {
	rows, err := q.repo.List(ctx, BookingFilter{
		ActorID: actorID,
		Role:    role,
		State:   state,
		Now:     q.clock.Now(),
		Limit:   page.Limit(),
		Offset:  page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.ErrNoBookings
	}
	return rows, nil
}
