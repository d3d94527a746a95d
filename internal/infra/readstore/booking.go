package readstore

import (
	"context"
	"time"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingViewsParams) ([]sqlc.ListBookingViewsRow, error)
	ListLastApprovedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListLastApprovedBookingsParams) ([]sqlc.ListLastApprovedBookingsRow, error)
	ListNextApprovedBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNextApprovedBookingsParams) ([]sqlc.ListNextApprovedBookingsRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return toBookingView(bookingViewRow(row)), nil
}

func (r *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViews(ctx, r.db, sqlc.ListBookingViewsParams{
		Role:    string(filter.Role),
		ActorID: filter.ActorID,
		State:   string(filter.State),
		Now:     pgconv.TimeToPgtype(filter.Now),
		Lim:     filter.Limit,
		Off:     filter.Offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(bookingViewRow(row))
	}
	return views, nil
}

func (r *BookingReadStore) LastApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	rows, err := r.queries.ListLastApprovedBookings(ctx, r.db, sqlc.ListLastApprovedBookingsParams{
		ItemIds: itemIDs,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list last approved bookings", err)
	}
	out := make(map[int64]*queries.BookingShortView, len(rows))
	for _, row := range rows {
		out[row.ItemID] = toBookingShortView(shortRow(row))
	}
	return out, nil
}

func (r *BookingReadStore) NextApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	rows, err := r.queries.ListNextApprovedBookings(ctx, r.db, sqlc.ListNextApprovedBookingsParams{
		ItemIds: itemIDs,
		Now:     pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list next approved bookings", err)
	}
	out := make(map[int64]*queries.BookingShortView, len(rows))
	for _, row := range rows {
		out[row.ItemID] = toBookingShortView(shortRow(row))
	}
	return out, nil
}

// sqlc emits one row type per query; these share a column list
type bookingViewRow struct {
	ID              int64
	StartDate       pgtype.Timestamptz
	EndDate         pgtype.Timestamptz
	Status          string
	ItemID          int64
	ItemName        string
	ItemDescription string
	ItemAvailable   bool
	ItemOwnerID     int64
	ItemRequestID   pgtype.Int8
	BookerID        int64
	BookerName      string
	BookerEmail     string
}

type shortRow struct {
	ID        int64
	ItemID    int64
	BookerID  int64
	StartDate pgtype.Timestamptz
	EndDate   pgtype.Timestamptz
	Status    string
}

func toBookingView(row bookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:     row.ID,
		ItemID: row.ItemID,
		Start:  pgconv.TimeFromPgtype(row.StartDate),
		End:    pgconv.TimeFromPgtype(row.EndDate),
		Status: row.Status,
		Item: queries.ItemView{
			ID:          row.ItemID,
			Name:        row.ItemName,
			Description: row.ItemDescription,
			Available:   row.ItemAvailable,
			OwnerID:     row.ItemOwnerID,
			RequestID:   pgconv.Int8PtrFromPgtype(row.ItemRequestID),
		},
		Booker: queries.BookerView{
			ID:    row.BookerID,
			Name:  row.BookerName,
			Email: row.BookerEmail,
		},
	}
}

func toBookingShortView(row shortRow) *queries.BookingShortView {
	return &queries.BookingShortView{
		ID:       row.ID,
		ItemID:   row.ItemID,
		BookerID: row.BookerID,
		Start:    pgconv.TimeFromPgtype(row.StartDate),
		End:      pgconv.TimeFromPgtype(row.EndDate),
		Status:   row.Status,
	}
}
