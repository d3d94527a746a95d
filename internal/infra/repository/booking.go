package repository

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingForUpdateRow, error)
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (int64, error) {
	id, err := r.queries.CreateBooking(ctx, r.db, sqlc.CreateBookingParams{
		StartDate: pgconv.TimeToPgtype(b.Period().Start()),
		EndDate:   pgconv.TimeToPgtype(b.Period().End()),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

func (r *BookingRepository) FindForUpdate(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return booking.ReconstructBooking(
		row.ID,
		row.ItemID,
		row.OwnerID,
		row.BookerID,
		pgconv.TimeFromPgtype(row.StartDate),
		pgconv.TimeFromPgtype(row.EndDate),
		booking.Status(row.Status),
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from, to booking.Status) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ToStatus:   to.String(),
		ID:         id,
		FromStatus: from.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.NotFound("booking in expected status not found")
	}
	return nil
}
