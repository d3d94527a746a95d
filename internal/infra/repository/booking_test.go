//go:build unit

package repository

import (
	"context"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingWriteQueries) GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingForUpdateRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetBookingForUpdateRow), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func TestBookingCreate(t *testing.T) {
	b := builder.NewBookingBuilder()
	newBooking, err := b.BuildDomain()
	require.NoError(t, err)

	wantParams := sqlc.CreateBookingParams{
		StartDate: pgconv.TimeToPgtype(b.Start),
		EndDate:   pgconv.TimeToPgtype(b.End),
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Status:    "WAITING",
	}

	tests := []struct {
		name      string
		mockID    int64
		mockError error
		wantID    int64
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", mockID: 11, wantID: 11},
		{name: "item or booker missing", mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CreateBooking", mock.Anything, mock.Anything, wantParams).Return(tt.mockID, tt.mockError)

			id, err := NewBookingRepository(mockQueries, nil).Create(context.Background(), newBooking)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestBookingFindForUpdate(t *testing.T) {
	b := builder.NewBookingBuilder()

	t.Run("reconstructs the locked row", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, int64(4)).Return(sqlc.GetBookingForUpdateRow{
			ID:        4,
			ItemID:    b.ItemID,
			OwnerID:   b.ItemOwnerID,
			BookerID:  b.BookerID,
			StartDate: pgconv.TimeToPgtype(b.Start),
			EndDate:   pgconv.TimeToPgtype(b.End),
			Status:    "APPROVED",
		}, nil)

		got, err := NewBookingRepository(mockQueries, nil).FindForUpdate(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID())
		assert.Equal(t, b.ItemOwnerID, got.ItemOwnerID())
		assert.Equal(t, b.BookerID, got.BookerID())
		assert.Equal(t, booking.StatusApproved, got.Status())
		assert.True(t, got.Period().Start().Equal(b.Start))
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockBookingWriteQueries)
		mockQueries.On("GetBookingForUpdate", mock.Anything, mock.Anything, int64(4)).
			Return(sqlc.GetBookingForUpdateRow{}, pgx.ErrNoRows)

		got, err := NewBookingRepository(mockQueries, nil).FindForUpdate(context.Background(), 4)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingUpdateStatus(t *testing.T) {
	wantParams := sqlc.UpdateBookingStatusParams{ToStatus: "APPROVED", ID: 4, FromStatus: "WAITING"}

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "status already changed", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("UpdateBookingStatus", mock.Anything, mock.Anything, wantParams).Return(tt.affected, tt.mockError)

			err := NewBookingRepository(mockQueries, nil).
				UpdateStatus(context.Background(), 4, booking.StatusWaiting, booking.StatusApproved)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
