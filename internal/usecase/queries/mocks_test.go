//go:build unit

package queries_test

import (
	"context"
	"time"

	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/mock"
)

type mockItemStore struct{ mock.Mock }

func (m *mockItemStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.ItemView)
	return v, args.Error(1)
}

func (m *mockItemStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*queries.ItemView, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	v, _ := args.Get(0).([]*queries.ItemView)
	return v, args.Error(1)
}

func (m *mockItemStore) Search(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	args := m.Called(ctx, text, limit, offset)
	v, _ := args.Get(0).([]*queries.ItemView)
	return v, args.Error(1)
}

func (m *mockItemStore) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*queries.ItemView, error) {
	args := m.Called(ctx, requestIDs)
	v, _ := args.Get(0).([]*queries.ItemView)
	return v, args.Error(1)
}

type mockBookingStore struct{ mock.Mock }

func (m *mockBookingStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.BookingView)
	return v, args.Error(1)
}

func (m *mockBookingStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*queries.BookingView)
	return v, args.Error(1)
}

func (m *mockBookingStore) LastApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	args := m.Called(ctx, itemIDs, now)
	v, _ := args.Get(0).(map[int64]*queries.BookingShortView)
	return v, args.Error(1)
}

func (m *mockBookingStore) NextApproved(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	args := m.Called(ctx, itemIDs, now)
	v, _ := args.Get(0).(map[int64]*queries.BookingShortView)
	return v, args.Error(1)
}

type mockCommentStore struct{ mock.Mock }

func (m *mockCommentStore) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*queries.CommentView, error) {
	args := m.Called(ctx, itemIDs)
	v, _ := args.Get(0).([]*queries.CommentView)
	return v, args.Error(1)
}

func (m *mockCommentStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.CommentView)
	return v, args.Error(1)
}

type mockRequestStore struct{ mock.Mock }

func (m *mockRequestStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.RequestView)
	return v, args.Error(1)
}

func (m *mockRequestStore) ListByRequestor(ctx context.Context, requestorID int64) ([]*queries.RequestView, error) {
	args := m.Called(ctx, requestorID)
	v, _ := args.Get(0).([]*queries.RequestView)
	return v, args.Error(1)
}

func (m *mockRequestStore) ListOthers(ctx context.Context, actorID int64, limit, offset int32) ([]*queries.RequestView, error) {
	args := m.Called(ctx, actorID, limit, offset)
	v, _ := args.Get(0).([]*queries.RequestView)
	return v, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*queries.UserView)
	return v, args.Error(1)
}

func (m *mockUserStore) List(ctx context.Context) ([]*queries.UserView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*queries.UserView)
	return v, args.Error(1)
}
