package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

type UserQueries interface {
	List(ctx context.Context) ([]*UserView, error)
	Get(ctx context.Context, userID int64) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	List(ctx context.Context) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) List(ctx context.Context) ([]*UserView, error) {
	return q.readStore.List(ctx)
}

func (q *userQueriesImpl) Get(ctx context.Context, userID int64) (*UserView, error) {
	return findUser(ctx, q.readStore, userID)
}

func findUser(ctx context.Context, store UserReadStore, userID int64) (*UserView, error) {
	user, err := store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
