package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// ListByRequestor orders newest first
	ListByRequestor(ctx context.Context, requestorID int64) ([]*RequestView, error)
	// ListOthers orders newest first
	ListOthers(ctx context.Context, actorID int64, limit, offset int32) ([]*RequestView, error)
}

type RequestQueries interface {
	Get(ctx context.Context, actorID, requestID int64) (*RequestView, error)
	ListOwn(ctx context.Context, actorID int64) ([]*RequestView, error)
	ListOthers(ctx context.Context, actorID int64, page Page) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	requests RequestReadStore
	items    ItemReadStore
	users    UserReadStore
}

func NewRequestQueries(requests RequestReadStore, items ItemReadStore, users UserReadStore) RequestQueries {
	return &requestQueriesImpl{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (q *requestQueriesImpl) Get(ctx context.Context, actorID, requestID int64) (*RequestView, error) {
	if _, err := findUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	rv, err := q.requests.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, err
	}
	if err = q.attachItems(ctx, []*RequestView{rv}); err != nil {
		return nil, err
	}
	return rv, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, actorID int64) ([]*RequestView, error) {
	if _, err := findUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	rows, err := q.requests.ListByRequestor(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if err = q.attachItems(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, actorID int64, page Page) ([]*RequestView, error) {
	if _, err := findUser(ctx, q.users, actorID); err != nil {
		return nil, err
	}
	rows, err := q.requests.ListOthers(ctx, actorID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	if err = q.attachItems(ctx, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, rows []*RequestView) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	items, err := q.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return err
	}
	byRequest := make(map[int64][]*ItemView, len(rows))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	for _, r := range rows {
		r.Items = byRequest[r.ID]
		if r.Items == nil {
			r.Items = []*ItemView{}
		}
	}
	return nil
}
