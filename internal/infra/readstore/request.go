package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type RequestReadQueries interface {
	GetRequestByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Request, error)
	ListRequestsByRequestor(ctx context.Context, db sqlc.DBTX, requestorID int64) ([]sqlc.Request, error)
	ListRequestsExcludingRequestor(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRequestsExcludingRequestorParams) ([]sqlc.Request, error)
}

type RequestReadStore struct {
	queries RequestReadQueries
	db      sqlc.DBTX
}

func NewRequestReadStore(queries RequestReadQueries, db sqlc.DBTX) *RequestReadStore {
	return &RequestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id int64) (*queries.RequestView, error) {
	row, err := r.queries.GetRequestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request by id", err)
	}
	return toRequestView(row), nil
}

func (r *RequestReadStore) ListByRequestor(ctx context.Context, requestorID int64) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsByRequestor(ctx, r.db, requestorID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests by requestor", err)
	}
	return toRequestViews(rows), nil
}

func (r *RequestReadStore) ListOthers(ctx context.Context, actorID int64, limit, offset int32) ([]*queries.RequestView, error) {
	rows, err := r.queries.ListRequestsExcludingRequestor(ctx, r.db, sqlc.ListRequestsExcludingRequestorParams{
		RequestorID: actorID,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests of other users", err)
	}
	return toRequestViews(rows), nil
}

func toRequestView(row sqlc.Request) *queries.RequestView {
	return &queries.RequestView{
		ID:          row.ID,
		Description: row.Description,
		RequestorID: row.RequestorID,
		Created:     pgconv.TimeFromPgtype(row.Created),
	}
}

func toRequestViews(rows []sqlc.Request) []*queries.RequestView {
	views := make([]*queries.RequestView, len(rows))
	for i, row := range rows {
		views[i] = toRequestView(row)
	}
	return views
}
