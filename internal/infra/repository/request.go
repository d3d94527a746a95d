package repository

import (
	"context"

	"shareit/internal/domain/itemrequest"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type RequestWriteQueries interface {
	CreateRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRequestParams) (int64, error)
}

type RequestRepository struct {
	queries RequestWriteQueries
	db      sqlc.DBTX
}

func NewRequestRepository(queries RequestWriteQueries, db sqlc.DBTX) *RequestRepository {
	return &RequestRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *itemrequest.ItemRequest) (int64, error) {
	id, err := r.queries.CreateRequest(ctx, r.db, sqlc.CreateRequestParams{
		Description: req.Description(),
		RequestorID: req.RequestorID(),
		Created:     pgconv.TimeToPgtype(req.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item request", err)
	}
	return id, nil
}
