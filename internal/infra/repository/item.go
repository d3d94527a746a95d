package repository

import (
	"context"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) (int64, error)
	UpdateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateItemParams) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
	db      sqlc.DBTX
}

func NewItemRepository(queries ItemWriteQueries, db sqlc.DBTX) *ItemRepository {
	return &ItemRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *item.Item) (int64, error) {
	id, err := r.queries.CreateItem(ctx, r.db, sqlc.CreateItemParams{
		Name:        it.Name(),
		Description: it.Description(),
		IsAvailable: it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   pgconv.Int8PtrToPgtype(it.RequestID()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create item", err)
	}
	return id, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	n, err := r.queries.UpdateItem(ctx, r.db, sqlc.UpdateItemParams{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		IsAvailable: it.Available(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update item", err)
	}
	if n == 0 {
		return infra.NotFound("item not found")
	}
	return nil
}
