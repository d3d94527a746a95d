package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type ItemReadQueries interface {
	GetItemByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Item, error)
	ListItemsByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsByOwnerParams) ([]sqlc.Item, error)
	SearchItems(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchItemsParams) ([]sqlc.Item, error)
	ListItemsByRequestIDs(ctx context.Context, db sqlc.DBTX, requestIds []int64) ([]sqlc.Item, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id int64) (*queries.ItemView, error) {
	row, err := r.queries.GetItemByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find item by id", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByOwner(ctx, r.db, sqlc.ListItemsByOwnerParams{
		OwnerID: ownerID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) Search(ctx context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.SearchItems(ctx, r.db, sqlc.SearchItemsParams{
		Text: text,
		Lim:  limit,
		Off:  offset,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search items", err)
	}
	return toItemViews(rows), nil
}

func (r *ItemReadStore) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsByRequestIDs(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by request ids", err)
	}
	return toItemViews(rows), nil
}

func toItemView(row sqlc.Item) *queries.ItemView {
	return &queries.ItemView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Available:   row.IsAvailable,
		OwnerID:     row.OwnerID,
		RequestID:   pgconv.Int8PtrFromPgtype(row.RequestID),
	}
}

func toItemViews(rows []sqlc.Item) []*queries.ItemView {
	views := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		views[i] = toItemView(row)
	}
	return views
}
