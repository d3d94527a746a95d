package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type CommentReadQueries interface {
	GetCommentViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCommentViewByIDRow, error)
	ListCommentViewsByItemIDs(ctx context.Context, db sqlc.DBTX, itemIds []int64) ([]sqlc.ListCommentViewsByItemIDsRow, error)
}

type CommentReadStore struct {
	queries CommentReadQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentReadQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find comment by id", err)
	}
	return &queries.CommentView{
		ID:         row.ID,
		Text:       row.Text,
		ItemID:     row.ItemID,
		AuthorName: row.AuthorName,
		Created:    pgconv.TimeFromPgtype(row.Created),
	}, nil
}

func (r *CommentReadStore) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*queries.CommentView, error) {
	rows, err := r.queries.ListCommentViewsByItemIDs(ctx, r.db, itemIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list comments by item ids", err)
	}
	views := make([]*queries.CommentView, len(rows))
	for i, row := range rows {
		views[i] = &queries.CommentView{
			ID:         row.ID,
			Text:       row.Text,
			ItemID:     row.ItemID,
			AuthorName: row.AuthorName,
			Created:    pgconv.TimeFromPgtype(row.Created),
		}
	}
	return views, nil
}
