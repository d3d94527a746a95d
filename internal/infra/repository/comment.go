package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (int64, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      sqlc.DBTX
}

func NewCommentRepository(queries CommentWriteQueries, db sqlc.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) (int64, error) {
	id, err := r.queries.CreateComment(ctx, r.db, sqlc.CreateCommentParams{
		Text:     c.Text().String(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  pgconv.TimeToPgtype(c.Created()),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return id, nil
}
