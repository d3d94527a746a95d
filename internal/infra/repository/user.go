package repository

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (int64, error)
	UpdateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserParams) (int64, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
	db      sqlc.DBTX
}

func NewUserRepository(queries UserWriteQueries, db sqlc.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (int64, error) {
	id, err := r.queries.CreateUser(ctx, r.db, sqlc.CreateUserParams{
		Name:  u.Name().Value(),
		Email: u.Email().Value(),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	n, err := r.queries.UpdateUser(ctx, r.db, sqlc.UpdateUserParams{
		ID:    u.ID(),
		Name:  u.Name().Value(),
		Email: u.Email().Value(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err)
	}
	if n == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.queries.DeleteUser(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if n == 0 {
		return infra.NotFound("user not found")
	}
	return nil
}
