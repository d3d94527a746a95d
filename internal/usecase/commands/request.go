package commands

import (
	"context"

	domrequest "shareit/internal/domain/itemrequest"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateRequestRequest struct {
	Description string
}

type CreateRequestResult struct {
	RequestID int64
}

type RequestCommands interface {
	Create(ctx context.Context, requestorID int64, req CreateRequestRequest) (*CreateRequestResult, error)
}

type requestUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRequestUseCase(uow shared.UnitOfWork, clk clock.Clock) RequestCommands {
	return &requestUseCaseImpl{uow: uow, clock: clk}
}

func (uc *requestUseCaseImpl) Create(ctx context.Context, requestorID int64, req CreateRequestRequest) (*CreateRequestResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, requestorID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}

		agg, derr := domrequest.NewItemRequest(requestorID, req.Description, truncate(uc.clock.Now()))
		if derr != nil {
			return derr
		}
		id, derr := tx.Requests().Create(ctx, agg)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateRequestResult{RequestID: createdID}, nil
}
