package commands

import (
	"context"
	"time"

	domcomment "shareit/internal/domain/comment"
	domitem "shareit/internal/domain/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateItemRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

type UpdateItemRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

type AddCommentRequest struct {
	Text string
}

type CreateItemResult struct {
	ItemID int64
}

type AddCommentResult struct {
	CommentID int64
}

type ItemCommands interface {
	Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error)
	Update(ctx context.Context, actorID, itemID int64, req UpdateItemRequest) error
	AddComment(ctx context.Context, authorID, itemID int64, req AddCommentRequest) (*AddCommentResult, error)
}

type itemUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewItemUseCase(uow shared.UnitOfWork, clk clock.Clock) ItemCommands {
	return &itemUseCaseImpl{uow: uow, clock: clk}
}

func (uc *itemUseCaseImpl) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*CreateItemResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}
		if req.RequestID != nil {
			if _, derr := tx.Reads().RequestByID(ctx, *req.RequestID); derr != nil {
				return notFoundAs(derr, errs.ErrRequestNotFound)
			}
		}

		agg, derr := domitem.NewItem(ownerID, req.Name, req.Description, req.Available, req.RequestID)
		if derr != nil {
			return derr
		}
		id, derr := tx.Items().Create(ctx, agg)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateItemResult{ItemID: createdID}, nil
}

func (uc *itemUseCaseImpl) Update(ctx context.Context, actorID, itemID int64, req UpdateItemRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, actorID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}
		snap, derr := tx.Reads().ItemByID(ctx, itemID)
		if derr != nil {
			return notFoundAs(derr, errs.ErrItemNotFound)
		}

		agg := domitem.ReconstructItem(snap.ID, snap.Name, snap.Description, snap.Available, snap.OwnerID, snap.RequestID)
		if !agg.IsOwnedBy(actorID) {
			return errs.ErrNotItemOwner
		}

		p := domitem.Patch{Name: req.Name, Description: req.Description, Available: req.Available}
		if p.IsEmpty() {
			return nil
		}
		if derr = agg.ApplyPatch(p); derr != nil {
			return derr
		}
		return notFoundAs(tx.Items().Update(ctx, agg), errs.ErrItemNotFound)
	})
}

func (uc *itemUseCaseImpl) AddComment(ctx context.Context, authorID, itemID int64, req AddCommentRequest) (*AddCommentResult, error) {
	text, err := domcomment.NewText(req.Text)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, authorID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}
		if _, derr := tx.Reads().ItemByID(ctx, itemID); derr != nil {
			return notFoundAs(derr, errs.ErrItemNotFound)
		}

		services := &domcomment.Services{
			Clock:              uc.clock,
			EligibilityChecker: completedBookingChecker{reads: tx.Reads()},
		}
		agg, derr := domcomment.NewComment(ctx, services, itemID, authorID, text)
		if derr != nil {
			return derr
		}
		id, derr := tx.Comments().Create(ctx, agg)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &AddCommentResult{CommentID: createdID}, nil
}

// completedBookingChecker allows comments only after an approved booking has ended
type completedBookingChecker struct {
	reads shared.CommandReads
}

func (c completedBookingChecker) CanComment(ctx context.Context, input domcomment.EligibilityInput) error {
	ok, err := c.reads.CompletedBookingExists(ctx, input.ItemID, input.AuthorID, truncate(input.Now))
	if err != nil {
		return err
	}
	if !ok {
		return domcomment.ErrNotAvailable
	}
	return nil
}

// stored timestamps carry microsecond precision
func truncate(t time.Time) time.Time {
	return t.Truncate(time.Microsecond)
}
