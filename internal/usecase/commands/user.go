package commands

import (
	"context"

	domuser "shareit/internal/domain/user"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/patch"
	"shareit/internal/usecase/shared"
)

type CreateUserRequest struct {
	Name  string
	Email string
}

type UpdateUserRequest struct {
	Name  *string
	Email *string
}

type CreateUserResult struct {
	UserID int64
}

type UserCommands interface {
	Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error)
	Update(ctx context.Context, userID int64, req UpdateUserRequest) error
	Delete(ctx context.Context, userID int64) error
}

type userUseCaseImpl struct {
	uow      shared.UnitOfWork
	notifier UserChangeNotifier
}

func NewUserUseCase(uow shared.UnitOfWork, notifier UserChangeNotifier) UserCommands {
	if notifier == nil {
		notifier = NopUserChangeNotifier{}
	}
	return &userUseCaseImpl{uow: uow, notifier: notifier}
}

func (uc *userUseCaseImpl) Create(ctx context.Context, req CreateUserRequest) (*CreateUserResult, error) {
	name, err := domuser.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	email, err := domuser.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, domuser.NewUser(name, email))
		if derr != nil {
			return duplicateAs(derr, errs.ErrEmailTaken)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateUserResult{UserID: createdID}, nil
}

func (uc *userUseCaseImpl) Update(ctx context.Context, userID int64, req UpdateUserRequest) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}

		if !patch.Changed(req.Name, snap.Name) && !patch.Changed(req.Email, snap.Email) {
			return nil
		}

		agg := domuser.ReconstructUser(snap.ID, snap.Name, snap.Email)
		if derr = agg.ApplyPatch(domuser.Patch{Name: req.Name, Email: req.Email}); derr != nil {
			return derr
		}
		if derr = tx.Users().Update(ctx, agg); derr != nil {
			return duplicateAs(notFoundAs(derr, errs.ErrUserNotFound), errs.ErrEmailTaken)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.notifier.UserChanged(ctx, userID)
	return nil
}

func (uc *userUseCaseImpl) Delete(ctx context.Context, userID int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.Users().Delete(ctx, userID), errs.ErrUserNotFound)
	})
	if err != nil {
		return err
	}
	uc.notifier.UserChanged(ctx, userID)
	return nil
}
