package commands

import (
	"context"
	"log/slog"
	"time"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/shared"
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error)
	Decide(ctx context.Context, ownerID, bookingID int64, approve bool) error
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	services *dombooking.Services
	events   BookingEvents
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, rule dombooking.DateRule, events BookingEvents) BookingCommands {
	if events == nil {
		events = NopBookingEvents{}
	}
	return &bookingUseCaseImpl{
		uow:      uow,
		services: &dombooking.Services{Clock: clk, DateRule: rule},
		events:   events,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*CreateBookingResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, bookerID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}
		snap, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			return notFoundAs(derr, errs.ErrItemNotFound)
		}

		spec := dombooking.ItemSpec{ID: snap.ID, OwnerID: snap.OwnerID, Available: snap.Available}
		agg, derr := dombooking.NewBooking(uc.services, spec, bookerID, truncate(req.Start), truncate(req.End))
		if derr != nil {
			return derr
		}

		id, derr := tx.Bookings().Create(ctx, agg)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, ownerID, bookingID int64, approve bool) error {
	var decided dombooking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, ownerID); derr != nil {
			return notFoundAs(derr, errs.ErrUserNotFound)
		}
		agg, derr := tx.Bookings().FindForUpdate(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, errs.ErrBookingNotFound)
		}
		if !agg.IsItemOwner(ownerID) {
			return errs.ErrNotItemOwner
		}

		if derr = agg.Decide(approve); derr != nil {
			return derr
		}
		// zero rows means another decision won the race
		if derr = tx.Bookings().UpdateStatus(ctx, bookingID, dombooking.StatusWaiting, agg.Status()); derr != nil {
			return notFoundAs(derr, dombooking.ErrWrongStatus)
		}
		decided = agg.Status()
		return nil
	})
	if err != nil {
		return err
	}

	uc.events.BookingDecided(decided)
	slog.InfoContext(ctx, "booking decided",
		"booking_id", bookingID,
		"owner_id", ownerID,
		"status", decided.String())
	return nil
}
