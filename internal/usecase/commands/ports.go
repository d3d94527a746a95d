package commands

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

// BookingEvents observes committed approval decisions
type BookingEvents interface {
	BookingDecided(status booking.Status)
}

// UserChangeNotifier is told about users whose cached views went stale
type UserChangeNotifier interface {
	UserChanged(ctx context.Context, id int64)
}

// NopBookingEvents discards decisions
type NopBookingEvents struct{}

func (NopBookingEvents) BookingDecided(booking.Status) {}

// NopUserChangeNotifier is used when no user cache is configured
type NopUserChangeNotifier struct{}

func (NopUserChangeNotifier) UserChanged(context.Context, int64) {}

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}

func duplicateAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Wrap(sentinel, err.Error())
	}
	return err
}
