package booking

import (
	"time"

	"shareit/internal/pkg/clock"
)

type Services struct {
	Clock    clock.Clock
	DateRule DateRule
}

// ItemSpec is what booking creation needs to know about the item
type ItemSpec struct {
	ID        int64
	OwnerID   int64
	Available bool
}

type Booking struct {
	id          int64
	itemID      int64
	itemOwnerID int64
	bookerID    int64
	period      Period
	status      Status
}

// NewBooking checks availability, then ownership, then dates, and returns a WAITING booking
func NewBooking(services *Services, it ItemSpec, bookerID int64, start, end time.Time) (*Booking, error) {
	if !it.Available {
		return nil, ErrItemNotAvailable
	}
	if it.OwnerID == bookerID {
		return nil, ErrOwnerCannotBook
	}

	period, err := NewPeriod(start, end, services.Clock.Now(), services.DateRule)
	if err != nil {
		return nil, err
	}

	return &Booking{
		itemID:      it.ID,
		itemOwnerID: it.OwnerID,
		bookerID:    bookerID,
		period:      period,
		status:      StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, itemOwnerID, bookerID int64, start, end time.Time, status Status) *Booking {
	return &Booking{
		id:          id,
		itemID:      itemID,
		itemOwnerID: itemOwnerID,
		bookerID:    bookerID,
		period:      Period{start: start, end: end},
		status:      status,
	}
}

// Decide moves a WAITING booking to APPROVED or REJECTED; any other status is terminal.
func (b *Booking) Decide(approve bool) error {
	if b.status != StatusWaiting {
		return ErrWrongStatus
	}
	if approve {
		b.status = StatusApproved
	} else {
		b.status = StatusRejected
	}
	return nil
}

func (b *Booking) IsItemOwner(userID int64) bool {
	return b.itemOwnerID == userID
}

func (b *Booking) CanBeViewedBy(userID int64) bool {
	return b.bookerID == userID || b.itemOwnerID == userID
}

func (b *Booking) ID() int64          { return b.id }
func (b *Booking) ItemID() int64      { return b.itemID }
func (b *Booking) ItemOwnerID() int64 { return b.itemOwnerID }
func (b *Booking) BookerID() int64    { return b.bookerID }
func (b *Booking) Period() Period     { return b.period }
func (b *Booking) Status() Status     { return b.status }
