//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/datetime"
	"shareit/internal/usecase/queries"
)

// BookingBuilder anchors its period on Now, which tests pin with a mock clock
type BookingBuilder struct {
	ID          int64
	ItemID      int64
	ItemOwnerID int64
	BookerID    int64
	Available   bool
	Now         time.Time
	Start       time.Time
	End         time.Time
	Status      booking.Status
	DateRule    booking.DateRule
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Date(2030, 1, 10, 12, 0, 0, 0, time.Local)
	return &BookingBuilder{
		ID:          1,
		ItemID:      1,
		ItemOwnerID: 1,
		BookerID:    2,
		Available:   true,
		Now:         now,
		Start:       now.Add(time.Hour),
		End:         now.Add(24 * time.Hour),
		Status:      booking.StatusWaiting,
		DateRule:    booking.DateRuleStrict,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Services() *booking.Services {
	return &booking.Services{Clock: clock.NewMockClock(b.Now), DateRule: b.DateRule}
}

// BuildDomain goes through the creation rules; the result is always WAITING
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	spec := booking.ItemSpec{ID: b.ItemID, OwnerID: b.ItemOwnerID, Available: b.Available}
	return booking.NewBooking(b.Services(), spec, b.BookerID, b.Start, b.End)
}

// BuildStored skips the creation rules and keeps Status
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.ItemID, b.ItemOwnerID, b.BookerID, b.Start, b.End, b.Status)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:     b.ID,
		ItemID: b.ItemID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status.String(),
		Item: *NewItemBuilder().
			WithID(b.ItemID).
			WithOwnerID(b.ItemOwnerID).
			BuildView(),
		Booker: queries.BookerView{ID: b.BookerID, Name: "Bob", Email: "bob@example.com"},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  datetime.Format(b.Start),
		End:    datetime.Format(b.End),
	}
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithBookerID(id int64) *BookingBuilder {
	b.BookerID = id
	return b
}

func (b *BookingBuilder) WithItemOwnerID(id int64) *BookingBuilder {
	b.ItemOwnerID = id
	return b
}
