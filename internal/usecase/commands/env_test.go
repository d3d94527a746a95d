//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	dombooking "shareit/internal/domain/booking"
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2030, 1, 10, 12, 0, 0, 0, time.Local)

// env wires the command and query sides over one in-memory store
type env struct {
	clock    *clock.MockClock
	users    commands.UserCommands
	items    commands.ItemCommands
	bookings commands.BookingCommands
	requests commands.RequestCommands

	bookingQueries queries.BookingQueries
	itemQueries    queries.ItemQueries
	userQueries    queries.UserQueries
	events         *recordingEvents
	notifier       *recordingNotifier
}

type recordingEvents struct {
	decided []dombooking.Status
}

func (r *recordingEvents) BookingDecided(s dombooking.Status) {
	r.decided = append(r.decided, s)
}

type recordingNotifier struct {
	changed []int64
}

func (r *recordingNotifier) UserChanged(_ context.Context, id int64) {
	r.changed = append(r.changed, id)
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := memstore.New()
	uow := memstore.NewUnitOfWork(store)
	clk := clock.NewMockClock(baseTime)
	events := &recordingEvents{}
	notifier := &recordingNotifier{}

	bookingReads := memstore.NewBookingReadStore(store)
	return &env{
		clock:    clk,
		users:    commands.NewUserUseCase(uow, notifier),
		items:    commands.NewItemUseCase(uow, clk),
		bookings: commands.NewBookingUseCase(uow, clk, dombooking.DateRuleStrict, events),
		requests: commands.NewRequestUseCase(uow, clk),

		bookingQueries: queries.NewBookingQueries(bookingReads, clk),
		itemQueries: queries.NewItemQueries(
			memstore.NewItemReadStore(store),
			bookingReads,
			memstore.NewCommentReadStore(store),
			clk,
		),
		userQueries: queries.NewUserQueries(memstore.NewUserReadStore(store)),
		events:      events,
		notifier:    notifier,
	}
}

func (e *env) createUser(t *testing.T, name, email string) int64 {
	t.Helper()
	res, err := e.users.Create(context.Background(), commands.CreateUserRequest{Name: name, Email: email})
	require.NoError(t, err)
	return res.UserID
}

func (e *env) createItem(t *testing.T, ownerID int64, name string, available bool) int64 {
	t.Helper()
	res, err := e.items.Create(context.Background(), ownerID, commands.CreateItemRequest{
		Name:        name,
		Description: name + " for rent",
		Available:   available,
	})
	require.NoError(t, err)
	return res.ItemID
}

func (e *env) book(t *testing.T, bookerID, itemID int64, start, end time.Time) int64 {
	t.Helper()
	res, err := e.bookings.Create(context.Background(), bookerID, commands.CreateBookingRequest{
		ItemID: itemID,
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return res.BookingID
}

func tomorrow() time.Time {
	return baseTime.Add(24 * time.Hour)
}

