package memstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/itemrequest"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/shared"
)

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Within holds the store's write lock for the whole callback and undoes its
// writes when fn fails.
func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	mark := u.store.t
	u.store.t.undo = nil
	if err := fn(ctx, &memTx{t: &u.store.t}); err != nil {
		u.store.t.rollback(mark)
		return err
	}
	u.store.t.undo = nil
	return nil
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &lockedReads{store: u.store}
}

type memTx struct {
	t *tables
}

func (tx *memTx) Users() shared.UserRepository       { return &userRepo{t: tx.t} }
func (tx *memTx) Items() shared.ItemRepository       { return &itemRepo{t: tx.t} }
func (tx *memTx) Bookings() shared.BookingRepository { return &bookingRepo{t: tx.t} }
func (tx *memTx) Comments() shared.CommentRepository { return &commentRepo{t: tx.t} }
func (tx *memTx) Requests() shared.RequestRepository { return &requestRepo{t: tx.t} }
func (tx *memTx) Reads() shared.CommandReads         { return &reads{t: tx.t} }

type userRepo struct{ t *tables }

func (r *userRepo) Create(_ context.Context, u *user.User) (int64, error) {
	email := u.Email().Value()
	if r.t.emailTaken(email, 0) {
		return 0, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	r.t.userSeq++
	id := r.t.userSeq
	put(r.t, r.t.users, id, userRow{id: id, name: u.Name().Value(), email: email})
	return id, nil
}

func (r *userRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.t.users[u.ID()]; !ok {
		return infra.NotFound("user not found")
	}
	email := u.Email().Value()
	if r.t.emailTaken(email, u.ID()) {
		return infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey)
	}
	put(r.t, r.t.users, u.ID(), userRow{id: u.ID(), name: u.Name().Value(), email: email})
	return nil
}

func (r *userRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.t.users[id]; !ok {
		return infra.NotFound("user not found")
	}
	r.t.deleteUser(id)
	return nil
}

type itemRepo struct{ t *tables }

func (r *itemRepo) Create(_ context.Context, it *item.Item) (int64, error) {
	if _, ok := r.t.users[it.OwnerID()]; !ok {
		return 0, infra.WrapRepoErr("owner does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.itemSeq++
	id := r.t.itemSeq
	put(r.t, r.t.items, id, itemRow{
		id:          id,
		name:        it.Name(),
		description: it.Description(),
		available:   it.Available(),
		ownerID:     it.OwnerID(),
		requestID:   copyID(it.RequestID()),
	})
	return id, nil
}

func (r *itemRepo) Update(_ context.Context, it *item.Item) error {
	row, ok := r.t.items[it.ID()]
	if !ok {
		return infra.NotFound("item not found")
	}
	row.name = it.Name()
	row.description = it.Description()
	row.available = it.Available()
	put(r.t, r.t.items, it.ID(), row)
	return nil
}

type bookingRepo struct{ t *tables }

func (r *bookingRepo) Create(_ context.Context, b *booking.Booking) (int64, error) {
	if _, ok := r.t.items[b.ItemID()]; !ok {
		return 0, infra.WrapRepoErr("item does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.bookingSeq++
	id := r.t.bookingSeq
	put(r.t, r.t.bookings, id, bookingRow{
		id:       id,
		itemID:   b.ItemID(),
		bookerID: b.BookerID(),
		start:    b.Period().Start(),
		end:      b.Period().End(),
		status:   b.Status().String(),
	})
	return id, nil
}

// FindForUpdate needs no row lock: the enclosing unit of work holds the store lock
func (r *bookingRepo) FindForUpdate(_ context.Context, id int64) (*booking.Booking, error) {
	b, ok := r.t.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	it := r.t.items[b.itemID]
	return booking.ReconstructBooking(b.id, b.itemID, it.ownerID, b.bookerID, b.start, b.end, booking.Status(b.status)), nil
}

func (r *bookingRepo) UpdateStatus(_ context.Context, id int64, from, to booking.Status) error {
	b, ok := r.t.bookings[id]
	if !ok || b.status != from.String() {
		return infra.NotFound("booking in expected status not found")
	}
	b.status = to.String()
	put(r.t, r.t.bookings, id, b)
	return nil
}

type commentRepo struct{ t *tables }

func (r *commentRepo) Create(_ context.Context, c *comment.Comment) (int64, error) {
	if _, ok := r.t.items[c.ItemID()]; !ok {
		return 0, infra.WrapRepoErr("item does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.commentSeq++
	id := r.t.commentSeq
	put(r.t, r.t.comments, id, commentRow{
		id:       id,
		text:     c.Text().String(),
		itemID:   c.ItemID(),
		authorID: c.AuthorID(),
		created:  c.Created().Truncate(time.Microsecond),
	})
	return id, nil
}

type requestRepo struct{ t *tables }

func (r *requestRepo) Create(_ context.Context, req *itemrequest.ItemRequest) (int64, error) {
	if _, ok := r.t.users[req.RequestorID()]; !ok {
		return 0, infra.WrapRepoErr("requestor does not exist", nil, infra.KindForeignKeyViolated)
	}
	r.t.requestSeq++
	id := r.t.requestSeq
	put(r.t, r.t.requests, id, requestRow{
		id:          id,
		description: req.Description(),
		requestorID: req.RequestorID(),
		created:     req.Created(),
	})
	return id, nil
}

// reads serves command-side lookups against tables the caller already guards
type reads struct{ t *tables }

func (r *reads) UserByID(_ context.Context, id int64) (*shared.UserSnapshot, error) {
	u, ok := r.t.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &shared.UserSnapshot{ID: u.id, Name: u.name, Email: u.email}, nil
}

func (r *reads) ItemByID(_ context.Context, id int64) (*shared.ItemSnapshot, error) {
	it, ok := r.t.items[id]
	if !ok {
		return nil, infra.NotFound("item not found")
	}
	return &shared.ItemSnapshot{
		ID:          it.id,
		Name:        it.name,
		Description: it.description,
		Available:   it.available,
		OwnerID:     it.ownerID,
		RequestID:   copyID(it.requestID),
	}, nil
}

func (r *reads) BookingByID(_ context.Context, id int64) (*shared.BookingSnapshot, error) {
	b, ok := r.t.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return &shared.BookingSnapshot{
		ID:          b.id,
		ItemID:      b.itemID,
		ItemOwnerID: r.t.items[b.itemID].ownerID,
		BookerID:    b.bookerID,
		Start:       b.start,
		End:         b.end,
		Status:      b.status,
	}, nil
}

func (r *reads) RequestByID(_ context.Context, id int64) (*shared.RequestSnapshot, error) {
	rq, ok := r.t.requests[id]
	if !ok {
		return nil, infra.NotFound("request not found")
	}
	return &shared.RequestSnapshot{ID: rq.id, Description: rq.description, RequestorID: rq.requestorID, Created: rq.created}, nil
}

func (r *reads) CompletedBookingExists(_ context.Context, itemID, bookerID int64, endedBefore time.Time) (bool, error) {
	for _, b := range r.t.bookings {
		if b.itemID == itemID && b.bookerID == bookerID &&
			b.status == booking.StatusApproved.String() && b.end.Before(endedBefore) {
			return true, nil
		}
	}
	return false, nil
}

// lockedReads takes the read lock per call for use outside a unit of work
type lockedReads struct{ store *Store }

func (r *lockedReads) UserByID(ctx context.Context, id int64) (*shared.UserSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return (&reads{t: &r.store.t}).UserByID(ctx, id)
}

func (r *lockedReads) ItemByID(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return (&reads{t: &r.store.t}).ItemByID(ctx, id)
}

func (r *lockedReads) BookingByID(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return (&reads{t: &r.store.t}).BookingByID(ctx, id)
}

func (r *lockedReads) RequestByID(ctx context.Context, id int64) (*shared.RequestSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return (&reads{t: &r.store.t}).RequestByID(ctx, id)
}

func (r *lockedReads) CompletedBookingExists(ctx context.Context, itemID, bookerID int64, endedBefore time.Time) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return (&reads{t: &r.store.t}).CompletedBookingExists(ctx, itemID, bookerID, endedBefore)
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
