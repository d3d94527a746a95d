package memstore

import (
	"context"
	"strings"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type UserReadStore struct{ store *Store }

func NewUserReadStore(store *Store) *UserReadStore {
	return &UserReadStore{store: store}
}

func (r *UserReadStore) FindByID(_ context.Context, id int64) (*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.t.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return toUserView(u), nil
}

func (r *UserReadStore) List(_ context.Context) ([]*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := sortedValues(r.store.t.users, func(a, b userRow) bool { return a.id < b.id })
	out := make([]*queries.UserView, len(rows))
	for i, u := range rows {
		out[i] = toUserView(u)
	}
	return out, nil
}

type ItemReadStore struct{ store *Store }

func NewItemReadStore(store *Store) *ItemReadStore {
	return &ItemReadStore{store: store}
}

func (r *ItemReadStore) FindByID(_ context.Context, id int64) (*queries.ItemView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	it, ok := r.store.t.items[id]
	if !ok {
		return nil, infra.NotFound("item not found")
	}
	return toItemView(it), nil
}

func (r *ItemReadStore) ListByOwner(_ context.Context, ownerID int64, limit, offset int32) ([]*queries.ItemView, error) {
	return r.list(func(it itemRow) bool { return it.ownerID == ownerID }, limit, offset), nil
}

func (r *ItemReadStore) Search(_ context.Context, text string, limit, offset int32) ([]*queries.ItemView, error) {
	needle := strings.ToLower(text)
	return r.list(func(it itemRow) bool {
		return it.available &&
			(strings.Contains(strings.ToLower(it.name), needle) || strings.Contains(strings.ToLower(it.description), needle))
	}, limit, offset), nil
}

func (r *ItemReadStore) ListByRequestIDs(_ context.Context, requestIDs []int64) ([]*queries.ItemView, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}
	return r.list(func(it itemRow) bool {
		if it.requestID == nil {
			return false
		}
		_, ok := wanted[*it.requestID]
		return ok
	}, -1, 0), nil
}

func (r *ItemReadStore) list(match func(itemRow) bool, limit, offset int32) []*queries.ItemView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := sortedValues(r.store.t.items, func(a, b itemRow) bool { return a.id < b.id })
	matched := make([]itemRow, 0, len(rows))
	for _, it := range rows {
		if match(it) {
			matched = append(matched, it)
		}
	}

	page := window(matched, limit, offset)
	out := make([]*queries.ItemView, len(page))
	for i, it := range page {
		out[i] = toItemView(it)
	}
	return out
}

type BookingReadStore struct{ store *Store }

func NewBookingReadStore(store *Store) *BookingReadStore {
	return &BookingReadStore{store: store}
}

func (r *BookingReadStore) FindByID(_ context.Context, id int64) (*queries.BookingView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	b, ok := r.store.t.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return r.toBookingView(b), nil
}

func (r *BookingReadStore) List(_ context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := sortedValues(r.store.t.bookings, func(a, b bookingRow) bool {
		if !a.start.Equal(b.start) {
			return a.start.After(b.start)
		}
		return a.id > b.id
	})

	matched := make([]bookingRow, 0, len(rows))
	for _, b := range rows {
		var side int64
		switch filter.Role {
		case booking.RoleOwner:
			side = r.store.t.items[b.itemID].ownerID
		default:
			side = b.bookerID
		}
		if side != filter.ActorID {
			continue
		}
		if !filter.State.Includes(b.start, b.end, booking.Status(b.status), filter.Now) {
			continue
		}
		matched = append(matched, b)
	}

	page := window(matched, filter.Limit, filter.Offset)
	out := make([]*queries.BookingView, len(page))
	for i, b := range page {
		out[i] = r.toBookingView(b)
	}
	return out, nil
}

func (r *BookingReadStore) LastApproved(_ context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	return r.pick(itemIDs, func(b bookingRow) bool { return !b.start.After(now) }, func(cand, cur bookingRow) bool {
		if !cand.start.Equal(cur.start) {
			return cand.start.After(cur.start)
		}
		return cand.id > cur.id
	}), nil
}

func (r *BookingReadStore) NextApproved(_ context.Context, itemIDs []int64, now time.Time) (map[int64]*queries.BookingShortView, error) {
	return r.pick(itemIDs, func(b bookingRow) bool { return b.start.After(now) }, func(cand, cur bookingRow) bool {
		if !cand.start.Equal(cur.start) {
			return cand.start.Before(cur.start)
		}
		return cand.id < cur.id
	}), nil
}

// pick keeps, per item, the approved booking that wins under better
func (r *BookingReadStore) pick(itemIDs []int64, match func(bookingRow) bool, better func(cand, cur bookingRow) bool) map[int64]*queries.BookingShortView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	best := make(map[int64]bookingRow)
	for _, b := range r.store.t.bookings {
		if _, ok := wanted[b.itemID]; !ok {
			continue
		}
		if b.status != booking.StatusApproved.String() || !match(b) {
			continue
		}
		if cur, ok := best[b.itemID]; !ok || better(b, cur) {
			best[b.itemID] = b
		}
	}

	out := make(map[int64]*queries.BookingShortView, len(best))
	for itemID, b := range best {
		out[itemID] = &queries.BookingShortView{
			ID:       b.id,
			ItemID:   b.itemID,
			BookerID: b.bookerID,
			Start:    b.start,
			End:      b.end,
			Status:   b.status,
		}
	}
	return out
}

func (r *BookingReadStore) toBookingView(b bookingRow) *queries.BookingView {
	it := r.store.t.items[b.itemID]
	u := r.store.t.users[b.bookerID]
	return &queries.BookingView{
		ID:     b.id,
		ItemID: b.itemID,
		Start:  b.start,
		End:    b.end,
		Status: b.status,
		Item:   *toItemView(it),
		Booker: queries.BookerView{ID: u.id, Name: u.name, Email: u.email},
	}
}

type CommentReadStore struct{ store *Store }

func NewCommentReadStore(store *Store) *CommentReadStore {
	return &CommentReadStore{store: store}
}

func (r *CommentReadStore) FindByID(_ context.Context, id int64) (*queries.CommentView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.t.comments[id]
	if !ok {
		return nil, infra.NotFound("comment not found")
	}
	return r.toCommentView(c), nil
}

func (r *CommentReadStore) ListByItemIDs(_ context.Context, itemIDs []int64) ([]*queries.CommentView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wanted := make(map[int64]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = struct{}{}
	}

	rows := sortedValues(r.store.t.comments, func(a, b commentRow) bool { return a.id < b.id })
	out := make([]*queries.CommentView, 0, len(rows))
	for _, c := range rows {
		if _, ok := wanted[c.itemID]; ok {
			out = append(out, r.toCommentView(c))
		}
	}
	return out, nil
}

func (r *CommentReadStore) toCommentView(c commentRow) *queries.CommentView {
	return &queries.CommentView{
		ID:         c.id,
		Text:       c.text,
		ItemID:     c.itemID,
		AuthorName: r.store.t.users[c.authorID].name,
		Created:    c.created,
	}
}

type RequestReadStore struct{ store *Store }

func NewRequestReadStore(store *Store) *RequestReadStore {
	return &RequestReadStore{store: store}
}

func (r *RequestReadStore) FindByID(_ context.Context, id int64) (*queries.RequestView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rq, ok := r.store.t.requests[id]
	if !ok {
		return nil, infra.NotFound("request not found")
	}
	return toRequestView(rq), nil
}

func (r *RequestReadStore) ListByRequestor(_ context.Context, requestorID int64) ([]*queries.RequestView, error) {
	return r.list(func(rq requestRow) bool { return rq.requestorID == requestorID }, -1, 0), nil
}

func (r *RequestReadStore) ListOthers(_ context.Context, actorID int64, limit, offset int32) ([]*queries.RequestView, error) {
	return r.list(func(rq requestRow) bool { return rq.requestorID != actorID }, limit, offset), nil
}

func (r *RequestReadStore) list(match func(requestRow) bool, limit, offset int32) []*queries.RequestView {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	rows := sortedValues(r.store.t.requests, func(a, b requestRow) bool {
		if !a.created.Equal(b.created) {
			return a.created.After(b.created)
		}
		return a.id > b.id
	})
	matched := make([]requestRow, 0, len(rows))
	for _, rq := range rows {
		if match(rq) {
			matched = append(matched, rq)
		}
	}

	page := window(matched, limit, offset)
	out := make([]*queries.RequestView, len(page))
	for i, rq := range page {
		out[i] = toRequestView(rq)
	}
	return out
}

func toUserView(u userRow) *queries.UserView {
	return &queries.UserView{ID: u.id, Name: u.name, Email: u.email}
}

func toItemView(it itemRow) *queries.ItemView {
	return &queries.ItemView{
		ID:          it.id,
		Name:        it.name,
		Description: it.description,
		Available:   it.available,
		OwnerID:     it.ownerID,
		RequestID:   copyID(it.requestID),
	}
}

func toRequestView(rq requestRow) *queries.RequestView {
	return &queries.RequestView{
		ID:          rq.id,
		Description: rq.description,
		RequestorID: rq.requestorID,
		Created:     rq.created,
	}
}
