// Package memstore keeps the whole marketplace in process memory.
// It backs STORAGE_DRIVER=memory and the command/query tests.
package memstore

import (
	"sort"
	"sync"
	"time"
)

type userRow struct {
	id    int64
	name  string
	email string
}

type itemRow struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

type bookingRow struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   string
}

type commentRow struct {
	id       int64
	text     string
	itemID   int64
	authorID int64
	created  time.Time
}

type requestRow struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

type tables struct {
	users    map[int64]userRow
	items    map[int64]itemRow
	bookings map[int64]bookingRow
	comments map[int64]commentRow
	requests map[int64]requestRow

	userSeq, itemSeq, bookingSeq, commentSeq, requestSeq int64

	// undo holds the inverse of every write made by the running unit of work
	undo []func()
}

// Store is safe for concurrent use. Writers are serialized through the unit of work.
type Store struct {
	mu sync.RWMutex
	t  tables
}

func New() *Store {
	return &Store{t: newTables()}
}

func newTables() tables {
	return tables{
		users:    map[int64]userRow{},
		items:    map[int64]itemRow{},
		bookings: map[int64]bookingRow{},
		comments: map[int64]commentRow{},
		requests: map[int64]requestRow{},
	}
}

// put writes one row and journals how to restore it
func put[V any](t *tables, m map[int64]V, id int64, row V) {
	old, had := m[id]
	t.undo = append(t.undo, func() {
		if had {
			m[id] = old
		} else {
			delete(m, id)
		}
	})
	m[id] = row
}

func drop[V any](t *tables, m map[int64]V, id int64) {
	old, had := m[id]
	if !had {
		return
	}
	t.undo = append(t.undo, func() { m[id] = old })
	delete(m, id)
}

// rollback replays the journal backwards and restores the sequences of mark
func (t *tables) rollback(mark tables) {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.undo = nil
	t.userSeq, t.itemSeq, t.bookingSeq, t.commentSeq, t.requestSeq = mark.userSeq, mark.itemSeq, mark.bookingSeq, mark.commentSeq, mark.requestSeq
}

func (t *tables) emailTaken(email string, exceptID int64) bool {
	for _, u := range t.users {
		if u.id != exceptID && u.email == email {
			return true
		}
	}
	return false
}

// deleteUser mirrors the ON DELETE rules of the relational schema
func (t *tables) deleteUser(id int64) {
	drop(t, t.users, id)

	for iid, it := range t.items {
		if it.ownerID == id {
			t.deleteItem(iid)
		}
	}
	for bid, b := range t.bookings {
		if b.bookerID == id {
			drop(t, t.bookings, bid)
		}
	}
	for cid, c := range t.comments {
		if c.authorID == id {
			drop(t, t.comments, cid)
		}
	}
	for rid, r := range t.requests {
		if r.requestorID == id {
			t.deleteRequest(rid)
		}
	}
}

func (t *tables) deleteItem(id int64) {
	drop(t, t.items, id)
	for bid, b := range t.bookings {
		if b.itemID == id {
			drop(t, t.bookings, bid)
		}
	}
	for cid, c := range t.comments {
		if c.itemID == id {
			drop(t, t.comments, cid)
		}
	}
}

func (t *tables) deleteRequest(id int64) {
	drop(t, t.requests, id)
	for iid, it := range t.items {
		if it.requestID != nil && *it.requestID == id {
			it.requestID = nil
			put(t, t.items, iid, it)
		}
	}
}

func sortedValues[K comparable, V any](m map[K]V, less func(a, b V) bool) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func window[V any](rows []V, limit, offset int32) []V {
	if offset < 0 {
		offset = 0
	}
	if int(offset) >= len(rows) {
		return rows[:0]
	}
	end := len(rows)
	if limit >= 0 && int(offset)+int(limit) < end {
		end = int(offset) + int(limit)
	}
	return rows[offset:end]
}
