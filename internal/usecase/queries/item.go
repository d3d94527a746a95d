package queries

import (
	"context"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	// ListByOwner orders by id ascending
	ListByOwner(ctx context.Context, ownerID int64, limit, offset int32) ([]*ItemView, error)
	// Search matches name or description case-insensitively among available items
	Search(ctx context.Context, text string, limit, offset int32) ([]*ItemView, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*ItemView, error)
}

type CommentReadStore interface {
	// ListByItemIDs orders by id ascending
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]*CommentView, error)
	FindByID(ctx context.Context, id int64) (*CommentView, error)
}

type ItemQueries interface {
	Get(ctx context.Context, actorID, itemID int64) (*ItemDetailsView, error)
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemDetailsView, error)
	Search(ctx context.Context, text string, page Page) ([]*ItemView, error)
	GetComment(ctx context.Context, commentID int64) (*CommentView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	bookings BookingReadStore
	comments CommentReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, bookings BookingReadStore, comments CommentReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{
		items:    items,
		bookings: bookings,
		comments: comments,
		clock:    clk,
	}
}

func (q *itemQueriesImpl) Get(ctx context.Context, actorID, itemID int64) (*ItemDetailsView, error) {
	it, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}

	details, err := q.annotate(ctx, []*ItemView{it}, it.OwnerID == actorID)
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*ItemDetailsView, error) {
	rows, err := q.items.ListByOwner(ctx, ownerID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}
	return q.annotate(ctx, rows, true)
}

// Search returns an empty result for blank text without touching the store
func (q *itemQueriesImpl) Search(ctx context.Context, text string, page Page) ([]*ItemView, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []*ItemView{}, nil
	}
	return q.items.Search(ctx, text, page.Limit(), page.Offset())
}

func (q *itemQueriesImpl) GetComment(ctx context.Context, commentID int64) (*CommentView, error) {
	c, err := q.comments.FindByID(ctx, commentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrItemNotFound
		}
		return nil, err
	}
	return c, nil
}

func (q *itemQueriesImpl) annotate(ctx context.Context, items []*ItemView, withBookings bool) ([]*ItemDetailsView, error) {
	out := make([]*ItemDetailsView, len(items))
	if len(items) == 0 {
		return out, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	comments, err := q.comments.ListByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byItem := make(map[int64][]*CommentView, len(items))
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	var last, next map[int64]*BookingShortView
	if withBookings {
		now := q.clock.Now()
		if last, err = q.bookings.LastApproved(ctx, ids, now); err != nil {
			return nil, err
		}
		if next, err = q.bookings.NextApproved(ctx, ids, now); err != nil {
			return nil, err
		}
	}

	for i, it := range items {
		d := &ItemDetailsView{
			ItemView: *it,
			Comments: byItem[it.ID],
		}
		if d.Comments == nil {
			d.Comments = []*CommentView{}
		}
		if withBookings {
			d.LastBooking = last[it.ID]
			d.NextBooking = next[it.ID]
		}
		out[i] = d
	}
	return out, nil
}
