package response

import "shareit/internal/usecase/queries"

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId"`
}

type BookingShortResponse struct {
	ID       int64  `json:"id"`
	BookerID int64  `json:"bookerId"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
}

type CommentResponse struct {
	ID         int64  `json:"id"`
	Text       string `json:"text"`
	ItemID     int64  `json:"itemId"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

// ItemDetailsResponse carries lastBooking/nextBooking only for the owner; both stay null otherwise
type ItemDetailsResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	OwnerID     int64                 `json:"ownerId"`
	RequestID   *int64                `json:"requestId"`
	LastBooking *BookingShortResponse `json:"lastBooking" copier:"-"`
	NextBooking *BookingShortResponse `json:"nextBooking" copier:"-"`
	Comments    []*CommentResponse    `json:"comments" copier:"-"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var res ItemResponse
	mustCopy(&res, v)
	return &res
}

func FromItemViews(vs []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemView(v)
	}
	return res
}

func FromItemDetailsView(v *queries.ItemDetailsView) *ItemDetailsResponse {
	var res ItemDetailsResponse
	mustCopy(&res, &v.ItemView)
	res.LastBooking = fromBookingShort(v.LastBooking)
	res.NextBooking = fromBookingShort(v.NextBooking)
	res.Comments = FromCommentViews(v.Comments)
	return &res
}

func FromItemDetailsViews(vs []*queries.ItemDetailsView) []*ItemDetailsResponse {
	res := make([]*ItemDetailsResponse, len(vs))
	for i, v := range vs {
		res[i] = FromItemDetailsView(v)
	}
	return res
}

func FromCommentView(v *queries.CommentView) *CommentResponse {
	var res CommentResponse
	mustCopy(&res, v)
	return &res
}

func FromCommentViews(vs []*queries.CommentView) []*CommentResponse {
	res := make([]*CommentResponse, len(vs))
	for i, v := range vs {
		res[i] = FromCommentView(v)
	}
	return res
}

func fromBookingShort(v *queries.BookingShortView) *BookingShortResponse {
	if v == nil {
		return nil
	}
	var res BookingShortResponse
	mustCopy(&res, v)
	return &res
}
