package response

import "shareit/internal/usecase/queries"

type BookerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID     int64          `json:"id"`
	ItemID int64          `json:"itemId"`
	Start  string         `json:"start"`
	End    string         `json:"end"`
	Status string         `json:"status"`
	Item   ItemResponse   `json:"item" copier:"-"`
	Booker BookerResponse `json:"booker" copier:"-"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	mustCopy(&res, v)
	mustCopy(&res.Item, &v.Item)
	mustCopy(&res.Booker, &v.Booker)
	return &res
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		res[i] = FromBookingView(v)
	}
	return res
}
