package response

import "shareit/internal/usecase/queries"

type RequestResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	RequestorID int64           `json:"requestorId"`
	Created     string          `json:"created"`
	Items       []*ItemResponse `json:"items" copier:"-"`
}

func FromRequestView(v *queries.RequestView) *RequestResponse {
	var res RequestResponse
	mustCopy(&res, v)
	res.Items = FromItemViews(v.Items)
	return &res
}

func FromRequestViews(vs []*queries.RequestView) []*RequestResponse {
	res := make([]*RequestResponse, len(vs))
	for i, v := range vs {
		res[i] = FromRequestView(v)
	}
	return res
}
