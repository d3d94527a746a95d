package response

import "shareit/internal/usecase/queries"

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	mustCopy(&res, v)
	return &res
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	res := make([]*UserResponse, len(vs))
	for i, v := range vs {
		res[i] = FromUserView(v)
	}
	return res
}
