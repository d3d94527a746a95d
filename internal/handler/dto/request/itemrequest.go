package request

import "shareit/internal/usecase/commands"

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required,notblank,max=1000"`
}

func (r CreateItemRequestRequest) ToCommand() commands.CreateRequestRequest {
	return commands.CreateRequestRequest{Description: r.Description}
}
