package request

import (
	"shareit/internal/pkg/ptr"
	"shareit/internal/usecase/commands"
)

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,notblank,max=255"`
	Description string `json:"description" binding:"required,notblank,max=1000"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId" binding:"omitempty,gt=0"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,notblank,max=255"`
	Description *string `json:"description" binding:"omitempty,notblank,max=1000"`
	Available   *bool   `json:"available"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required,notblank,max=1000"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemRequest {
	return commands.CreateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   ptr.Deref(r.Available),
		RequestID:   r.RequestID,
	}
}

func (r UpdateItemRequest) ToCommand() commands.UpdateItemRequest {
	return commands.UpdateItemRequest{
		Name:        r.Name,
		Description: r.Description,
		Available:   r.Available,
	}
}

func (r AddCommentRequest) ToCommand() commands.AddCommentRequest {
	return commands.AddCommentRequest{Text: r.Text}
}
