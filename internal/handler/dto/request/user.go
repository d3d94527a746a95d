package request

import "shareit/internal/usecase/commands"

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=255"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,notblank,max=255"`
	Email *string `json:"email" binding:"omitempty,email"`
}

func (r CreateUserRequest) ToCommand() commands.CreateUserRequest {
	return commands.CreateUserRequest{Name: r.Name, Email: r.Email}
}

func (r UpdateUserRequest) ToCommand() commands.UpdateUserRequest {
	return commands.UpdateUserRequest{Name: r.Name, Email: r.Email}
}
