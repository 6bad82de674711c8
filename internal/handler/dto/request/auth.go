package request

import "meeting-room-approval/internal/usecase/commands"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=50"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	FullName   string `json:"fullName" binding:"required"`
	Whatsapp   string `json:"whatsapp" binding:"required"`
	Department string `json:"department" binding:"required"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Username:   r.Username,
		Email:      r.Email,
		Password:   r.Password,
		FullName:   r.FullName,
		Whatsapp:   r.Whatsapp,
		Department: r.Department,
	}
}

type UpdateUserRequest struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	FullName   *string `json:"fullName" binding:"omitempty,min=1"`
	Whatsapp   *string `json:"whatsapp" binding:"omitempty,min=1"`
	Department *string `json:"department" binding:"omitempty,min=1"`
	Role       *string `json:"role" binding:"omitempty,role"`
	IsActive   *bool   `json:"isActive"`
}

func (r *UpdateUserRequest) ToInput() commands.UserPatchInput {
	return commands.UserPatchInput{
		Email:      r.Email,
		FullName:   r.FullName,
		Whatsapp:   r.Whatsapp,
		Department: r.Department,
		Role:       r.Role,
		IsActive:   r.IsActive,
	}
}
