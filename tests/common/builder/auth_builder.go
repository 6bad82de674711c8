//go:build unit || e2e

package builder

import (
	reqdto "meeting-room-approval/internal/handler/dto/request"
)

type AuthBuilder struct {
	Username string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Username: "budi",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username:   a.Username,
		Email:      a.Username + "@example.com",
		Password:   a.Password,
		FullName:   "Budi Santoso",
		Whatsapp:   "081234567890",
		Department: "Finance",
	}
}
