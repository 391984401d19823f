package dto

import "github.com/hongminglow/puzzle-be/internal/models"

// RegisterRequest fields are pointers so an absent or null value stays
// distinguishable from "". The same holds for LoginRequest.
type RegisterRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type RegisterResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
