package handler

import "github.com/shopwise/shopping-assistant/internal/core/domain"

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Assistant ---

type assistRequest struct {
	Query string `json:"query" validate:"required"`
}

type assistResponse struct {
	Response     string `json:"response"`
	Personalized bool   `json:"personalized,omitempty"`
}

// assistErrorResponse carries the underlying failure message alongside the
// generic error; Details is populated only in development mode.
type assistErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// --- Admin directory ---

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Role     *string `json:"role"     validate:"omitempty,oneof=core admin"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type updateUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type statsResponse struct {
	Stats       domain.UserStats `json:"stats"`
	LatestUsers []domain.User    `json:"latestUsers"`
}
