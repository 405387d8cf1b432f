// Package dto defines the JSON request and response shapes of the HTTP
// API. Wire names keep the snake_case of the public contract.
package dto

import "github.com/orderdesk/orderdesk/internal/domain/model"

// SignUpRequest registers a new client account. The staff and active
// flags are optional and default to a regular active client.
type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	IsStaff  *bool  `json:"is_staff"`
	IsActive *bool  `json:"is_active"`
}

// LoginRequest authenticates by username or email.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// ClientResponse is the public projection of an account.
type ClientResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
	IsActive bool   `json:"is_active"`
}

// NewClientResponse projects a client onto the wire shape.
func NewClientResponse(client *model.Client) ClientResponse {
	return ClientResponse{
		ID:       client.ID,
		Username: client.Username,
		Email:    client.Email,
		IsStaff:  client.IsStaff(),
		IsActive: client.Active,
	}
}

// TokenResponse returns issued tokens. The refresh token is present only
// on login.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
}
