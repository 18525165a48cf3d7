package auth

import (
	"context"
)

// Service defines business logic for authentication
type Service interface {
	// Login verifies credentials and issues access and refresh tokens
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
}
