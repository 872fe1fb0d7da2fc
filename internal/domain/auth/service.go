package auth

import (
	"context"

	"github.com/shiftwatch/attendance-backend-go/internal/domain/user"
)

// AuthService issues and revokes bearer tokens.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// CurrentUser resolves the authenticated identity.
	CurrentUser(ctx context.Context, userID string) (user.UserResponse, error)
}
