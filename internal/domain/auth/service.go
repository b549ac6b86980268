package auth

import "context"

// AuthService defines session and credential operations.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle exchanges an OAuth authorization code for a session.
	// The Google account must already be registered by email.
	LoginWithGoogle(ctx context.Context, code string) (TokenResponse, error)

	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error

	// ChangePassword requires re-proving the old password.
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

// RefreshTokenRepository persists refresh tokens so revocation survives
// process restarts.
type RefreshTokenRepository interface {
	Store(ctx context.Context, token string, userID string, expiresAt int64) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
