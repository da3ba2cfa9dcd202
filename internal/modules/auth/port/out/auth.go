package out

import (
	"context"
	"time"

	"capacita/internal/modules/auth/domain"
)

type LoginResult struct {
	Token  string
	Role   string
	UserID string
}

type ProfileUpdate struct {
	Name            string
	Email           string
	NewPassword     string
	NewSecurityCode string
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Register(ctx context.Context, name, email, password string) error
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context) (domain.Profile, error)
	UpdateProfile(ctx context.Context, update ProfileUpdate) (string, error)
	DeleteProfile(ctx context.Context) error
}

type SessionStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// TokenInspector reads claims without verifying the signature; only the
// backend can verify.
type TokenInspector interface {
	ExpiresAt(token string) (time.Time, error)
}
