package in

import (
	"context"

	"capacita/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) error
	ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (dto.ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error
	Logout(ctx context.Context) error
	Current(ctx context.Context) (dto.SessionOutput, error)
	Profile(ctx context.Context) (dto.ProfileOutput, error)
	UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.UpdateProfileOutput, error)
	DeleteProfile(ctx context.Context) error
}
