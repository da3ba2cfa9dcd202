package in

import (
	"context"

	"capacita/internal/modules/auth/dto"
	authin "capacita/internal/modules/auth/port/in"
)

type CLIHandler struct {
	usecase authin.Usecase
}

func NewCLIHandler(usecase authin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, email, password string) (dto.SessionOutput, error) {
	return h.usecase.Login(ctx, dto.LoginInput{Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, name, email, password string) error {
	return h.usecase.Register(ctx, dto.RegisterInput{Name: name, Email: email, Password: password})
}

func (h CLIHandler) ForgotPassword(ctx context.Context, email string) (dto.ForgotPasswordOutput, error) {
	return h.usecase.ForgotPassword(ctx, dto.ForgotPasswordInput{Email: email})
}

func (h CLIHandler) ResetPassword(ctx context.Context, token, newPassword string) error {
	return h.usecase.ResetPassword(ctx, dto.ResetPasswordInput{Token: token, NewPassword: newPassword})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (dto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	return h.usecase.Profile(ctx)
}

func (h CLIHandler) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.UpdateProfileOutput, error) {
	return h.usecase.UpdateProfile(ctx, input)
}

func (h CLIHandler) DeleteProfile(ctx context.Context) error {
	return h.usecase.DeleteProfile(ctx)
}
