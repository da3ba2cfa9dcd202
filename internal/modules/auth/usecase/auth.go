package usecase

import (
	"context"
	"strings"

	"capacita/internal/modules/auth/domain"
	"capacita/internal/modules/auth/dto"
	authin "capacita/internal/modules/auth/port/in"
	authout "capacita/internal/modules/auth/port/out"
	"capacita/internal/modules/auth/service"
	"capacita/internal/platform/validate"
)

type Interactor struct {
	svc *service.AuthService
}

func NewInteractor(svc *service.AuthService) authin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return dto.SessionOutput{}, err
	}
	session, err := i.svc.Login(ctx, input.Email, input.Password)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.Register(ctx, input.Name, input.Email, input.Password)
}

func (i *Interactor) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (dto.ForgotPasswordOutput, error) {
	if err := validate.Struct(input); err != nil {
		return dto.ForgotPasswordOutput{}, err
	}
	token, err := i.svc.ForgotPassword(ctx, input.Email)
	if err != nil {
		return dto.ForgotPasswordOutput{}, err
	}
	return dto.ForgotPasswordOutput{ResetToken: token}, nil
}

func (i *Interactor) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.ResetPassword(ctx, input.Token, input.NewPassword)
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(session), nil
}

func (i *Interactor) Profile(ctx context.Context) (dto.ProfileOutput, error) {
	p, err := i.svc.Profile(ctx)
	if err != nil {
		return dto.ProfileOutput{}, err
	}
	return toProfileOutput(p), nil
}

func (i *Interactor) UpdateProfile(ctx context.Context, input dto.UpdateProfileInput) (dto.UpdateProfileOutput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	if err := validate.Struct(input); err != nil {
		return dto.UpdateProfileOutput{}, err
	}
	message, loggedOut, p, err := i.svc.UpdateProfile(ctx, authout.ProfileUpdate{
		Name:            input.Name,
		Email:           input.Email,
		NewPassword:     input.NewPassword,
		NewSecurityCode: input.NewSecurityCode,
	})
	if err != nil {
		return dto.UpdateProfileOutput{}, err
	}
	return dto.UpdateProfileOutput{Message: message, LoggedOut: loggedOut, Profile: toProfileOutput(p)}, nil
}

func (i *Interactor) DeleteProfile(ctx context.Context) error {
	return i.svc.DeleteProfile(ctx)
}

func toSessionOutput(s domain.Session) dto.SessionOutput {
	return dto.SessionOutput{LoggedIn: s.LoggedIn(), UserID: s.UserID, Role: s.Role, ExpiresAt: s.ExpiresAt}
}

func toProfileOutput(p domain.Profile) dto.ProfileOutput {
	return dto.ProfileOutput{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role}
}
