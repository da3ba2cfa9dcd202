package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"capacita/internal/modules/auth/domain"
	authout "capacita/internal/modules/auth/port/out"
	"capacita/internal/platform/clock"
	apperrors "capacita/internal/platform/errors"
)

const ProfileUpdatedMessage = "Usuario actualizado correctamente"

type AuthService struct {
	clock     clock.Clock
	api       authout.AuthAPI
	store     authout.SessionStore
	inspector authout.TokenInspector
	logger    *zap.Logger
}

func NewAuthService(clock clock.Clock, api authout.AuthAPI, store authout.SessionStore, inspector authout.TokenInspector, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{clock: clock, api: api, store: store, inspector: inspector, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	res, err := s.api.Login(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return domain.Session{}, fmt.Errorf("login: %w", err)
	}
	if res.Token == "" || res.UserID == "" {
		return domain.Session{}, fmt.Errorf("login: backend returned an incomplete session")
	}
	session := domain.Session{Token: res.Token, UserID: res.UserID, Role: res.Role}
	if exp, err := s.inspector.ExpiresAt(res.Token); err == nil {
		session.ExpiresAt = exp
	} else {
		s.logger.Debug("token expiry unreadable", zap.Error(err))
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	s.logger.Info("logged in", zap.String("user", session.UserID), zap.String("role", session.Role))
	return session, nil
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	return s.api.Register(ctx, strings.TrimSpace(name), strings.TrimSpace(email), password)
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return s.api.ForgotPassword(ctx, strings.TrimSpace(email))
}

func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	return s.api.ResetPassword(ctx, strings.TrimSpace(token), newPassword)
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// Current returns the stored session. A locally expired token is cleared
// and reported as ErrUnauthorized.
func (s *AuthService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.LoggedIn() {
		return domain.Session{}, apperrors.ErrNotLoggedIn
	}
	if session.ExpiresAt.IsZero() {
		if exp, err := s.inspector.ExpiresAt(session.Token); err == nil {
			session.ExpiresAt = exp
		}
	}
	if session.Expired(s.clock.Now()) {
		if err := s.store.Clear(ctx); err != nil {
			s.logger.Warn("clear expired session", zap.Error(err))
		}
		return domain.Session{}, apperrors.ErrUnauthorized
	}
	return session, nil
}

func (s *AuthService) Profile(ctx context.Context) (domain.Profile, error) {
	if _, err := s.Current(ctx); err != nil {
		return domain.Profile{}, err
	}
	return s.api.Profile(ctx)
}

// UpdateProfile sends trimmed fields and refuses a request that changes
// nothing. A password change ends the local session.
func (s *AuthService) UpdateProfile(ctx context.Context, update authout.ProfileUpdate) (string, bool, domain.Profile, error) {
	current, err := s.Profile(ctx)
	if err != nil {
		return "", false, domain.Profile{}, err
	}
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	if update.Name == strings.TrimSpace(current.Name) &&
		update.Email == strings.TrimSpace(current.Email) &&
		update.NewPassword == "" && update.NewSecurityCode == "" {
		return "", false, domain.Profile{}, fmt.Errorf("%w: no changes to save", apperrors.ErrInvalidInput)
	}
	message, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return "", false, domain.Profile{}, err
	}
	updated := domain.Profile{ID: current.ID, Name: update.Name, Email: update.Email, Role: current.Role}
	if update.NewPassword == "" {
		return message, false, updated, nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return message, false, updated, err
	}
	s.logger.Info("password changed, session cleared", zap.String("user", current.ID))
	return message, true, updated, nil
}

func (s *AuthService) DeleteProfile(ctx context.Context) error {
	if _, err := s.Current(ctx); err != nil {
		return err
	}
	if err := s.api.DeleteProfile(ctx); err != nil {
		return err
	}
	if err := s.store.Clear(ctx); err != nil && !errors.Is(err, apperrors.ErrNotLoggedIn) {
		return err
	}
	return nil
}
