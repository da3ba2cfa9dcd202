package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"capacita/internal/modules/user/domain"
	userout "capacita/internal/modules/user/port/out"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/listing"
)

// UserService backs the admin user table. Every operation requires the
// admin role.
type UserService struct {
	api    userout.UserAPI
	roles  userout.RoleProvider
	logger *zap.Logger
}

func NewUserService(api userout.UserAPI, roles userout.RoleProvider, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{api: api, roles: roles, logger: logger}
}

func (s *UserService) List(ctx context.Context, rawQuery string, page int) (listing.Window[domain.User], string, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return listing.Window[domain.User]{}, "", err
	}
	query, err := listing.NormalizeQuery(rawQuery)
	if err != nil {
		return listing.Window[domain.User]{}, "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	users, err := s.api.List(ctx)
	if err != nil {
		return listing.Window[domain.User]{}, "", fmt.Errorf("load users: %w", err)
	}
	return listing.Paginate(domain.Filter(users, query), page, listing.PageSize), query, nil
}

func (s *UserService) Get(ctx context.Context, id string) (domain.User, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return domain.User{}, err
	}
	if id == "" {
		return domain.User{}, fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	return s.api.Get(ctx, id)
}

func (s *UserService) Update(ctx context.Context, current, next domain.User) error {
	if current.Name == next.Name && current.Email == next.Email && current.Role == next.Role {
		return fmt.Errorf("%w: no changes to save", apperrors.ErrInvalidInput)
	}
	next.ID = current.ID
	if err := s.api.Update(ctx, next); err != nil {
		return err
	}
	s.logger.Info("user updated", zap.String("id", current.ID), zap.String("role", next.Role))
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return fmt.Errorf("%w: user id is required", apperrors.ErrInvalidInput)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("id", id))
	return nil
}

func (s *UserService) requireAdmin(ctx context.Context) error {
	admin, err := s.roles.Admin(ctx)
	if err != nil {
		return err
	}
	if !admin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}
