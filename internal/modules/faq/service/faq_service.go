package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"capacita/internal/modules/faq/domain"
	faqout "capacita/internal/modules/faq/port/out"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/listing"
)

type FAQService struct {
	api    faqout.FAQAPI
	roles  faqout.RoleProvider
	logger *zap.Logger
}

func NewFAQService(api faqout.FAQAPI, roles faqout.RoleProvider, logger *zap.Logger) *FAQService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FAQService{api: api, roles: roles, logger: logger}
}

// List returns one page of the entries matching rawQuery. The page is
// clamped to the last page of the filtered result.
func (s *FAQService) List(ctx context.Context, rawQuery string, page int) (listing.Window[domain.FAQ], string, error) {
	query, err := listing.NormalizeQuery(rawQuery)
	if err != nil {
		return listing.Window[domain.FAQ]{}, "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	faqs, err := s.api.List(ctx)
	if err != nil {
		return listing.Window[domain.FAQ]{}, "", fmt.Errorf("load faqs: %w", err)
	}
	return listing.Paginate(domain.Filter(faqs, query), page, listing.PageSize), query, nil
}

func (s *FAQService) Get(ctx context.Context, id string) (domain.FAQ, error) {
	if id == "" {
		return domain.FAQ{}, fmt.Errorf("%w: faq id is required", apperrors.ErrInvalidInput)
	}
	return s.api.Get(ctx, id)
}

func (s *FAQService) Create(ctx context.Context, faq domain.FAQ) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if err := s.api.Create(ctx, faq); err != nil {
		return err
	}
	s.logger.Info("faq created", zap.String("question", faq.Question))
	return nil
}

func (s *FAQService) Update(ctx context.Context, current, next domain.FAQ) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if current.Question == next.Question && current.Answer == next.Answer && slices.Equal(current.Roles, next.Roles) {
		return fmt.Errorf("%w: no changes to save", apperrors.ErrInvalidInput)
	}
	next.ID = current.ID
	if err := s.api.Update(ctx, next); err != nil {
		return err
	}
	s.logger.Info("faq updated", zap.String("id", current.ID))
	return nil
}

func (s *FAQService) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: faq id is required", apperrors.ErrInvalidInput)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("faq deleted", zap.String("id", id))
	return nil
}

func (s *FAQService) requireAdmin(ctx context.Context) error {
	admin, err := s.roles.Admin(ctx)
	if err != nil {
		return err
	}
	if !admin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}
