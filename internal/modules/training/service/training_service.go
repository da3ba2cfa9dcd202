package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"capacita/internal/modules/training/domain"
	trainingout "capacita/internal/modules/training/port/out"
	apperrors "capacita/internal/platform/errors"
)

type TrainingService struct {
	api    trainingout.TrainingAPI
	roles  trainingout.RoleProvider
	logger *zap.Logger
}

func NewTrainingService(api trainingout.TrainingAPI, roles trainingout.RoleProvider, logger *zap.Logger) *TrainingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TrainingService{api: api, roles: roles, logger: logger}
}

// Catalog fetches the grouped materials and applies the search filter.
func (s *TrainingService) Catalog(ctx context.Context, rawQuery string) (domain.Catalog, string, error) {
	query, err := domain.NormalizeQuery(rawQuery)
	if err != nil {
		return domain.Catalog{}, "", fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	grouped, err := s.api.Catalog(ctx)
	if err != nil {
		return domain.Catalog{}, "", fmt.Errorf("load materials: %w", err)
	}
	return domain.NewCatalog(grouped).Filter(query), query, nil
}

func (s *TrainingService) Get(ctx context.Context, id string) (domain.Material, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Material{}, fmt.Errorf("%w: material id is required", apperrors.ErrInvalidInput)
	}
	return s.api.Get(ctx, id)
}

func (s *TrainingService) Create(ctx context.Context, draft trainingout.Draft) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if !domain.Supports(draft.Type, draft.FileName) && !domain.Supports(draft.Type, draft.FileURL) {
		return fmt.Errorf("%w: file type does not match %s (%s)", apperrors.ErrInvalidInput, draft.Type, strings.Join(domain.SupportedFormats[draft.Type], ", "))
	}
	if err := s.api.Create(ctx, draft); err != nil {
		return err
	}
	s.logger.Info("material created", zap.String("title", draft.Title))
	return nil
}

// Update rejects a patch that leaves the material exactly as it is. Patch
// assets are replacements; nil keeps the current file.
func (s *TrainingService) Update(ctx context.Context, current domain.Material, patch trainingout.Patch) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if unchanged(current, patch) {
		return fmt.Errorf("%w: no changes to save", apperrors.ErrInvalidInput)
	}
	if err := s.api.Update(ctx, current.ID, patch); err != nil {
		return err
	}
	s.logger.Info("material updated", zap.String("id", current.ID))
	return nil
}

func (s *TrainingService) Delete(ctx context.Context, id string) error {
	if err := s.requireAdmin(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: material id is required", apperrors.ErrInvalidInput)
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("material deleted", zap.String("id", id))
	return nil
}

func (s *TrainingService) requireAdmin(ctx context.Context) error {
	admin, err := s.roles.Admin(ctx)
	if err != nil {
		return err
	}
	if !admin {
		return fmt.Errorf("%w: admin role required", apperrors.ErrForbidden)
	}
	return nil
}

func unchanged(m domain.Material, p trainingout.Patch) bool {
	if p.DeleteDocument || p.DeleteVideo || p.Document != nil || p.Video != nil {
		return false
	}
	return m.Title == p.Title &&
		m.Description == p.Description &&
		m.Section == p.Section &&
		m.Module == p.Module &&
		m.Submodule == p.Submodule &&
		slices.Equal(sortedCopy(m.Roles), sortedCopy(p.Roles))
}

func sortedCopy(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return out
}
