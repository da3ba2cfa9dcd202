package usecase

import (
	"context"
	"fmt"
	"strings"

	"capacita/internal/modules/training/domain"
	"capacita/internal/modules/training/dto"
	trainingin "capacita/internal/modules/training/port/in"
	trainingout "capacita/internal/modules/training/port/out"
	"capacita/internal/modules/training/service"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/validate"
)

type Interactor struct {
	svc *service.TrainingService
}

func NewInteractor(svc *service.TrainingService) trainingin.Usecase {
	return &Interactor{svc: svc}
}

// fields carries the merged values of an edit for validation.
type fields struct {
	Title       string   `validate:"required,min=5,max=100"`
	Description string   `validate:"required,min=10,max=500"`
	Section     string   `validate:"required,min=3,max=50"`
	Module      string   `validate:"omitempty,min=3,max=50"`
	Submodule   string   `validate:"omitempty,min=3,max=50"`
	Roles       []string `validate:"min=1,dive,oneof=asesor asesorJR gerente_sucursal gerente_zona"`
}

func (i *Interactor) Catalog(ctx context.Context, query string) (dto.CatalogOutput, error) {
	catalog, normalized, err := i.svc.Catalog(ctx, query)
	if err != nil {
		return dto.CatalogOutput{}, err
	}
	out := dto.CatalogOutput{Query: normalized}
	for _, s := range catalog.Sections {
		section := dto.SectionOutput{Name: s.Name}
		for _, m := range s.Modules {
			module := dto.ModuleOutput{Name: m.Name}
			for _, mat := range m.Materials {
				module.Materials = append(module.Materials, toMaterialOutput(mat))
				out.Total++
			}
			section.Modules = append(section.Modules, module)
		}
		out.Sections = append(out.Sections, section)
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.MaterialOutput, error) {
	m, err := i.svc.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.MaterialOutput{}, err
	}
	return toMaterialOutput(m), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateMaterialInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Section = strings.TrimSpace(input.Section)
	input.Module = strings.TrimSpace(input.Module)
	input.Submodule = strings.TrimSpace(input.Submodule)
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.Create(ctx, trainingout.Draft{
		Title:       input.Title,
		Description: input.Description,
		Section:     input.Section,
		Module:      input.Module,
		Submodule:   input.Submodule,
		Roles:       input.Roles,
		Type:        input.Type,
		FileURL:     input.FileURL,
		FileName:    input.FileName,
	})
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateMaterialInput) error {
	current, err := i.svc.Get(ctx, strings.TrimSpace(input.ID))
	if err != nil {
		return err
	}
	merged := fields{
		Title:       pick(input.Title, current.Title),
		Description: pick(input.Description, current.Description),
		Section:     pick(input.Section, current.Section),
		Module:      pick(input.Module, current.Module),
		Submodule:   pick(input.Submodule, current.Submodule),
		Roles:       current.Roles,
	}
	if len(input.Roles) > 0 {
		merged.Roles = input.Roles
	}
	if err := validate.Struct(merged); err != nil {
		return err
	}
	patch := trainingout.Patch{
		Title:          merged.Title,
		Description:    merged.Description,
		Section:        merged.Section,
		Module:         merged.Module,
		Submodule:      merged.Submodule,
		Roles:          merged.Roles,
		DeleteDocument: input.DeleteDocument,
		DeleteVideo:    input.DeleteVideo,
	}
	if input.Type != "" || input.FileURL != "" || input.FileName != "" {
		asset, err := newAsset(input)
		if err != nil {
			return err
		}
		if input.Type == domain.TypeVideo {
			patch.Video, patch.DeleteVideo = asset, false
		} else {
			patch.Document, patch.DeleteDocument = asset, false
		}
	}
	return i.svc.Update(ctx, current, patch)
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, strings.TrimSpace(id))
}

func newAsset(input dto.UpdateMaterialInput) (*domain.Asset, error) {
	if input.Type == "" || input.FileURL == "" || input.FileName == "" {
		return nil, fmt.Errorf("%w: replacing a file needs type, url and file name", apperrors.ErrInvalidInput)
	}
	if _, ok := domain.SupportedFormats[input.Type]; !ok {
		return nil, fmt.Errorf("%w: type must be document or video", apperrors.ErrInvalidInput)
	}
	if !domain.Supports(input.Type, input.FileName) && !domain.Supports(input.Type, input.FileURL) {
		return nil, fmt.Errorf("%w: file type does not match %s", apperrors.ErrInvalidInput, input.Type)
	}
	return &domain.Asset{URL: input.FileURL, FileName: input.FileName}, nil
}

func pick(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func toMaterialOutput(m domain.Material) dto.MaterialOutput {
	out := dto.MaterialOutput{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Section:     m.Section,
		Module:      m.Module,
		Submodule:   m.Submodule,
		Roles:       m.Roles,
	}
	if m.HasDocument() {
		out.DocumentURL, out.DocumentName = m.Document.URL, m.Document.FileName
	}
	if m.HasVideo() {
		out.VideoURL, out.VideoName = m.Video.URL, m.Video.FileName
	}
	return out
}
