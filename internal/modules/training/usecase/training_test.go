package usecase_test

import (
	"context"
	"errors"
	"testing"

	"capacita/internal/modules/training/domain"
	"capacita/internal/modules/training/dto"
	trainingin "capacita/internal/modules/training/port/in"
	trainingout "capacita/internal/modules/training/port/out"
	"capacita/internal/modules/training/service"
	"capacita/internal/modules/training/usecase"
	apperrors "capacita/internal/platform/errors"
)

type fakeTrainingAPI struct {
	grouped map[string]map[string][]domain.Material
	created []trainingout.Draft
	patches []trainingout.Patch
	deleted []string
}

func (f *fakeTrainingAPI) Catalog(context.Context) (map[string]map[string][]domain.Material, error) {
	return f.grouped, nil
}

func (f *fakeTrainingAPI) Get(_ context.Context, id string) (domain.Material, error) {
	for _, modules := range f.grouped {
		for _, materials := range modules {
			for _, m := range materials {
				if m.ID == id {
					return m, nil
				}
			}
		}
	}
	return domain.Material{}, apperrors.ErrNotFound
}

func (f *fakeTrainingAPI) Create(_ context.Context, d trainingout.Draft) error {
	f.created = append(f.created, d)
	return nil
}

func (f *fakeTrainingAPI) Update(_ context.Context, _ string, p trainingout.Patch) error {
	f.patches = append(f.patches, p)
	return nil
}

func (f *fakeTrainingAPI) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRoles struct{ admin bool }

func (f fakeRoles) Admin(context.Context) (bool, error) { return f.admin, nil }

func newUsecase(admin bool) (trainingin.Usecase, *fakeTrainingAPI) {
	api := &fakeTrainingAPI{grouped: map[string]map[string][]domain.Material{
		"Ventas": {"Cierre": {{
			ID:          "m-1",
			Title:       "Manejo de objeciones",
			Description: "Cómo responder a objeciones comunes",
			Section:     "Ventas",
			Module:      "Cierre",
			Roles:       []string{"asesor"},
			Document:    &domain.Asset{URL: "https://cdn.example/objeciones.pdf", FileName: "objeciones"},
		}}},
	}}
	return usecase.NewInteractor(service.NewTrainingService(api, fakeRoles{admin: admin}, nil)), api
}

func TestCatalogSearch(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(false)
	ctx := context.Background()

	all, err := uc.Catalog(ctx, "")
	if err != nil || all.Total != 1 || all.Sections[0].Modules[0].Materials[0].DocumentURL == "" {
		t.Fatalf("catalog: %+v %v", all, err)
	}
	if _, err := uc.Catalog(ctx, "ob"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("short query should be invalid, got %v", err)
	}
	miss, err := uc.Catalog(ctx, "inexistente")
	if err != nil || miss.Total != 0 {
		t.Fatalf("expected no matches: %+v %v", miss, err)
	}
	hit, err := uc.Catalog(ctx, "  OBJECIONES  ")
	if err != nil || hit.Total != 1 || hit.Query != "OBJECIONES" {
		t.Fatalf("expected one match: %+v %v", hit, err)
	}
}

func validDraft() dto.CreateMaterialInput {
	return dto.CreateMaterialInput{
		Title:       "Producto nuevo",
		Description: "Presentación del producto nuevo",
		Section:     "Ventas",
		Roles:       []string{"asesor", "gerente_zona"},
		Type:        domain.TypeVideo,
		FileURL:     "https://cdn.example/producto.mp4",
		FileName:    "producto",
	}
}

func TestCreateRequiresAdminAndValidInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	learner, _ := newUsecase(false)
	if err := learner.Create(ctx, validDraft()); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}

	admin, api := newUsecase(true)
	if err := admin.Create(ctx, validDraft()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(api.created) != 1 || api.created[0].Type != domain.TypeVideo {
		t.Fatalf("unexpected drafts: %+v", api.created)
	}

	bad := []func(*dto.CreateMaterialInput){
		func(d *dto.CreateMaterialInput) { d.Title = "Hola" },
		func(d *dto.CreateMaterialInput) { d.Description = "corta" },
		func(d *dto.CreateMaterialInput) { d.Module = "ab" },
		func(d *dto.CreateMaterialInput) { d.Roles = nil },
		func(d *dto.CreateMaterialInput) { d.Roles = []string{"admin"} },
		func(d *dto.CreateMaterialInput) { d.Type = "audio" },
		func(d *dto.CreateMaterialInput) { d.FileURL = "https://cdn.example/producto.pdf" },
	}
	for i, mutate := range bad {
		d := validDraft()
		mutate(&d)
		if err := admin.Create(ctx, d); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestUpdateMergesAndRejectsNoChange(t *testing.T) {
	t.Parallel()
	uc, api := newUsecase(true)
	ctx := context.Background()

	if err := uc.Update(ctx, dto.UpdateMaterialInput{ID: "m-1", Title: "Manejo de objeciones"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("same values should be rejected, got %v", err)
	}
	if err := uc.Update(ctx, dto.UpdateMaterialInput{ID: "m-1", Section: "Cobranza"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p := api.patches[0]
	if p.Section != "Cobranza" || p.Title != "Manejo de objeciones" || p.Document != nil {
		t.Fatalf("unexpected patch: %+v", p)
	}
	if err := uc.Update(ctx, dto.UpdateMaterialInput{ID: "m-1", Type: domain.TypeVideo, FileURL: "https://cdn.example/v.mp4", FileName: "v"}); err != nil {
		t.Fatalf("replace video: %v", err)
	}
	if api.patches[1].Video == nil || api.patches[1].Video.URL != "https://cdn.example/v.mp4" {
		t.Fatalf("expected video replacement: %+v", api.patches[1])
	}
	if err := uc.Update(ctx, dto.UpdateMaterialInput{ID: "m-1", Type: domain.TypeVideo, FileURL: "https://cdn.example/v.mp4"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("partial file replacement should be invalid, got %v", err)
	}
	if err := uc.Update(ctx, dto.UpdateMaterialInput{ID: "m-404", Title: "Otro título"}); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteRequiresAdmin(t *testing.T) {
	t.Parallel()
	learner, api := newUsecase(false)
	if err := learner.Delete(context.Background(), "m-1"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if len(api.deleted) != 0 {
		t.Fatalf("nothing should be deleted")
	}
	admin, api := newUsecase(true)
	if err := admin.Delete(context.Background(), "m-1"); err != nil || len(api.deleted) != 1 {
		t.Fatalf("delete: %v %v", api.deleted, err)
	}
}
