package in

import (
	"context"

	"capacita/internal/modules/training/dto"
	trainingin "capacita/internal/modules/training/port/in"
)

type CLIHandler struct {
	usecase trainingin.Usecase
}

func NewCLIHandler(usecase trainingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, query string) (dto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx, query)
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.MaterialOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Add(ctx context.Context, input dto.CreateMaterialInput) error {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Edit(ctx context.Context, input dto.UpdateMaterialInput) error {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
