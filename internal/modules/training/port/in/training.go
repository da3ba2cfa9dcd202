package in

import (
	"context"

	"capacita/internal/modules/training/dto"
)

type Usecase interface {
	Catalog(ctx context.Context, query string) (dto.CatalogOutput, error)
	Get(ctx context.Context, id string) (dto.MaterialOutput, error)
	Create(ctx context.Context, input dto.CreateMaterialInput) error
	Update(ctx context.Context, input dto.UpdateMaterialInput) error
	Delete(ctx context.Context, id string) error
}
