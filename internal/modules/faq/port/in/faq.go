package in

import (
	"context"

	"capacita/internal/modules/faq/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) (dto.ListOutput, error)
	Get(ctx context.Context, id string) (dto.FAQOutput, error)
	Create(ctx context.Context, input dto.CreateFAQInput) error
	Update(ctx context.Context, input dto.UpdateFAQInput) error
	Delete(ctx context.Context, id string) error
}
