package in

import (
	"context"

	"capacita/internal/modules/user/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) (dto.ListOutput, error)
	Get(ctx context.Context, id string) (dto.UserOutput, error)
	Update(ctx context.Context, input dto.UpdateUserInput) error
	Delete(ctx context.Context, id string) error
}
