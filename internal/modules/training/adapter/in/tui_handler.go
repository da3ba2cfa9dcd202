package in

import (
	"context"

	"capacita/internal/modules/training/dto"
	trainingin "capacita/internal/modules/training/port/in"
)

type TUIHandler struct {
	usecase trainingin.Usecase
}

func NewTUIHandler(usecase trainingin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Catalog(ctx context.Context, query string) (dto.CatalogOutput, error) {
	return h.usecase.Catalog(ctx, query)
}
