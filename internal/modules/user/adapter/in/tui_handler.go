package in

import (
	"context"

	"capacita/internal/modules/user/dto"
	userin "capacita/internal/modules/user/port/in"
)

type TUIHandler struct {
	usecase userin.Usecase
}

func NewTUIHandler(usecase userin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Page(ctx context.Context, query string, page int) (dto.ListOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Query: query, Page: page})
}
