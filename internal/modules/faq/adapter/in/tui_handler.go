package in

import (
	"context"

	"capacita/internal/modules/faq/dto"
	faqin "capacita/internal/modules/faq/port/in"
)

type TUIHandler struct {
	usecase faqin.Usecase
}

func NewTUIHandler(usecase faqin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Page(ctx context.Context, query string, page int) (dto.ListOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Query: query, Page: page})
}
