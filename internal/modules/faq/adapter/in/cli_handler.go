package in

import (
	"context"

	"capacita/internal/modules/faq/dto"
	faqin "capacita/internal/modules/faq/port/in"
)

type CLIHandler struct {
	usecase faqin.Usecase
}

func NewCLIHandler(usecase faqin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, query string, page int) (dto.ListOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Query: query, Page: page})
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.FAQOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Add(ctx context.Context, input dto.CreateFAQInput) error {
	return h.usecase.Create(ctx, input)
}

func (h CLIHandler) Edit(ctx context.Context, input dto.UpdateFAQInput) error {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
