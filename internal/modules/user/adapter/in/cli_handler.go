package in

import (
	"context"

	"capacita/internal/modules/user/dto"
	userin "capacita/internal/modules/user/port/in"
)

type CLIHandler struct {
	usecase userin.Usecase
}

func NewCLIHandler(usecase userin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, query string, page int) (dto.ListOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{Query: query, Page: page})
}

func (h CLIHandler) Show(ctx context.Context, id string) (dto.UserOutput, error) {
	return h.usecase.Get(ctx, id)
}

func (h CLIHandler) Edit(ctx context.Context, input dto.UpdateUserInput) error {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
