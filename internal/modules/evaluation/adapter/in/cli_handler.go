package in

import (
	"context"

	"capacita/internal/modules/evaluation/dto"
	evaluationin "capacita/internal/modules/evaluation/port/in"
)

type CLIHandler struct {
	usecase evaluationin.Usecase
}

func NewCLIHandler(usecase evaluationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (dto.GateOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h CLIHandler) Retry(ctx context.Context) (dto.RetryOutput, error) {
	return h.usecase.Retry(ctx)
}

func (h CLIHandler) Questions(ctx context.Context) ([]dto.QuestionOutput, error) {
	return h.usecase.Questions(ctx)
}

func (h CLIHandler) Submit(ctx context.Context, answers map[string]string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{Answers: answers})
}
