package in

import (
	"context"

	"capacita/internal/modules/evaluation/dto"
	evaluationin "capacita/internal/modules/evaluation/port/in"
)

type TUIHandler struct {
	usecase evaluationin.Usecase
}

func NewTUIHandler(usecase evaluationin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Status(ctx context.Context) dto.GateOutput {
	return h.usecase.Status(ctx)
}

func (h TUIHandler) Refresh(ctx context.Context) (dto.GateOutput, error) {
	return h.usecase.Refresh(ctx)
}

func (h TUIHandler) Retry(ctx context.Context) (dto.RetryOutput, error) {
	return h.usecase.Retry(ctx)
}

func (h TUIHandler) Questions(ctx context.Context) ([]dto.QuestionOutput, error) {
	return h.usecase.Questions(ctx)
}

func (h TUIHandler) Submit(ctx context.Context, answers map[string]string) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{Answers: answers})
}

func (h TUIHandler) Shutdown() {
	h.usecase.Shutdown()
}
