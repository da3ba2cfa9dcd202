package in

import (
	"context"

	"capacita/internal/modules/progress/dto"
	progressin "capacita/internal/modules/progress/port/in"
)

type TUIHandler struct {
	usecase progressin.Usecase
}

func NewTUIHandler(usecase progressin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Status(ctx context.Context) dto.TrackerStatus {
	return h.usecase.Status(ctx)
}

func (h TUIHandler) View(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.View(ctx)
}

func (h TUIHandler) Completed(ctx context.Context) (bool, error) {
	return h.usecase.Completed(ctx)
}
