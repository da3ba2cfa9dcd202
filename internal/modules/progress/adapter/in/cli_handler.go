package in

import (
	"context"

	"capacita/internal/modules/progress/dto"
	progressin "capacita/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Submit(ctx context.Context, materialID, kind string, percent float64) (dto.SubmitOutput, error) {
	return h.usecase.Submit(ctx, dto.SubmitInput{MaterialID: materialID, Kind: kind, Percent: percent})
}

func (h CLIHandler) View(ctx context.Context) ([]dto.RecordOutput, error) {
	return h.usecase.View(ctx)
}

func (h CLIHandler) Completed(ctx context.Context) (bool, error) {
	return h.usecase.Completed(ctx)
}

func (h CLIHandler) AllProgress(ctx context.Context) ([]dto.UserProgressOutput, error) {
	return h.usecase.AllProgress(ctx)
}

func (h CLIHandler) WriteReport(ctx context.Context, userLabel string) (dto.ReportOutput, error) {
	return h.usecase.WriteReport(ctx, userLabel)
}

func (h CLIHandler) Status(ctx context.Context) dto.TrackerStatus {
	return h.usecase.Status(ctx)
}
