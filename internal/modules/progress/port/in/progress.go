package in

import (
	"context"

	"capacita/internal/modules/progress/dto"
)

type Usecase interface {
	OpenDocument(ctx context.Context, input dto.OpenDocumentInput) (dto.DocumentSession, error)
	OpenVideo(ctx context.Context, input dto.OpenVideoInput) (dto.VideoSession, error)
	VideoTimeUpdate(ctx context.Context, input dto.TimeUpdateInput) (dto.SubmitOutput, error)
	VideoEnded(ctx context.Context, materialID string) (dto.SubmitOutput, error)
	CloseViewer(ctx context.Context) error
	Status(ctx context.Context) dto.TrackerStatus
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	View(ctx context.Context) ([]dto.RecordOutput, error)
	Completed(ctx context.Context) (bool, error)
	AllProgress(ctx context.Context) ([]dto.UserProgressOutput, error)
	WriteReport(ctx context.Context, userLabel string) (dto.ReportOutput, error)
}
