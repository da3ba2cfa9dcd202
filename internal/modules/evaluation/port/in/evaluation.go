package in

import (
	"context"

	"capacita/internal/modules/evaluation/dto"
)

type Usecase interface {
	// Status returns the last known gate without calling the backend.
	Status(ctx context.Context) dto.GateOutput
	Refresh(ctx context.Context) (dto.GateOutput, error)
	Begin(ctx context.Context) (dto.GateOutput, error)
	Retry(ctx context.Context) (dto.RetryOutput, error)
	Questions(ctx context.Context) ([]dto.QuestionOutput, error)
	Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error)
	Shutdown()
}
