package in

import (
	"context"

	"capacita/internal/modules/viewer/dto"
)

type Usecase interface {
	OpenMaterial(ctx context.Context, input dto.OpenMaterialInput) (dto.OpenResult, error)
	ReadPage(ctx context.Context, input dto.ReadPageInput) (dto.PageOutput, error)
	Playback(ctx context.Context, input dto.PlaybackInput) (dto.PlaybackOutput, error)
	Ended(ctx context.Context, materialID string) (dto.PlaybackOutput, error)
	Close(ctx context.Context) error
}
