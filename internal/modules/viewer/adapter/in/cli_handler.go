package in

import (
	"context"

	"capacita/internal/modules/viewer/dto"
	viewerin "capacita/internal/modules/viewer/port/in"
)

type CLIHandler struct {
	usecase viewerin.Usecase
}

func NewCLIHandler(usecase viewerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) OpenDocument(ctx context.Context, materialID string, page int, external bool) (dto.OpenResult, error) {
	return h.usecase.OpenMaterial(ctx, dto.OpenMaterialInput{MaterialID: materialID, Mode: "document", Page: page, LaunchExternal: external})
}

func (h CLIHandler) OpenVideo(ctx context.Context, materialID string, duration float64, external bool) (dto.OpenResult, error) {
	return h.usecase.OpenMaterial(ctx, dto.OpenMaterialInput{MaterialID: materialID, Mode: "video", Duration: duration, LaunchExternal: external})
}

func (h CLIHandler) Playback(ctx context.Context, materialID string, current, duration float64) (dto.PlaybackOutput, error) {
	return h.usecase.Playback(ctx, dto.PlaybackInput{MaterialID: materialID, CurrentTime: current, Duration: duration})
}

func (h CLIHandler) Ended(ctx context.Context, materialID string) (dto.PlaybackOutput, error) {
	return h.usecase.Ended(ctx, materialID)
}

func (h CLIHandler) Close(ctx context.Context) error {
	return h.usecase.Close(ctx)
}
