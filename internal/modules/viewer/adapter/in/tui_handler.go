package in

import (
	"context"

	"capacita/internal/modules/viewer/dto"
	viewerin "capacita/internal/modules/viewer/port/in"
)

type TUIHandler struct {
	usecase viewerin.Usecase
}

func NewTUIHandler(usecase viewerin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Open(ctx context.Context, materialID, mode string, page int) (dto.OpenResult, error) {
	return h.usecase.OpenMaterial(ctx, dto.OpenMaterialInput{MaterialID: materialID, Mode: mode, Page: page})
}

func (h TUIHandler) Launch(ctx context.Context, materialID, mode string) (dto.OpenResult, error) {
	return h.usecase.OpenMaterial(ctx, dto.OpenMaterialInput{MaterialID: materialID, Mode: mode, LaunchExternal: true})
}

func (h TUIHandler) ReadPage(ctx context.Context, materialID string, page int) (dto.PageOutput, error) {
	return h.usecase.ReadPage(ctx, dto.ReadPageInput{MaterialID: materialID, Page: page})
}

func (h TUIHandler) Close(ctx context.Context) error {
	return h.usecase.Close(ctx)
}
