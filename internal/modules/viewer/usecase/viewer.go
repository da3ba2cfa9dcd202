package usecase

import (
	"context"

	"capacita/internal/modules/viewer/domain"
	"capacita/internal/modules/viewer/dto"
	viewerin "capacita/internal/modules/viewer/port/in"
	viewerout "capacita/internal/modules/viewer/port/out"
	"capacita/internal/modules/viewer/service"
)

type Interactor struct {
	svc *service.ViewerService
}

func NewInteractor(svc *service.ViewerService) viewerin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) OpenMaterial(ctx context.Context, input dto.OpenMaterialInput) (dto.OpenResult, error) {
	opened, err := i.svc.OpenMaterial(ctx, input.MaterialID, input.Mode, input.Page, input.Duration, input.LaunchExternal)
	if err != nil {
		return dto.OpenResult{}, err
	}
	result := dto.OpenResult{
		MaterialID:       opened.Target.MaterialID,
		Title:            opened.Target.Title,
		Mode:             opened.Mode,
		Page:             opened.Page.Number,
		TotalPage:        opened.Total,
		Content:          opened.Content,
		ExternalTarget:   opened.External,
		ExternalLaunched: opened.Launched,
		Duration:         opened.Duration,
	}
	if opened.Mode == domain.ModeVideo {
		result.Tracking = opened.Video.Tracking
		result.Percent = opened.Video.PriorPercent
		result.SeekTo = opened.Video.SeekTo
	} else {
		result.Tracking = opened.Document.Tracking
		result.Elapsed = opened.Document.Elapsed
		result.Percent = opened.Document.Percent
	}
	return result, nil
}

func (i *Interactor) ReadPage(ctx context.Context, input dto.ReadPageInput) (dto.PageOutput, error) {
	page, total, err := i.svc.ReadPage(ctx, input.MaterialID, input.Page)
	if err != nil {
		return dto.PageOutput{}, err
	}
	return dto.PageOutput{Page: page.Number, TotalPage: total, Text: page.Text}, nil
}

func (i *Interactor) Playback(ctx context.Context, input dto.PlaybackInput) (dto.PlaybackOutput, error) {
	d, err := i.svc.Playback(ctx, input.MaterialID, input.CurrentTime, input.Duration)
	return toPlaybackOutput(d), err
}

func (i *Interactor) Ended(ctx context.Context, materialID string) (dto.PlaybackOutput, error) {
	d, err := i.svc.Ended(ctx, materialID)
	return toPlaybackOutput(d), err
}

func (i *Interactor) Close(ctx context.Context) error {
	return i.svc.Close(ctx)
}

func toPlaybackOutput(d viewerout.Delivery) dto.PlaybackOutput {
	return dto.PlaybackOutput{Percent: d.Percent, Sent: d.Sent, SkipReason: d.SkipReason, AllCompleted: d.AllCompleted}
}
