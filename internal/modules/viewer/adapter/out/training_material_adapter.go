package out

import (
	"context"

	trainingin "capacita/internal/modules/training/port/in"
	"capacita/internal/modules/viewer/domain"
	viewerout "capacita/internal/modules/viewer/port/out"
)

type TrainingMaterialAdapter struct {
	training trainingin.Usecase
}

func NewTrainingMaterialAdapter(training trainingin.Usecase) viewerout.MaterialResolver {
	return &TrainingMaterialAdapter{training: training}
}

func (a *TrainingMaterialAdapter) Resolve(ctx context.Context, materialID string) (domain.Target, error) {
	m, err := a.training.Get(ctx, materialID)
	if err != nil {
		return domain.Target{}, err
	}
	target := domain.Target{MaterialID: m.ID, Title: m.Title, Description: m.Description}
	if m.DocumentURL != "" {
		target.Document = &domain.Asset{URL: m.DocumentURL, FileName: m.DocumentName}
	}
	if m.VideoURL != "" {
		target.Video = &domain.Asset{URL: m.VideoURL, FileName: m.VideoName}
	}
	return target, nil
}
