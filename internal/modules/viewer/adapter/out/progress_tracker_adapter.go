package out

import (
	"context"

	progressdto "capacita/internal/modules/progress/dto"
	progressin "capacita/internal/modules/progress/port/in"
	viewerout "capacita/internal/modules/viewer/port/out"
)

type ProgressTrackerAdapter struct {
	progress progressin.Usecase
}

func NewProgressTrackerAdapter(progress progressin.Usecase) viewerout.ProgressTracker {
	return &ProgressTrackerAdapter{progress: progress}
}

func (a *ProgressTrackerAdapter) OpenDocument(ctx context.Context, materialID string) (viewerout.DocumentTracking, error) {
	s, err := a.progress.OpenDocument(ctx, progressdto.OpenDocumentInput{MaterialID: materialID})
	if err != nil {
		return viewerout.DocumentTracking{}, err
	}
	return viewerout.DocumentTracking{Tracking: s.Tracking, Elapsed: s.Elapsed, Percent: s.Percent}, nil
}

func (a *ProgressTrackerAdapter) OpenVideo(ctx context.Context, materialID string, duration float64) (viewerout.VideoTracking, error) {
	s, err := a.progress.OpenVideo(ctx, progressdto.OpenVideoInput{MaterialID: materialID, Duration: duration})
	if err != nil {
		return viewerout.VideoTracking{}, err
	}
	return viewerout.VideoTracking{Tracking: s.Tracking, PriorPercent: s.PriorPercent, SeekTo: s.SeekTo}, nil
}

func (a *ProgressTrackerAdapter) Position(ctx context.Context, materialID string, current, duration float64) (viewerout.Delivery, error) {
	out, err := a.progress.VideoTimeUpdate(ctx, progressdto.TimeUpdateInput{MaterialID: materialID, CurrentTime: current, Duration: duration})
	return toDelivery(out), err
}

func (a *ProgressTrackerAdapter) Ended(ctx context.Context, materialID string) (viewerout.Delivery, error) {
	out, err := a.progress.VideoEnded(ctx, materialID)
	return toDelivery(out), err
}

func (a *ProgressTrackerAdapter) Close(ctx context.Context) error {
	return a.progress.CloseViewer(ctx)
}

func toDelivery(out progressdto.SubmitOutput) viewerout.Delivery {
	return viewerout.Delivery{Percent: out.Percent, Sent: out.Sent, SkipReason: out.SkipReason, AllCompleted: out.AllCompleted}
}
