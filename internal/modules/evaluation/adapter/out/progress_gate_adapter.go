package out

import (
	"context"

	evaluationout "capacita/internal/modules/evaluation/port/out"
	progressin "capacita/internal/modules/progress/port/in"
)

// ProgressGateAdapter reads the completion gate from the progress module.
type ProgressGateAdapter struct {
	progress progressin.Usecase
}

func NewProgressGateAdapter(progress progressin.Usecase) evaluationout.CompletionChecker {
	return &ProgressGateAdapter{progress: progress}
}

func (a *ProgressGateAdapter) Completed(ctx context.Context) (bool, error) {
	return a.progress.Completed(ctx)
}
