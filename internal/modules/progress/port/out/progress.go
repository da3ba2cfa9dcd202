package out

import (
	"context"

	"capacita/internal/modules/progress/domain"
)

type SubmitResult struct {
	Message       string
	TotalProgress float64
}

// ProgressAPI is the backend surface used by the trackers.
type ProgressAPI interface {
	Start(ctx context.Context, materialID string, kind domain.Kind) error
	Submit(ctx context.Context, materialID string, kind domain.Kind, pct float64) (SubmitResult, error)
	Completed(ctx context.Context, userID string) (bool, error)
	View(ctx context.Context, userID string) ([]domain.Record, error)
	AllProgress(ctx context.Context) ([]domain.UserProgress, error)
	AllCompleted(ctx context.Context) ([]string, error)
}

// KeyValueStore holds dwell elapsed seconds per material.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type IdentityProvider interface {
	Identity(ctx context.Context) (domain.Identity, error)
}

type Notifier interface {
	Notify(notice domain.Notice)
}

type ReportStore interface {
	Save(ctx context.Context, report domain.Report, userLabel string) (string, error)
}
