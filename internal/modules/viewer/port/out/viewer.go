package out

import (
	"context"
	"time"

	"capacita/internal/modules/viewer/domain"
)

type MaterialResolver interface {
	Resolve(ctx context.Context, materialID string) (domain.Target, error)
}

// AssetFetcher makes a remote asset available as a local file.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type PDFReader interface {
	ReadPage(ctx context.Context, path string, page int) (domain.Page, int, error)
}

type DurationProbe interface {
	Duration(ctx context.Context, target string) (float64, error)
}

type ExternalLauncher interface {
	Open(ctx context.Context, target string) error
}

type DocumentTracking struct {
	Tracking bool
	Elapsed  time.Duration
	Percent  float64
}

type VideoTracking struct {
	Tracking     bool
	PriorPercent float64
	SeekTo       float64
}

type Delivery struct {
	Percent      float64
	Sent         bool
	SkipReason   string
	AllCompleted bool
}

// ProgressTracker is the progress module as seen from an open viewer.
type ProgressTracker interface {
	OpenDocument(ctx context.Context, materialID string) (DocumentTracking, error)
	OpenVideo(ctx context.Context, materialID string, duration float64) (VideoTracking, error)
	Position(ctx context.Context, materialID string, current, duration float64) (Delivery, error)
	Ended(ctx context.Context, materialID string) (Delivery, error)
	Close(ctx context.Context) error
}
