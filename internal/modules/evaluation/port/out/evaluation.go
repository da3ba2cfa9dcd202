package out

import (
	"context"
	"time"

	"capacita/internal/modules/evaluation/domain"
)

// RetryResult is the backend's answer to a retry request. Granted means the
// learner may re-enter; otherwise Remaining carries a cooldown when the
// backend sent one.
type RetryResult struct {
	Granted   bool
	Message   string
	Remaining time.Duration
}

type EvaluationAPI interface {
	// Status returns the latest attempt status; found is false on 404.
	Status(ctx context.Context) (status string, found bool, err error)
	RetryTime(ctx context.Context) (time.Time, bool, error)
	Retry(ctx context.Context) (RetryResult, error)
	Assigned(ctx context.Context) ([]domain.Question, error)
	Submit(ctx context.Context, userID string, answers []domain.Answer) (string, error)
}

type CompletionChecker interface {
	Completed(ctx context.Context) (bool, error)
}

type Learner struct {
	UserID string
	Admin  bool
}

type LearnerProvider interface {
	Learner(ctx context.Context) (Learner, error)
}
