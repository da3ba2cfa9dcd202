package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"capacita/internal/modules/evaluation/domain"
	evaluationout "capacita/internal/modules/evaluation/port/out"
	"capacita/internal/platform/clock"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/schedule"
)

const (
	MessagePassed = "Congratulations! You passed the evaluation."
	MessageFailed = "You did not pass the evaluation. Try again later."
)

type SubmitResult struct {
	Passed bool
	Status string
}

// GateService holds the evaluation gate and the local retry countdown. The
// countdown only disables retry on this side; every retry still goes to the
// backend.
type GateService struct {
	api        evaluationout.EvaluationAPI
	completion evaluationout.CompletionChecker
	learner    evaluationout.LearnerProvider
	scheduler  schedule.Scheduler
	clock      clock.Clock
	logger     *zap.Logger

	mu         sync.Mutex
	gate       domain.Gate
	loaded     bool
	generation uint64
	countdown  schedule.Handle
	questions  []domain.Question
}

func NewGateService(api evaluationout.EvaluationAPI, completion evaluationout.CompletionChecker, learner evaluationout.LearnerProvider, scheduler schedule.Scheduler, clk clock.Clock, logger *zap.Logger) *GateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GateService{
		api:        api,
		completion: completion,
		learner:    learner,
		scheduler:  scheduler,
		clock:      clk,
		logger:     logger,
		gate:       domain.Gate{State: domain.StateNotStarted},
	}
}

func (s *GateService) Gate() domain.Gate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gate
}

func (s *GateService) Refresh(ctx context.Context) (domain.Gate, error) {
	learner, err := s.learner.Learner(ctx)
	if err != nil {
		return domain.Gate{}, err
	}
	if learner.Admin {
		return domain.Gate{}, fmt.Errorf("%w: evaluations are for learner accounts", apperrors.ErrForbidden)
	}
	completed, err := s.completion.Completed(ctx)
	if err != nil {
		return domain.Gate{}, fmt.Errorf("check completion: %w", err)
	}
	status, _, err := s.api.Status(ctx)
	if err != nil {
		return domain.Gate{}, fmt.Errorf("evaluation status: %w", err)
	}
	derived := domain.Derive(completed, status)

	var remaining time.Duration
	if derived.State == domain.StateFailed {
		until, ok, err := s.api.RetryTime(ctx)
		switch {
		case err != nil:
			s.logger.Warn("retry time lookup failed", zap.Error(err))
		case ok:
			remaining = until.Sub(s.clock.Now())
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.gate
	switch {
	case current.State == domain.StateInProgress && (derived.State == domain.StateReady || derived.State == domain.StateFailed):
		derived = current
	case current.State == domain.StateFailed && derived.State == domain.StateFailed:
		derived = current
	}
	s.setLocked(derived)
	s.loaded = true
	// A future retry time also lifts an earlier lock: the backend has
	// scheduled the next attempt.
	if secs := domain.CooldownSeconds(remaining); secs > 0 && (s.gate.RetryLocked || secs > s.gate.Cooldown) {
		s.gate.RetryLocked = false
		s.armLocked(secs, s.gate.Message)
	}
	s.logger.Debug("evaluation gate refreshed",
		zap.String("state", string(s.gate.State)),
		zap.Int("cooldown", s.gate.Cooldown),
	)
	return s.gate, nil
}

func (s *GateService) Begin(ctx context.Context) (domain.Gate, error) {
	if err := s.ensure(ctx); err != nil {
		return domain.Gate{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.gate.Begin()
	if err != nil {
		return s.gate, fmt.Errorf("%w: %v", apperrors.ErrGateLocked, err)
	}
	s.gate = next
	return s.gate, nil
}

// Retry asks the backend for another attempt. It is refused locally while a
// countdown runs or after the backend locked retries.
func (s *GateService) Retry(ctx context.Context) (domain.Gate, evaluationout.RetryResult, error) {
	if err := s.ensure(ctx); err != nil {
		return domain.Gate{}, evaluationout.RetryResult{}, err
	}
	current := s.Gate()
	switch {
	case current.State != domain.StateFailed:
		return current, evaluationout.RetryResult{}, fmt.Errorf("%w: no failed evaluation to retry", apperrors.ErrInvalidInput)
	case current.RetryLocked:
		return current, evaluationout.RetryResult{}, fmt.Errorf("%w: %s", apperrors.ErrRetryLocked, current.Message)
	case current.Cooldown > 0:
		return current, evaluationout.RetryResult{}, fmt.Errorf("%w: retry available in %s", apperrors.ErrRetryCooldown, domain.FormatCountdown(current.Cooldown))
	}

	res, err := s.api.Retry(ctx)
	if err != nil {
		return current, evaluationout.RetryResult{}, fmt.Errorf("retry evaluation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch secs := domain.CooldownSeconds(res.Remaining); {
	case res.Granted:
		s.stopLocked()
		granted, err := s.gate.Grant(res.Message)
		if err != nil {
			granted = domain.Gate{State: domain.StateInProgress, Message: res.Message}
		}
		s.gate = granted
		s.questions = nil
	case secs > 0:
		s.armLocked(secs, res.Message)
	default:
		s.stopLocked()
		s.gate = s.gate.LockRetry(res.Message)
	}
	s.logger.Info("evaluation retry",
		zap.Bool("granted", res.Granted),
		zap.Int("cooldown", s.gate.Cooldown),
		zap.Bool("locked", s.gate.RetryLocked),
	)
	return s.gate, res, nil
}

func (s *GateService) Questions(ctx context.Context) ([]domain.Question, error) {
	if _, err := s.Begin(ctx); err != nil {
		return nil, err
	}
	questions, err := s.api.Assigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("load evaluation: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no evaluation available", apperrors.ErrNotFound)
	}
	normalized := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		normalized = append(normalized, domain.NormalizeQuestion(q))
	}
	s.mu.Lock()
	s.questions = normalized
	s.mu.Unlock()
	return normalized, nil
}

func (s *GateService) Submit(ctx context.Context, choices map[string]string) (SubmitResult, domain.Gate, error) {
	learner, err := s.learner.Learner(ctx)
	if err != nil {
		return SubmitResult{}, domain.Gate{}, err
	}
	s.mu.Lock()
	questions := s.questions
	s.mu.Unlock()
	if len(questions) == 0 {
		if questions, err = s.Questions(ctx); err != nil {
			return SubmitResult{}, domain.Gate{}, err
		}
	}
	answers, err := domain.BuildAnswers(questions, choices)
	if err != nil {
		return SubmitResult{}, s.Gate(), fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	status, err := s.api.Submit(ctx, learner.UserID, answers)
	if err != nil {
		return SubmitResult{}, s.Gate(), fmt.Errorf("submit evaluation: %w", err)
	}
	passed := status == domain.StatusApproved

	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.gate.Complete(passed)
	if err != nil {
		next = domain.Derive(true, status)
	}
	s.stopLocked()
	s.gate = next
	s.questions = nil
	return SubmitResult{Passed: passed, Status: status}, s.gate, nil
}

// Shutdown stops the countdown.
func (s *GateService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *GateService) ensure(ctx context.Context) error {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if loaded {
		return nil
	}
	_, err := s.Refresh(ctx)
	return err
}

func (s *GateService) setLocked(g domain.Gate) {
	if g.Cooldown <= 0 {
		s.stopLocked()
	}
	s.gate = g
}

func (s *GateService) armLocked(seconds int, message string) {
	s.stopLocked()
	s.gate = s.gate.ArmCooldown(seconds, message)
	if s.gate.Cooldown <= 0 {
		return
	}
	gen := s.generation
	s.countdown = s.scheduler.Every(time.Second, func() { s.tick(gen) })
}

func (s *GateService) tick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.gate.Cooldown--
	if s.gate.Cooldown <= 0 {
		s.gate.Cooldown = 0
		s.stopLocked()
	}
}

func (s *GateService) stopLocked() {
	if s.countdown != nil {
		s.countdown.Cancel()
		s.countdown = nil
	}
	s.generation++
}
