package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"capacita/internal/modules/evaluation/domain"
	evaluationout "capacita/internal/modules/evaluation/port/out"
	"capacita/internal/modules/evaluation/service"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/schedule"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeEvaluationAPI struct {
	mu          sync.Mutex
	status      string
	found       bool
	retryAt     time.Time
	retries     []evaluationout.RetryResult
	retryCalls  int
	questions   []domain.Question
	submitted   []domain.Answer
	submitState string
}

func (f *fakeEvaluationAPI) Status(context.Context) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.found, nil
}

func (f *fakeEvaluationAPI) RetryTime(context.Context) (time.Time, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retryAt, !f.retryAt.IsZero(), nil
}

func (f *fakeEvaluationAPI) Retry(context.Context) (evaluationout.RetryResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retryCalls++
	if len(f.retries) == 0 {
		return evaluationout.RetryResult{Granted: true}, nil
	}
	res := f.retries[0]
	f.retries = f.retries[1:]
	return res, nil
}

func (f *fakeEvaluationAPI) Assigned(context.Context) ([]domain.Question, error) {
	return f.questions, nil
}

func (f *fakeEvaluationAPI) Submit(_ context.Context, _ string, answers []domain.Answer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitted = answers
	return f.submitState, nil
}

func (f *fakeEvaluationAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retryCalls
}

type fakeCompletion struct{ done bool }

func (f fakeCompletion) Completed(context.Context) (bool, error) { return f.done, nil }

type fakeLearner struct{ learner evaluationout.Learner }

func (f fakeLearner) Learner(context.Context) (evaluationout.Learner, error) { return f.learner, nil }

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func newGate(api *fakeEvaluationAPI, completed bool) (*service.GateService, *schedule.ManualScheduler) {
	scheduler := schedule.NewManualScheduler()
	svc := service.NewGateService(api, fakeCompletion{done: completed}, fakeLearner{learner: evaluationout.Learner{UserID: "u-1"}}, scheduler, fixedClock{now: now}, nil)
	return svc, scheduler
}

func TestRetryCooldownCountsDownThenRevalidates(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{
		status: domain.StatusFailed,
		found:  true,
		retries: []evaluationout.RetryResult{
			{Message: "Debes esperar", Remaining: 65000 * time.Millisecond},
			{Granted: true, Message: "Puedes reintentar"},
		},
	}
	svc, scheduler := newGate(api, true)
	ctx := context.Background()

	gate, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if gate.State != domain.StateFailed || !gate.CanRetry() {
		t.Fatalf("expected retryable failed gate, got %+v", gate)
	}

	gate, _, err = svc.Retry(ctx)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if gate.Cooldown != 65 || domain.FormatCountdown(gate.Cooldown) != "1:05" {
		t.Fatalf("expected 1:05 countdown, got %+v", gate)
	}
	tasks := scheduler.Active()
	if len(tasks) != 1 || tasks[0].Period != time.Second {
		t.Fatalf("expected one 1s countdown task, got %+v", tasks)
	}

	if _, _, err := svc.Retry(ctx); !errors.Is(err, apperrors.ErrRetryCooldown) {
		t.Fatalf("expected cooldown refusal, got %v", err)
	}
	if api.calls() != 1 {
		t.Fatalf("refused retry must not reach the backend")
	}

	scheduler.Fire(64)
	if g := svc.Gate(); g.Cooldown != 1 || g.CanRetry() {
		t.Fatalf("one second left should still block, got %+v", g)
	}
	scheduler.Fire(1)
	if g := svc.Gate(); g.Cooldown != 0 || !g.CanRetry() {
		t.Fatalf("countdown at zero should re-enable retry, got %+v", g)
	}
	if len(scheduler.Active()) != 0 {
		t.Fatalf("countdown should stop at zero")
	}

	gate, res, err := svc.Retry(ctx)
	if err != nil {
		t.Fatalf("retry after countdown: %v", err)
	}
	if api.calls() != 2 || !res.Granted || gate.State != domain.StateInProgress {
		t.Fatalf("expected backend re-validation and entry, got %+v %+v", gate, res)
	}
}

func TestRetryWithoutRemainingLocks(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{
		status:  domain.StatusFailed,
		found:   true,
		retries: []evaluationout.RetryResult{{Message: "Límite diario alcanzado"}},
	}
	svc, scheduler := newGate(api, true)
	ctx := context.Background()
	gate, _, err := svc.Retry(ctx)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if !gate.RetryLocked || gate.Message != "Límite diario alcanzado" {
		t.Fatalf("expected locked gate, got %+v", gate)
	}
	if len(scheduler.Tasks()) != 0 {
		t.Fatalf("locking must not start a countdown")
	}
	if _, _, err := svc.Retry(ctx); !errors.Is(err, apperrors.ErrRetryLocked) {
		t.Fatalf("expected locked refusal, got %v", err)
	}
	if api.calls() != 1 {
		t.Fatalf("locked retry must not reach the backend")
	}
}

func TestRefreshLiftsLockWhenRetryIsScheduled(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{
		status:  domain.StatusFailed,
		found:   true,
		retries: []evaluationout.RetryResult{{Message: "Límite diario alcanzado"}},
	}
	svc, scheduler := newGate(api, true)
	ctx := context.Background()
	gate, _, err := svc.Retry(ctx)
	if err != nil || !gate.RetryLocked {
		t.Fatalf("expected locked gate, got %+v %v", gate, err)
	}

	api.mu.Lock()
	api.retryAt = now.Add(2 * time.Minute)
	api.mu.Unlock()
	gate, err = svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if gate.RetryLocked || gate.Cooldown != 120 || gate.CanRetry() {
		t.Fatalf("expected lock lifted into a 120s cooldown, got %+v", gate)
	}
	if len(scheduler.Active()) != 1 {
		t.Fatalf("expected the countdown to run")
	}
	scheduler.Fire(120)
	if gate := svc.Gate(); !gate.CanRetry() {
		t.Fatalf("retry should re-enable after the countdown, got %+v", gate)
	}
}

func TestRefreshKeepsLockWithoutFutureRetryTime(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{
		status:  domain.StatusFailed,
		found:   true,
		retries: []evaluationout.RetryResult{{Message: "Límite diario alcanzado"}},
	}
	svc, _ := newGate(api, true)
	ctx := context.Background()
	if _, _, err := svc.Retry(ctx); err != nil {
		t.Fatalf("retry: %v", err)
	}
	api.mu.Lock()
	api.retryAt = now.Add(-time.Minute)
	api.mu.Unlock()
	gate, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if !gate.RetryLocked {
		t.Fatalf("a past retry time should keep the lock, got %+v", gate)
	}
}

func TestRefreshArmsCooldownFromRetryTimestamp(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{status: domain.StatusFailed, found: true, retryAt: now.Add(90 * time.Second)}
	svc, scheduler := newGate(api, true)
	gate, err := svc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if gate.Cooldown != 90 || gate.CanRetry() {
		t.Fatalf("expected 90s cooldown, got %+v", gate)
	}
	svc.Shutdown()
	if len(scheduler.Active()) != 0 {
		t.Fatalf("shutdown should stop the countdown")
	}
}

func TestGateStatesAndBegin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	locked, _ := newGate(&fakeEvaluationAPI{}, false)
	if _, err := locked.Begin(ctx); !errors.Is(err, apperrors.ErrGateLocked) {
		t.Fatalf("incomplete materials should keep the gate locked, got %v", err)
	}

	ready, _ := newGate(&fakeEvaluationAPI{}, true)
	gate, err := ready.Refresh(ctx)
	if err != nil || gate.State != domain.StateReady {
		t.Fatalf("no attempt yet should be ready, got %+v %v", gate, err)
	}
	gate, err = ready.Begin(ctx)
	if err != nil || gate.State != domain.StateInProgress {
		t.Fatalf("begin: %+v %v", gate, err)
	}
	gate, err = ready.Refresh(ctx)
	if err != nil || gate.State != domain.StateInProgress {
		t.Fatalf("refresh should keep an attempt in progress, got %+v %v", gate, err)
	}

	passed, _ := newGate(&fakeEvaluationAPI{status: domain.StatusApproved, found: true}, true)
	if _, _, err := passed.Retry(ctx); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("passed gate cannot retry, got %v", err)
	}
}

func TestAdminHasNoEvaluation(t *testing.T) {
	t.Parallel()
	svc := service.NewGateService(&fakeEvaluationAPI{}, fakeCompletion{done: true}, fakeLearner{learner: evaluationout.Learner{UserID: "a-1", Admin: true}}, schedule.NewManualScheduler(), fixedClock{now: now}, nil)
	if _, err := svc.Refresh(context.Background()); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("expected forbidden for admin, got %v", err)
	}
}

func TestSubmitConvertsTrueFalseAndPasses(t *testing.T) {
	t.Parallel()
	api := &fakeEvaluationAPI{
		questions: []domain.Question{
			{ID: "q1", Text: "El cliente siempre tiene la razón", Type: domain.TypeTrueFalse},
			{ID: "q2", Text: "Color", Type: "opcion_multiple", Options: []domain.Option{{ID: "a", Text: "Rojo"}, {ID: "b", Text: "Azul"}}},
		},
		submitState: domain.StatusApproved,
	}
	svc, _ := newGate(api, true)
	ctx := context.Background()

	questions, err := svc.Questions(ctx)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions[0].Options) != 2 || questions[0].Options[0].Text != domain.OptionTrue {
		t.Fatalf("true/false options not filled: %+v", questions[0])
	}

	if _, _, err := svc.Submit(ctx, map[string]string{"q1": "Falso"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("partial answers should be rejected, got %v", err)
	}

	res, gate, err := svc.Submit(ctx, map[string]string{"q1": "Falso", "q2": "Rojo"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !res.Passed || gate.State != domain.StatePassed {
		t.Fatalf("expected passed gate, got %+v %+v", res, gate)
	}
	if api.submitted[0].SelectedOption != false || api.submitted[1].SelectedOption != "Rojo" {
		t.Fatalf("unexpected submitted answers: %+v", api.submitted)
	}
}
