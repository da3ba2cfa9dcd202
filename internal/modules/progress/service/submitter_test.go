package service_test

import (
	"context"
	"errors"
	"testing"

	"capacita/internal/modules/progress/domain"
	"capacita/internal/modules/progress/service"
	"capacita/internal/platform/httpapi"
)

func TestSubmitSameValueTwiceCallsOnce(t *testing.T) {
	t.Parallel()
	h := newHarness(&fakeAPI{}, learner)
	ctx := context.Background()

	first, err := h.submitter.Submit(ctx, "m-1", domain.KindDocument, 10)
	if err != nil || !first.Sent {
		t.Fatalf("first submit: %+v %v", first, err)
	}
	second, err := h.submitter.Submit(ctx, "m-1", domain.KindDocument, 10)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if second.Sent || second.SkipReason != service.SkipDuplicate {
		t.Fatalf("expected duplicate skip, got %+v", second)
	}
	if _, err := h.submitter.Submit(ctx, "m-1", domain.KindDocument, 5); err != nil {
		t.Fatalf("regression submit: %v", err)
	}
	if got := len(h.api.submitted()); got != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", got)
	}
	if _, err := h.submitter.Submit(ctx, "m-1", domain.KindVideo, 10); err != nil {
		t.Fatalf("video submit: %v", err)
	}
	if got := len(h.api.submitted()); got != 2 {
		t.Fatalf("kinds are tracked separately, got %d calls", got)
	}
}

func TestSubmitClampsBeforeSending(t *testing.T) {
	t.Parallel()
	h := newHarness(&fakeAPI{}, learner)
	ctx := context.Background()
	if _, err := h.submitter.Submit(ctx, "m-1", domain.KindVideo, 100.0000001); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := h.submitter.Submit(ctx, "m-2", domain.KindVideo, -4); err != nil {
		t.Fatalf("submit: %v", err)
	}
	calls := h.api.submitted()
	if len(calls) != 2 || calls[0].pct != 100 || calls[1].pct != 0 {
		t.Fatalf("expected clamped values, got %+v", calls)
	}
}

func TestSubmitBadRequestIsBenign(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{submitErr: &httpapi.APIError{Status: 400, Message: "already completed"}}
	h := newHarness(api, learner)
	out, err := h.submitter.Submit(context.Background(), "m-1", domain.KindDocument, 100)
	if err != nil {
		t.Fatalf("400 should not surface: %v", err)
	}
	if out.SkipReason != service.SkipAlreadyRecorded {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if h.notifier.total() != 0 {
		t.Fatalf("400 should not notify")
	}
	_, _ = h.submitter.Submit(context.Background(), "m-1", domain.KindDocument, 100)
	if got := len(api.submitted()); got != 1 {
		t.Fatalf("recorded value should not be resent, got %d calls", got)
	}
}

func TestSubmitFailureNotifiesAndAllowsResend(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{submitErr: &httpapi.APIError{Status: 500, Message: "boom"}}
	h := newHarness(api, learner)
	ctx := context.Background()
	if _, err := h.submitter.Submit(ctx, "m-1", domain.KindDocument, 20); err == nil {
		t.Fatalf("expected error")
	}
	if h.notifier.count(domain.NoticeError) != 1 {
		t.Fatalf("expected one error notice")
	}
	_, _ = h.submitter.Submit(ctx, "m-1", domain.KindDocument, 20)
	if got := len(api.submitted()); got != 2 {
		t.Fatalf("failed value should be sendable again, got %d calls", got)
	}
}

func TestSubmitUnauthorizedWarns(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{submitErr: &httpapi.APIError{Status: 401}}
	h := newHarness(api, learner)
	_, err := h.submitter.Submit(context.Background(), "m-1", domain.KindDocument, 20)
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
	if h.notifier.count(domain.NoticeWarning) != 1 || h.notifier.notices[0].Message != service.MessageSessionExpired {
		t.Fatalf("expected session expired warning, got %+v", h.notifier.notices)
	}
}

func TestAdminSubmitIsSkippedSilently(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{submitErr: &httpapi.APIError{Status: 500}}
	h := newHarness(api, domain.Identity{UserID: "a-1", Role: domain.RoleAdmin})
	out, err := h.submitter.Submit(context.Background(), "m-1", domain.KindDocument, 50)
	if err != nil || out.SkipReason != service.SkipAdmin {
		t.Fatalf("expected admin skip, got %+v %v", out, err)
	}
	if len(api.submitted()) != 0 || h.notifier.total() != 0 {
		t.Fatalf("admin should produce no calls or notices")
	}
}

func TestGateTransitionNotifiesOnce(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{required: []string{"m-1", "m-2"}}
	h := newHarness(api, learner)
	ctx := context.Background()

	steps := []struct {
		id   string
		kind domain.Kind
		pct  float64
		all  bool
	}{
		{"m-1", domain.KindDocument, 100, false},
		{"m-2", domain.KindDocument, 50, false},
		{"m-2", domain.KindDocument, 100, true},
		{"m-2", domain.KindVideo, 100, true},
	}
	for _, step := range steps {
		out, err := h.submitter.Submit(ctx, step.id, step.kind, step.pct)
		if err != nil {
			t.Fatalf("submit %+v: %v", step, err)
		}
		if out.AllCompleted != step.all {
			t.Fatalf("step %+v: allCompleted=%v", step, out.AllCompleted)
		}
	}
	if got := h.notifier.count(domain.NoticeSuccess); got != 1 {
		t.Fatalf("expected exactly one success notice, got %d", got)
	}
	if !h.submitter.AllCompleted() {
		t.Fatalf("gate should be open")
	}
}

func TestPrimeSeedsLastValues(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{records: []domain.Record{{TrainingID: "m-1", DocumentProgress: 40}}}
	h := newHarness(api, learner)
	out, err := h.submitter.Submit(context.Background(), "m-1", domain.KindDocument, 30)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Sent {
		t.Fatalf("value below server progress should not be sent")
	}
	if h.submitter.Prior("m-1", domain.KindDocument) != 40 {
		t.Fatalf("expected cached prior progress")
	}
}
