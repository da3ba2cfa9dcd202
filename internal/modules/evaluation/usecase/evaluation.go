package usecase

import (
	"context"

	"capacita/internal/modules/evaluation/domain"
	"capacita/internal/modules/evaluation/dto"
	evaluationin "capacita/internal/modules/evaluation/port/in"
	"capacita/internal/modules/evaluation/service"
)

type Interactor struct {
	svc *service.GateService
}

func NewInteractor(svc *service.GateService) evaluationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Status(_ context.Context) dto.GateOutput {
	return toGateOutput(i.svc.Gate())
}

func (i *Interactor) Refresh(ctx context.Context) (dto.GateOutput, error) {
	gate, err := i.svc.Refresh(ctx)
	if err != nil {
		return dto.GateOutput{}, err
	}
	return toGateOutput(gate), nil
}

func (i *Interactor) Begin(ctx context.Context) (dto.GateOutput, error) {
	gate, err := i.svc.Begin(ctx)
	return toGateOutput(gate), err
}

func (i *Interactor) Retry(ctx context.Context) (dto.RetryOutput, error) {
	gate, res, err := i.svc.Retry(ctx)
	out := dto.RetryOutput{
		Granted: res.Granted,
		Message: res.Message,
		Gate:    toGateOutput(gate),
	}
	if gate.Cooldown > 0 {
		out.Countdown = domain.FormatCountdown(gate.Cooldown)
	}
	return out, err
}

func (i *Interactor) Questions(ctx context.Context) ([]dto.QuestionOutput, error) {
	questions, err := i.svc.Questions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionOutput, 0, len(questions))
	for _, q := range questions {
		row := dto.QuestionOutput{ID: q.ID, Text: q.Text, Type: q.Type}
		for _, opt := range q.Options {
			row.Options = append(row.Options, opt.Text)
		}
		out = append(out, row)
	}
	return out, nil
}

func (i *Interactor) Submit(ctx context.Context, input dto.SubmitInput) (dto.SubmitOutput, error) {
	res, gate, err := i.svc.Submit(ctx, input.Answers)
	if err != nil {
		return dto.SubmitOutput{Gate: toGateOutput(gate)}, err
	}
	message := service.MessageFailed
	if res.Passed {
		message = service.MessagePassed
	}
	return dto.SubmitOutput{Passed: res.Passed, Status: res.Status, Message: message, Gate: toGateOutput(gate)}, nil
}

func (i *Interactor) Shutdown() {
	i.svc.Shutdown()
}

func toGateOutput(g domain.Gate) dto.GateOutput {
	out := dto.GateOutput{
		State:       string(g.State),
		CanRetry:    g.CanRetry(),
		Cooldown:    g.Cooldown,
		RetryLocked: g.RetryLocked,
		Message:     g.Message,
	}
	if g.Cooldown > 0 {
		out.Countdown = domain.FormatCountdown(g.Cooldown)
	}
	return out
}
