package usecase

import (
	"context"
	"strings"

	"capacita/internal/modules/faq/domain"
	"capacita/internal/modules/faq/dto"
	faqin "capacita/internal/modules/faq/port/in"
	"capacita/internal/modules/faq/service"
	"capacita/internal/platform/validate"
)

type Interactor struct {
	svc *service.FAQService
}

func NewInteractor(svc *service.FAQService) faqin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) (dto.ListOutput, error) {
	window, query, err := i.svc.List(ctx, input.Query, input.Page)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Query: query, Page: window.Page, TotalPages: window.TotalPages, Total: window.Total}
	for _, f := range window.Items {
		out.Items = append(out.Items, toOutput(f))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.FAQOutput, error) {
	f, err := i.svc.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.FAQOutput{}, err
	}
	return toOutput(f), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.CreateFAQInput) error {
	input.Question = strings.TrimSpace(input.Question)
	input.Answer = strings.TrimSpace(input.Answer)
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.svc.Create(ctx, domain.FAQ{Question: input.Question, Answer: input.Answer, Roles: input.Roles})
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateFAQInput) error {
	current, err := i.svc.Get(ctx, strings.TrimSpace(input.ID))
	if err != nil {
		return err
	}
	merged := dto.CreateFAQInput{
		Question: pick(input.Question, current.Question),
		Answer:   pick(input.Answer, current.Answer),
		Roles:    current.Roles,
	}
	if len(input.Roles) > 0 {
		merged.Roles = input.Roles
	}
	if err := validate.Struct(merged); err != nil {
		return err
	}
	return i.svc.Update(ctx, current, domain.FAQ{Question: merged.Question, Answer: merged.Answer, Roles: merged.Roles})
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, strings.TrimSpace(id))
}

func pick(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func toOutput(f domain.FAQ) dto.FAQOutput {
	return dto.FAQOutput{ID: f.ID, Question: f.Question, Answer: f.Answer, Roles: f.Roles}
}
