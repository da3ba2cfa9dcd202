package usecase

import (
	"context"
	"strings"

	"capacita/internal/modules/user/domain"
	"capacita/internal/modules/user/dto"
	userin "capacita/internal/modules/user/port/in"
	"capacita/internal/modules/user/service"
	"capacita/internal/platform/validate"
)

type Interactor struct {
	svc *service.UserService
}

func NewInteractor(svc *service.UserService) userin.Usecase {
	return &Interactor{svc: svc}
}

type fields struct {
	Name  string `validate:"required,min=3,max=30"`
	Email string `validate:"required,min=5,max=50,email"`
	Role  string `validate:"required,oneof=asesor asesorJR gerente_sucursal gerente_zona"`
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) (dto.ListOutput, error) {
	window, query, err := i.svc.List(ctx, input.Query, input.Page)
	if err != nil {
		return dto.ListOutput{}, err
	}
	out := dto.ListOutput{Query: query, Page: window.Page, TotalPages: window.TotalPages, Total: window.Total}
	for _, u := range window.Items {
		out.Items = append(out.Items, toOutput(u))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, id string) (dto.UserOutput, error) {
	u, err := i.svc.Get(ctx, strings.TrimSpace(id))
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(u), nil
}

// Update loads the user first, so the admin check runs before validation.
func (i *Interactor) Update(ctx context.Context, input dto.UpdateUserInput) error {
	current, err := i.svc.Get(ctx, strings.TrimSpace(input.ID))
	if err != nil {
		return err
	}
	merged := fields{
		Name:  pick(input.Name, current.Name),
		Email: pick(input.Email, current.Email),
		Role:  pick(input.Role, current.Role),
	}
	if err := validate.Struct(merged); err != nil {
		return err
	}
	return i.svc.Update(ctx, current, domain.User{Name: merged.Name, Email: merged.Email, Role: merged.Role})
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

func toOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
