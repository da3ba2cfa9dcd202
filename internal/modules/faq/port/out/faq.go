package out

import (
	"context"

	"capacita/internal/modules/faq/domain"
)

type FAQAPI interface {
	List(ctx context.Context) ([]domain.FAQ, error)
	Get(ctx context.Context, id string) (domain.FAQ, error)
	Create(ctx context.Context, faq domain.FAQ) error
	Update(ctx context.Context, faq domain.FAQ) error
	Delete(ctx context.Context, id string) error
}

type RoleProvider interface {
	Admin(ctx context.Context) (bool, error)
}
