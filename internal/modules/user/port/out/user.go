package out

import (
	"context"

	"capacita/internal/modules/user/domain"
)

type UserAPI interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id string) error
}

type RoleProvider interface {
	Admin(ctx context.Context) (bool, error)
}
