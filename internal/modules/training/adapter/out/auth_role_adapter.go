package out

import (
	"context"

	authdomain "capacita/internal/modules/auth/domain"
	authin "capacita/internal/modules/auth/port/in"
	trainingout "capacita/internal/modules/training/port/out"
)

type AuthRoleAdapter struct {
	auth authin.Usecase
}

func NewAuthRoleAdapter(auth authin.Usecase) trainingout.RoleProvider {
	return &AuthRoleAdapter{auth: auth}
}

func (a *AuthRoleAdapter) Admin(ctx context.Context) (bool, error) {
	session, err := a.auth.Current(ctx)
	if err != nil {
		return false, err
	}
	return session.Role == authdomain.RoleAdmin, nil
}
