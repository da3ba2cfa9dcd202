package out

import (
	"context"

	authin "capacita/internal/modules/auth/port/in"
	"capacita/internal/modules/progress/domain"
	progressout "capacita/internal/modules/progress/port/out"
)

type AuthIdentityAdapter struct {
	auth authin.Usecase
}

func NewAuthIdentityAdapter(auth authin.Usecase) progressout.IdentityProvider {
	return &AuthIdentityAdapter{auth: auth}
}

func (a *AuthIdentityAdapter) Identity(ctx context.Context) (domain.Identity, error) {
	session, err := a.auth.Current(ctx)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: session.UserID, Role: session.Role}, nil
}
