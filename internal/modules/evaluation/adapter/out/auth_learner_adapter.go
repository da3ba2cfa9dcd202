package out

import (
	"context"

	authdomain "capacita/internal/modules/auth/domain"
	authin "capacita/internal/modules/auth/port/in"
	evaluationout "capacita/internal/modules/evaluation/port/out"
)

type AuthLearnerAdapter struct {
	auth authin.Usecase
}

func NewAuthLearnerAdapter(auth authin.Usecase) evaluationout.LearnerProvider {
	return &AuthLearnerAdapter{auth: auth}
}

func (a *AuthLearnerAdapter) Learner(ctx context.Context) (evaluationout.Learner, error) {
	session, err := a.auth.Current(ctx)
	if err != nil {
		return evaluationout.Learner{}, err
	}
	return evaluationout.Learner{UserID: session.UserID, Admin: session.Role == authdomain.RoleAdmin}, nil
}
