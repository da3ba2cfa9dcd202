package out

import (
	"context"
	"net/url"

	"capacita/internal/modules/user/domain"
	userout "capacita/internal/modules/user/port/out"
	"capacita/internal/platform/httpapi"
)

type HTTPUserAPI struct {
	api httpapi.API
}

func NewHTTPUserAPI(api httpapi.API) userout.UserAPI {
	return &HTTPUserAPI{api: api}
}

type userPayload struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *HTTPUserAPI) List(ctx context.Context) ([]domain.User, error) {
	var raw []userPayload
	if err := a.api.Get(ctx, "/users/list", &raw); err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toDomain())
	}
	return out, nil
}

func (a *HTTPUserAPI) Get(ctx context.Context, id string) (domain.User, error) {
	p := userPayload{}
	if err := a.api.Get(ctx, "/users/list/"+url.PathEscape(id), &p); err != nil {
		return domain.User{}, err
	}
	u := p.toDomain()
	if u.ID == "" {
		u.ID = id
	}
	return u, nil
}

func (a *HTTPUserAPI) Update(ctx context.Context, u domain.User) error {
	return a.api.Put(ctx, "/users/update/"+url.PathEscape(u.ID), userPayload{Name: u.Name, Email: u.Email, Role: u.Role}, nil)
}

func (a *HTTPUserAPI) Delete(ctx context.Context, id string) error {
	return a.api.Delete(ctx, "/users/delete/"+url.PathEscape(id), nil)
}

func (p userPayload) toDomain() domain.User {
	return domain.User{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role}
}
