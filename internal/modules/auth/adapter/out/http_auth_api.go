package out

import (
	"context"

	"capacita/internal/modules/auth/domain"
	authout "capacita/internal/modules/auth/port/out"
	"capacita/internal/platform/httpapi"
)

type HTTPAuthAPI struct {
	api httpapi.API
}

func NewHTTPAuthAPI(api httpapi.API) authout.AuthAPI {
	return &HTTPAuthAPI{api: api}
}

type profilePayload struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (a *HTTPAuthAPI) Login(ctx context.Context, email, password string) (authout.LoginResult, error) {
	res := struct {
		Token  string `json:"token"`
		Role   string `json:"role"`
		UserID string `json:"userId"`
	}{}
	body := map[string]string{"email": email, "password": password}
	if err := a.api.Post(ctx, "/users/login", body, &res); err != nil {
		return authout.LoginResult{}, err
	}
	return authout.LoginResult{Token: res.Token, Role: res.Role, UserID: res.UserID}, nil
}

func (a *HTTPAuthAPI) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return a.api.Post(ctx, "/users/register", body, nil)
}

func (a *HTTPAuthAPI) ForgotPassword(ctx context.Context, email string) (string, error) {
	res := struct {
		ResetToken string `json:"resetToken"`
	}{}
	if err := a.api.Post(ctx, "/users/forgot-password", map[string]string{"email": email}, &res); err != nil {
		return "", err
	}
	return res.ResetToken, nil
}

func (a *HTTPAuthAPI) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "newPassword": newPassword}
	return a.api.Post(ctx, "/users/reset-password", body, nil)
}

func (a *HTTPAuthAPI) Profile(ctx context.Context) (domain.Profile, error) {
	res := struct {
		profilePayload
		User *profilePayload `json:"user"`
	}{}
	if err := a.api.Get(ctx, "/users/profile", &res); err != nil {
		return domain.Profile{}, err
	}
	p := res.profilePayload
	if res.User != nil {
		p = *res.User
	}
	return domain.Profile{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role}, nil
}

func (a *HTTPAuthAPI) UpdateProfile(ctx context.Context, update authout.ProfileUpdate) (string, error) {
	body := struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		NewPassword     string `json:"newPassword,omitempty"`
		NewSecurityCode string `json:"newSecurityCode,omitempty"`
	}{update.Name, update.Email, update.NewPassword, update.NewSecurityCode}
	res := struct {
		Message string `json:"message"`
	}{}
	if err := a.api.Put(ctx, "/users/profile", body, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (a *HTTPAuthAPI) DeleteProfile(ctx context.Context) error {
	return a.api.Delete(ctx, "/users/profile", nil)
}
