package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	authoutadapter "capacita/internal/modules/auth/adapter/out"
	"capacita/internal/modules/auth/domain"
	"capacita/internal/modules/auth/dto"
	authin "capacita/internal/modules/auth/port/in"
	authout "capacita/internal/modules/auth/port/out"
	"capacita/internal/modules/auth/service"
	"capacita/internal/modules/auth/usecase"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/kv"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fakeAuthAPI struct {
	token    string
	profile  domain.Profile
	updates  []authout.ProfileUpdate
	deleted  bool
	loginErr error
}

func (f *fakeAuthAPI) Login(_ context.Context, email, _ string) (authout.LoginResult, error) {
	if f.loginErr != nil {
		return authout.LoginResult{}, f.loginErr
	}
	return authout.LoginResult{Token: f.token, Role: "asesor", UserID: "u-1"}, nil
}
func (f *fakeAuthAPI) Register(context.Context, string, string, string) error { return nil }
func (f *fakeAuthAPI) ForgotPassword(context.Context, string) (string, error) {
	return "reset-1", nil
}
func (f *fakeAuthAPI) ResetPassword(context.Context, string, string) error { return nil }
func (f *fakeAuthAPI) Profile(context.Context) (domain.Profile, error)    { return f.profile, nil }
func (f *fakeAuthAPI) UpdateProfile(_ context.Context, u authout.ProfileUpdate) (string, error) {
	f.updates = append(f.updates, u)
	return service.ProfileUpdatedMessage, nil
}
func (f *fakeAuthAPI) DeleteProfile(context.Context) error {
	f.deleted = true
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	raw, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newUsecase(api *fakeAuthAPI, store kv.Store, now time.Time) (authin.Usecase, kv.Store) {
	svc := service.NewAuthService(fixedClock{now: now}, api, authoutadapter.NewKVSessionStore(store), authoutadapter.NewJWTInspector(), nil)
	return usecase.NewInteractor(svc), store
}

func TestLoginPersistsSessionKeys(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	api := &fakeAuthAPI{token: signedToken(t, now.Add(time.Hour))}
	uc, store := newUsecase(api, kv.NewMemoryStore(), now)

	out, err := uc.Login(context.Background(), dto.LoginInput{Email: "ana@corp.mx", Password: "x"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !out.LoggedIn || out.UserID != "u-1" || out.Role != "asesor" {
		t.Fatalf("unexpected session: %+v", out)
	}
	if !out.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expected exp from token, got %v", out.ExpiresAt)
	}
	for key, want := range map[string]string{kv.KeyToken: api.token, kv.KeyUserID: "u-1", kv.KeyRole: "asesor"} {
		got, ok, _ := store.Get(context.Background(), key)
		if !ok || got != want {
			t.Fatalf("key %s = %q, want %q", key, got, want)
		}
	}
	if err := uc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrNotLoggedIn) {
		t.Fatalf("expected not logged in after logout, got %v", err)
	}
}

func TestCurrentClearsExpiredToken(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), kv.KeyToken, signedToken(t, now.Add(-time.Minute)))
	_ = store.Set(context.Background(), kv.KeyUserID, "u-1")
	uc, _ := newUsecase(&fakeAuthAPI{}, store, now)

	if _, err := uc.Current(context.Background()); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected expired session, got %v", err)
	}
	if _, ok, _ := store.Get(context.Background(), kv.KeyToken); ok {
		t.Fatalf("expired token should be cleared")
	}
}

func TestLoginAndRegisterValidation(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(&fakeAuthAPI{token: "t"}, kv.NewMemoryStore(), time.Now())
	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "bad", Password: "x"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid email, got %v", err)
	}
	err := uc.Register(context.Background(), dto.RegisterInput{Name: "Ana 2", Email: "ana@corp.mx", Password: "Secreto1!"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("digits in name should fail, got %v", err)
	}
	if err := uc.Register(context.Background(), dto.RegisterInput{Name: "Ana Núñez", Email: "ana@corp.mx", Password: "Secreto1!"}); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func TestUpdateProfileRules(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	api := &fakeAuthAPI{
		token:   signedToken(t, now.Add(time.Hour)),
		profile: domain.Profile{ID: "u-1", Name: "Ana Lopez", Email: "ana@corp.mx", Role: "asesor"},
	}
	uc, store := newUsecase(api, kv.NewMemoryStore(), now)
	if _, err := uc.Login(context.Background(), dto.LoginInput{Email: "ana@corp.mx", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	_, err := uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{Name: "Ana Lopez ", Email: " ana@corp.mx"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("no-change update should fail, got %v", err)
	}

	out, err := uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{Name: "Ana Maria", Email: "ana@corp.mx"})
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if out.LoggedOut || out.Profile.Name != "Ana Maria" {
		t.Fatalf("unexpected update output: %+v", out)
	}

	out, err = uc.UpdateProfile(context.Background(), dto.UpdateProfileInput{Name: "Ana Maria", Email: "ana@corp.mx", NewPassword: "Nuevo123$"})
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	if !out.LoggedOut {
		t.Fatalf("password change should log out")
	}
	if _, ok, _ := store.Get(context.Background(), kv.KeyToken); ok {
		t.Fatalf("token should be removed after password change")
	}
	if len(api.updates) != 2 || api.updates[1].NewPassword != "Nuevo123$" {
		t.Fatalf("unexpected updates sent: %+v", api.updates)
	}
}
