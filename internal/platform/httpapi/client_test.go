package httpapi_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
)

func TestClientAttachesStoredToken(t *testing.T) {
	t.Parallel()
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get(httpapi.RequestIDHeader)
		_, _ = w.Write([]byte(`{"allCompleted":true}`))
	}))
	defer srv.Close()

	store := kv.NewMemoryStore()
	if err := store.Set(context.Background(), kv.KeyToken, "tok-1"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	client := httpapi.New(srv.URL+"/api/", time.Second, store, zap.NewNop())

	var out struct {
		AllCompleted bool `json:"allCompleted"`
	}
	if err := client.Get(context.Background(), "/progress/completed/u-1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatalf("expected request id header")
	}
	if !out.AllCompleted {
		t.Fatalf("expected decoded body")
	}
}

func TestClientWithoutTokenSendsNoHeader(t *testing.T) {
	t.Parallel()
	var gotAuth string
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		gotBody = buf.String()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil)
	if err := client.Post(context.Background(), "/users/login", map[string]string{"email": "a@b.co"}, nil); err != nil {
		t.Fatalf("post: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no auth header, got %q", gotAuth)
	}
	if !strings.Contains(gotBody, `"email":"a@b.co"`) {
		t.Fatalf("unexpected body: %s", gotBody)
	}
}

func TestClientMapsErrorResponses(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
		case "/cooldown":
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"espera","remainingTime":65000}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		}
	}))
	defer srv.Close()
	client := httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil)

	err := client.Get(context.Background(), "/unauthorized", nil)
	if !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if httpapi.MessageOf(err) != "token expired" {
		t.Fatalf("unexpected message: %q", httpapi.MessageOf(err))
	}

	err = client.Post(context.Background(), "/cooldown", nil, nil)
	var apiErr *httpapi.APIError
	if !errors.As(err, &apiErr) || apiErr.RemainingMS != 65000 || !apiErr.HasRemaining() {
		t.Fatalf("expected remaining time, got %v", err)
	}

	err = client.Delete(context.Background(), "/other", nil)
	if httpapi.StatusOf(err) != http.StatusInternalServerError || httpapi.MessageOf(err) != "boom" {
		t.Fatalf("unexpected error: %v", err)
	}
}
