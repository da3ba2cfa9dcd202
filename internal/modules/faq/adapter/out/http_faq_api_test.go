package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	faqadapter "capacita/internal/modules/faq/adapter/out"
	"capacita/internal/modules/faq/domain"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
)

func TestHTTPFAQAPIRoundTrip(t *testing.T) {
	t.Parallel()
	var put map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/faqs":
			_, _ = w.Write([]byte(`[{"_id":"f-1","question":"¿Qué es?","answer":"Una respuesta","roles":["asesor"]}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/faqs/f-1":
			_ = json.NewDecoder(r.Body).Decode(&put)
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodPost && r.URL.Path == "/faqs":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"Ya existe un FAQ con la misma pregunta y roles"}`))
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	ctx := context.Background()
	api := faqadapter.NewHTTPFAQAPI(httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))

	faqs, err := api.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(faqs) != 1 || faqs[0].ID != "f-1" || faqs[0].Roles[0] != "asesor" {
		t.Fatalf("unexpected faqs: %+v", faqs)
	}
	if err := api.Update(ctx, domain.FAQ{ID: "f-1", Question: "¿Qué es esto?", Answer: "Una respuesta", Roles: []string{"asesor"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if put["question"] != "¿Qué es esto?" || put["_id"] != nil {
		t.Fatalf("unexpected put body: %+v", put)
	}
	err = api.Create(ctx, domain.FAQ{Question: "¿Qué es?", Answer: "Una respuesta", Roles: []string{"asesor"}})
	if !errors.Is(err, apperrors.ErrInvalidInput) || httpapi.MessageOf(err) != "Ya existe un FAQ con la misma pregunta y roles" {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}
