package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	useradapter "capacita/internal/modules/user/adapter/out"
	"capacita/internal/modules/user/domain"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
)

func TestHTTPUserAPIPaths(t *testing.T) {
	t.Parallel()
	var seen []string
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		switch r.URL.Path {
		case "/users/list/u-1":
			_, _ = w.Write([]byte(`{"_id":"u-1","name":"Ana Lopez","email":"ana@empresa.mx","role":"asesor"}`))
		case "/users/update/u-1":
			_ = json.NewDecoder(r.Body).Decode(&body)
			_, _ = w.Write([]byte(`{"message":"ok"}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)
	ctx := context.Background()
	api := useradapter.NewHTTPUserAPI(httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))

	u, err := api.Get(ctx, "u-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Name != "Ana Lopez" || u.Role != "asesor" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if err := api.Update(ctx, domain.User{ID: "u-1", Name: "Ana Lopez", Email: "ana@empresa.mx", Role: "gerente_zona"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := api.Delete(ctx, "u-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	want := []string{"GET /users/list/u-1", "PUT /users/update/u-1", "DELETE /users/delete/u-1"}
	for i, w := range want {
		if i >= len(seen) || seen[i] != w {
			t.Fatalf("unexpected requests: %v", seen)
		}
	}
	if body["role"] != "gerente_zona" || len(body) != 3 {
		t.Fatalf("unexpected update body: %+v", body)
	}
}
