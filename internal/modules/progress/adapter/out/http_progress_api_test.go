package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	progressadapter "capacita/internal/modules/progress/adapter/out"
	"capacita/internal/modules/progress/domain"
	apperrors "capacita/internal/platform/errors"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
)

func newAPI(t *testing.T, handler http.HandlerFunc) (*httptest.Server, context.Context) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, context.Background()
}

func TestHTTPProgressAPISubmitSendsPayload(t *testing.T) {
	t.Parallel()
	var got map[string]any
	var auth string
	srv, ctx := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/progress/progress" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"message":"ok","totalProgress":55}`))
	})
	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), kv.KeyToken, "tok-1")
	api := progressadapter.NewHTTPProgressAPI(httpapi.New(srv.URL, time.Second, store, nil))

	res, err := api.Submit(ctx, "m-1", domain.KindVideo, 42.5)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.TotalProgress != 55 {
		t.Fatalf("unexpected total: %+v", res)
	}
	if got["trainingId"] != "m-1" || got["type"] != "video" || got["progress"] != 42.5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if auth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", auth)
	}
}

func TestHTTPProgressAPIViewAcceptsBothShapes(t *testing.T) {
	t.Parallel()
	bodies := map[string]string{
		"array":   `[{"trainingId":{"_id":"m-1","title":"Ventas"},"documentProgress":100,"videoProgress":130,"progress":80,"status":"en progreso"},{"trainingId":null}]`,
		"wrapped": `{"progress":[{"trainingId":"m-1","trainingTitle":"Ventas","documentProgress":100,"videoProgress":130,"progress":80,"status":"en progreso"}]}`,
	}
	for name, body := range bodies {
		name, body := name, body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			srv, ctx := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/progress/view/u-1" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				_, _ = w.Write([]byte(body))
			})
			api := progressadapter.NewHTTPProgressAPI(httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))
			records, err := api.View(ctx, "u-1")
			if err != nil {
				t.Fatalf("view: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("expected one record, got %+v", records)
			}
			r := records[0]
			if r.TrainingID != "m-1" || r.Title != "Ventas" || r.VideoProgress != 100 || r.DocumentProgress != 100 {
				t.Fatalf("unexpected record: %+v", r)
			}
		})
	}
}

func TestHTTPProgressAPICompletedAndErrors(t *testing.T) {
	t.Parallel()
	srv, ctx := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/progress/completed/u-1":
			_, _ = w.Write([]byte(`{"allCompleted":true}`))
		case "/progress/start":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"ya iniciado"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	api := progressadapter.NewHTTPProgressAPI(httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))

	done, err := api.Completed(ctx, "u-1")
	if err != nil || !done {
		t.Fatalf("completed: %v %v", done, err)
	}
	if err := api.Start(ctx, "m-1", domain.KindDocument); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for 400, got %v", err)
	}
	if _, err := api.AllProgress(ctx); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestHTTPProgressAPIAllCompletedIDs(t *testing.T) {
	t.Parallel()
	srv, ctx := newAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"userId":{"_id":"u-1","name":"Ana"}},{"userId":"u-2"},{"userId":null}]`))
	})
	api := progressadapter.NewHTTPProgressAPI(httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))
	ids, err := api.AllCompleted(ctx)
	if err != nil {
		t.Fatalf("all completed: %v", err)
	}
	if len(ids) != 2 || ids[0] != "u-1" || ids[1] != "u-2" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}
