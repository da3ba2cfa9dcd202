package out_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	vieweradapter "capacita/internal/modules/viewer/adapter/out"
	"capacita/internal/platform/httpapi"
	"capacita/internal/platform/kv"
)

func TestAssetCacheDownloadsOnce(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		auth.Store(r.Header.Get("Authorization"))
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	t.Cleanup(srv.Close)

	store := kv.NewMemoryStore()
	_ = store.Set(context.Background(), kv.KeyToken, "secret")
	home := t.TempDir()
	cache := vieweradapter.NewAssetCache(home, httpapi.New(srv.URL, time.Second, store, nil))

	url := srv.URL + "/files/manual.pdf?sig=abc"
	first, err := cache.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.HasSuffix(first, ".pdf") || filepath.Dir(first) != filepath.Join(home, "cache") {
		t.Fatalf("unexpected cache path %s", first)
	}
	raw, err := os.ReadFile(first)
	if err != nil || string(raw) != "%PDF-1.4 fake" {
		t.Fatalf("cached content: %q %v", raw, err)
	}
	second, err := cache.Fetch(context.Background(), url)
	if err != nil || second != first {
		t.Fatalf("second fetch: %s %v", second, err)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected a single download, got %d", hits.Load())
	}
	if got, _ := auth.Load().(string); got != "" {
		t.Fatalf("asset downloads must not carry the bearer token, got %q", got)
	}
}

func TestAssetCacheFailureLeavesNoFile(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	home := t.TempDir()
	cache := vieweradapter.NewAssetCache(home, httpapi.New(srv.URL, time.Second, kv.NewMemoryStore(), nil))
	if _, err := cache.Fetch(context.Background(), srv.URL+"/missing.pdf"); err == nil {
		t.Fatalf("expected error for 404")
	}
	entries, _ := os.ReadDir(filepath.Join(home, "cache"))
	if len(entries) != 0 {
		t.Fatalf("failed download left files: %v", entries)
	}
}
