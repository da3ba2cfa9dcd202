package kv_test

import (
	"context"
	"path/filepath"
	"testing"

	"capacita/internal/platform/kv"
)

func exerciseStore(t *testing.T, store kv.Store) {
	t.Helper()
	ctx := context.Background()
	if _, ok, err := store.Get(ctx, "dwell:m-1"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := store.Set(ctx, "dwell:m-1", "30"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "dwell:m-1", "40"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, ok, err := store.Get(ctx, "dwell:m-1")
	if err != nil || !ok || v != "40" {
		t.Fatalf("expected 40, got %q ok=%v err=%v", v, ok, err)
	}
	if err := store.Remove(ctx, "dwell:m-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(ctx, "dwell:m-1"); err != nil {
		t.Fatalf("remove twice should be a no-op: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "dwell:m-1"); ok {
		t.Fatalf("expected key removed")
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	exerciseStore(t, kv.NewMemoryStore())
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "nested", "capacita.db")
	store, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("new sqlite store: %v", err)
	}
	exerciseStore(t, store)
	if err := store.Set(context.Background(), kv.KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := kv.NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen sqlite store: %v", err)
	}
	defer reopened.Close()
	v, ok, err := reopened.Get(context.Background(), kv.KeyToken)
	if err != nil || !ok || v != "abc" {
		t.Fatalf("expected persisted token, got %q ok=%v err=%v", v, ok, err)
	}
}
