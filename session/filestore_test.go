package session

import (
	"context"
	"path/filepath"
	"testing"
)

func newFileStoreTest(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := NewFileStore(path, "")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newFileStoreTest(t)
	ctx := context.Background()

	token, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load from missing file: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token from fresh store, got %q", token)
	}

	if err := store.Save(ctx, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	token, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected tok-1, got %q", token)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	token, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load after delete: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token after delete, got %q", token)
	}
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store := newFileStoreTest(t)
	ctx := context.Background()

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("delete on fresh store: %v", err)
	}
	if err := store.Save(ctx, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	ctx := context.Background()

	first, err := NewFileStore(path, "token")
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if err := first.Save(ctx, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}

	second, err := NewFileStore(path, "token")
	if err != nil {
		t.Fatalf("reopen file store: %v", err)
	}
	token, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("expected persisted token after reopen, got %q", token)
	}
}
