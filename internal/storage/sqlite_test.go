package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestKeyValue(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "oceanrun.best"); err != nil || ok {
		t.Fatalf("Get() on empty store = ok %v, err %v; expected absent", ok, err)
	}

	if err := store.Set(ctx, "oceanrun.best", "12"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(ctx, "oceanrun.best", "15"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(ctx, "oceanrun.best")
	if err != nil || !ok {
		t.Fatalf("Get() = ok %v, err %v", ok, err)
	}
	if v != "15" {
		t.Errorf("Get() = %q, expected %q", v, "15")
	}

	if err := store.Delete(ctx, "oceanrun.best"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "oceanrun.best"); ok {
		t.Error("key should be absent after Delete()")
	}
}

func TestKeyValuePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if v, ok, _ := store.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Get() after reopen = %q, %v", v, ok)
	}
}

func TestAssetCache(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assets := []Asset{
		{Cache: "oceanrun-v2", Path: "/index.html", ContentType: "text/html", Body: []byte("old")},
		{Cache: "oceanrun-v3", Path: "/index.html", ContentType: "text/html", Body: []byte("<html>")},
		{Cache: "oceanrun-v3", Path: "/icon.svg", ContentType: "image/svg+xml", Body: []byte("<svg/>")},
	}
	for _, a := range assets {
		if err := store.CachePut(ctx, a); err != nil {
			t.Fatalf("CachePut(%s) failed: %v", a.Path, err)
		}
	}

	got, err := store.CacheMatch(ctx, "oceanrun-v3", "/index.html")
	if err != nil {
		t.Fatalf("CacheMatch() failed: %v", err)
	}
	if got == nil || string(got.Body) != "<html>" || got.ContentType != "text/html" {
		t.Errorf("CacheMatch() = %+v", got)
	}

	miss, err := store.CacheMatch(ctx, "oceanrun-v3", "/missing.js")
	if err != nil || miss != nil {
		t.Errorf("CacheMatch() miss = %+v, %v; expected nil, nil", miss, err)
	}

	versions, err := store.CacheVersions(ctx)
	if err != nil {
		t.Fatalf("CacheVersions() failed: %v", err)
	}
	if len(versions) != 2 || versions[0] != "oceanrun-v2" || versions[1] != "oceanrun-v3" {
		t.Errorf("CacheVersions() = %v", versions)
	}

	if err := store.CacheDelete(ctx, "oceanrun-v2"); err != nil {
		t.Fatalf("CacheDelete() failed: %v", err)
	}
	versions, _ = store.CacheVersions(ctx)
	if len(versions) != 1 || versions[0] != "oceanrun-v3" {
		t.Errorf("after delete CacheVersions() = %v", versions)
	}
}

func TestCachePutReplaces(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	a := Asset{Cache: "c", Path: "/app.js", ContentType: "text/javascript", Body: []byte("1")}
	store.CachePut(ctx, a)
	a.Body = []byte("2")
	if err := store.CachePut(ctx, a); err != nil {
		t.Fatalf("CachePut() failed: %v", err)
	}

	got, _ := store.CacheMatch(ctx, "c", "/app.js")
	if got == nil || string(got.Body) != "2" {
		t.Errorf("expected replaced body, got %+v", got)
	}
}
