package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	if _, found, err := fs.Get("campaigns"); err != nil || found {
		t.Fatalf("expected absent key, got found=%v err=%v", found, err)
	}

	doc := []byte(`[{"id":1}]`)
	if err := fs.Set("campaigns", doc); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, found, err := fs.Get("campaigns")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("expected key to exist after set")
	}
	if string(got) != string(doc) {
		t.Fatalf("got %q, want %q", got, doc)
	}

	if err := fs.Set("campaigns", []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = fs.Get("campaigns")
	if string(got) != `[]` {
		t.Fatalf("overwrite not visible, got %q", got)
	}

	if err := fs.Remove("campaigns"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := fs.Get("campaigns"); found {
		t.Fatal("expected key gone after remove")
	}

	// Removing an absent key is a defined empty state.
	if err := fs.Remove("campaigns"); err != nil {
		t.Fatalf("remove absent key: %v", err)
	}
}

func TestFileStoreRejectsEmptyBasePath(t *testing.T) {
	if _, err := NewFileStore("   "); err == nil {
		t.Fatal("expected error for blank base path")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := fs.Set("darkMode", []byte("true")); err != nil {
			t.Fatalf("set: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	ms := NewMemoryStore()
	doc := []byte(`{"id":7}`)
	if err := ms.Set("currentUser", doc); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, found, err := ms.Get("currentUser")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}

	// Mutating the returned slice must not corrupt the stored document.
	got[0] = 'X'
	again, _, _ := ms.Get("currentUser")
	if string(again) != string(doc) {
		t.Fatalf("stored document mutated through caller slice: %q", again)
	}
}
