package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMediaStore_SaveAndRemove(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStore failed: %v", err)
	}

	name := store.Filename(".png")
	if err := store.Save(name, bytes.NewReader([]byte("image-bytes"))); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir(), name))
	if err != nil {
		t.Fatalf("Stored file unreadable: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Errorf("Stored bytes mismatch: %q", data)
	}
	if !store.Exists(name) {
		t.Error("Exists should report the stored file")
	}

	if err := store.Remove(name); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if store.Exists(name) {
		t.Error("File should be gone after Remove")
	}
}

func TestMediaStore_RemoveMissingIsNotAnError(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStore failed: %v", err)
	}

	if err := store.Remove("never-existed.png"); err != nil {
		t.Errorf("Removing a missing file should be best-effort, got %v", err)
	}
}

func TestMediaStore_FilenameUniqueAndKeepsExtension(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStore failed: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := store.Filename(".jpg")
		if !strings.HasSuffix(name, ".jpg") {
			t.Fatalf("Filename lost the extension: %q", name)
		}
		if seen[name] {
			t.Fatalf("Duplicate filename generated: %q", name)
		}
		seen[name] = true
	}
}

func TestMediaStore_SaveStripsPathComponents(t *testing.T) {
	store, err := NewMediaStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewMediaStore failed: %v", err)
	}

	if err := store.Save("../escape.png", bytes.NewReader([]byte("x"))); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !store.Exists("escape.png") {
		t.Error("Save should only ever use the base filename")
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), "..", "escape.png")); err == nil {
		t.Error("File escaped the media directory")
	}
}

func TestMediaStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewMediaStore(dir); err != nil {
		t.Fatalf("NewMediaStore failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Error("Media directory was not created")
	}
}
