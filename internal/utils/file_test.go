package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsPNGFile(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"sprite.png", true},
		{"SPRITE.PNG", true},
		{"photo.jpg", false},
		{"archive.png.gz", false},
		{"noext", false},
		{"dir/nested.png", true},
	}

	for _, test := range tests {
		if got := IsPNGFile(test.filename); got != test.expected {
			t.Errorf("IsPNGFile(%q) = %v, expected %v", test.filename, got, test.expected)
		}
	}
}

func TestListPNGFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.png", "a.png", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.png"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ListPNGFiles(dir, false)
	if err != nil {
		t.Fatalf("ListPNGFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	// Sorted by name
	if filepath.Base(files[0]) != "a.png" || filepath.Base(files[1]) != "b.png" {
		t.Errorf("unexpected order: %v", files)
	}

	files, err = ListPNGFiles(dir, true)
	if err != nil {
		t.Fatalf("ListPNGFiles recursive failed: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("expected 3 files with recursion, got %d: %v", len(files), files)
	}
}

func TestListPNGFilesMissingDir(t *testing.T) {
	if _, err := ListPNGFiles(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Error("expected error for a missing directory")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if !DirExists(dir) {
		t.Error("directory was not created")
	}

	// Idempotent on an existing directory
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.png")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(path) {
		t.Error("expected FileExists true for a file")
	}
	if FileExists(dir) {
		t.Error("expected FileExists false for a directory")
	}
	if FileExists(filepath.Join(dir, "missing.png")) {
		t.Error("expected FileExists false for a missing path")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("expected DirExists true for a directory")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("expected DirExists false for a missing path")
	}
}
