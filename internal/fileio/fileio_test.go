package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	content, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if content != "" {
		t.Errorf("content = %q, want empty", content)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")

	want := "hello\nworld\n"
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("content = %q, want %q", got, want)
	}
}

func TestSaveOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := Save(path, "first"); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, "second"); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("content = %q, want \"second\"", got)
	}
}

func TestSaveLeavesNoSwapFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := Save(path, "text"); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + ".swp"); !os.IsNotExist(err) {
		t.Error("swap file should be gone after a successful save")
	}
}

func TestSavePreservesMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("old"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Save(path, "new"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("mode = %v, want 0755", info.Mode().Perm())
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := Save("", "text"); err != ErrNoPath {
		t.Errorf("err = %v, want ErrNoPath", err)
	}
}

func TestSaveFailureLeavesTargetIntact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := Save(path, "original"); err != nil {
		t.Fatal(err)
	}

	// A directory at the swap path forces the write to fail.
	if err := os.Mkdir(path+".swp", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := Save(path, "updated"); err == nil {
		t.Fatal("expected save to fail")
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != "original" {
		t.Errorf("content = %q, want \"original\" untouched", got)
	}
}
