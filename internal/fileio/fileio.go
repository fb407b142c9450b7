// Package fileio loads and saves buffer contents. Saves are atomic: the
// text is written to a sibling swap file and renamed over the target, so a
// failed write never corrupts the original.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultFileMode is used for files created by Save.
const DefaultFileMode fs.FileMode = 0o644

// ErrNoPath indicates a save was requested for a buffer with no file path.
var ErrNoPath = errors.New("no file path")

// Load reads the file at path. A missing file is not an error: editing a
// new file starts from an empty buffer.
func Load(path string) (string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Save writes content to path atomically. The content lands in path.swp
// first; only a fully written swap file is renamed into place. The mode of
// an existing target is preserved.
func Save(path, content string) error {
	if path == "" {
		return ErrNoPath
	}

	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	swap := path + ".swp"
	if err := writeSwap(swap, content, mode); err != nil {
		return err
	}

	if err := os.Rename(swap, path); err != nil {
		os.Remove(swap)
		return fmt.Errorf("rename %s: %w", swap, err)
	}
	return nil
}

func writeSwap(swap, content string, mode fs.FileMode) error {
	f, err := os.OpenFile(swap, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", swap, err)
	}

	if _, err := io.WriteString(f, content); err != nil {
		f.Close()
		os.Remove(swap)
		return fmt.Errorf("write %s: %w", swap, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(swap)
		return fmt.Errorf("sync %s: %w", swap, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(swap)
		return fmt.Errorf("close %s: %w", swap, err)
	}
	return nil
}
