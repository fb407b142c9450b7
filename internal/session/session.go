// Package session remembers per-file editor state between runs, currently
// the last cursor position. State lives in a small JSON file; unreadable
// or corrupt state is discarded rather than reported, since losing a
// remembered position is harmless.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/svanari/edi/internal/engine/rope"
)

// Store reads and writes one session file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file. An empty path
// disables persistence: lookups miss and saves do nothing.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the conventional session file location.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "edi", "session.json")
}

// LastPosition returns the remembered cursor position for file.
func (s *Store) LastPosition(file string) (rope.Position, bool) {
	if s.path == "" || file == "" {
		return rope.Position{}, false
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return rope.Position{}, false
	}

	entry := gjson.GetBytes(data, "files."+escapeKey(file))
	if !entry.Exists() {
		return rope.Position{}, false
	}

	pos := rope.Position{
		Line:   int(entry.Get("line").Int()),
		Column: int(entry.Get("column").Int()),
	}
	if pos.Line < 0 || pos.Column < 0 {
		return rope.Position{}, false
	}
	return pos, true
}

// SavePosition records the cursor position for file.
func (s *Store) SavePosition(file string, pos rope.Position) error {
	if s.path == "" || file == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read session %s: %w", s.path, err)
	}
	if !gjson.ValidBytes(data) {
		data = nil
	}

	key := "files." + escapeKey(file)
	data, err = sjson.SetBytes(data, key+".line", pos.Line)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	data, err = sjson.SetBytes(data, key+".column", pos.Column)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write session %s: %w", s.path, err)
	}
	return nil
}

// escapeKey protects path separators and wildcards from the JSON path
// syntax, so file paths work as object keys.
func escapeKey(key string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		".", "\\.",
		"*", "\\*",
		"?", "\\?",
	)
	return r.Replace(key)
}
