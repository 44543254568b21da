package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileSlot keeps all keys in one JSON object on disk. Writes go to a temp
// file in the same directory which is synced and renamed over the target, so
// a crash never leaves a half-written file behind.
type FileSlot struct {
	mu   sync.Mutex
	path string
}

// NewFileSlot returns a slot backed by the file at path. The file is created
// on first write.
func NewFileSlot(path string) (*FileSlot, error) {
	if path == "" {
		path = "data/weddingnanny.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create data dir: %w", err)
	}
	return &FileSlot{path: path}, nil
}

func (s *FileSlot) readAll() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	m := map[string]json.RawMessage{}
	if len(b) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("storage: corrupt slot file %s: %w", s.path, err)
	}
	return m, nil
}

// Get returns the value stored under key.
func (s *FileSlot) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readAll()
	if err != nil {
		return nil, false, err
	}
	v, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	var raw string
	if err := json.Unmarshal(v, &raw); err != nil {
		return nil, false, fmt.Errorf("storage: key %q: %w", key, err)
	}
	return []byte(raw), true, nil
}

// Put replaces the value stored under key. Values are kept as JSON strings
// so the file stays readable regardless of what the caller stores.
func (s *FileSlot) Put(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, err := s.readAll()
	if err != nil {
		return err
	}
	enc, err := json.Marshal(string(value))
	if err != nil {
		return err
	}
	m[key] = enc
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path, out, 0o644)
}

// Close is a no-op.
func (s *FileSlot) Close() error { return nil }

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".slot-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("storage: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp file: %w", err)
	}
	tmp = nil
	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: rename temp file: %w", err)
	}
	return nil
}
