package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the token in a small JSON file, keyed like the browser
// client keyed its localStorage entry. Writes are atomic (temp file + rename)
// so a crash mid-write never leaves a truncated token behind.
type FileStore struct {
	mu   sync.Mutex
	path string
	key  string
}

// NewFileStore creates a FileStore writing to path. An empty key falls back
// to [DefaultStorageKey].
func NewFileStore(path, key string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path required")
	}
	if key == "" {
		key = DefaultStorageKey
	}
	return &FileStore{path: path, key: key}, nil
}

// DefaultFileStorePath returns the conventional token file location under the
// user state directory.
func DefaultFileStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "pantryclient", "session.json"), nil
}

// Load reads the token from disk. A missing file means no token.
func (f *FileStore) Load(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return "", err
	}
	return values[f.key], nil
}

// Save writes the token through to disk.
func (f *FileStore) Save(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	values[f.key] = token
	return f.write(values)
}

// Delete removes the token entry. Deleting an absent entry is a no-op.
func (f *FileStore) Delete(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return err
	}
	if _, ok := values[f.key]; !ok {
		return nil
	}
	delete(values, f.key)
	return f.write(values)
}

func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode session file: %w", err)
	}
	return values, nil
}

func (f *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}
