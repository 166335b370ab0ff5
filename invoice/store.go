package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store archives issued proforma invoices. Implementations are stateless —
// they perform I/O on each call without caching.
type Store interface {
	// List returns the archive keys of all stored invoices.
	List(ctx context.Context) ([]string, error)
	// Load retrieves the invoice stored under key.
	Load(ctx context.Context, key string) (Proforma, error)
	// Save persists an invoice, creating or overwriting as needed.
	Save(ctx context.Context, p Proforma) error
	// Delete removes an invoice. Missing keys are ignored.
	Delete(ctx context.Context, key string) error
}

// Config holds invoice archive initialization parameters.
type Config struct {
	Path string `json:"path,omitempty"` // Archive root directory; empty disables archiving.
}

// DefaultConfig returns the default invoice configuration (archiving disabled).
func DefaultConfig() Config {
	return Config{}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Path != "" {
		c.Path = source.Path
	}
}

// NewStore creates a Store from configuration. Returns a nil Store when Path
// is empty, indicating archiving is disabled.
func NewStore(cfg *Config) (Store, error) {
	if cfg.Path == "" {
		return nil, nil
	}
	return NewFileStore(cfg.Path), nil
}

type fileStore struct {
	root string
}

// NewFileStore creates a Store backed by the filesystem. Keys map 1:1 to
// file names under root; writes are atomic (temp file + rename).
func NewFileStore(root string) Store {
	return &fileStore{root: root}
}

func (s *fileStore) List(_ context.Context) ([]string, error) {
	var keys []string

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == s.root {
				return fs.SkipAll
			}
			return err
		}

		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return keys, nil
}

func (s *fileStore) Load(_ context.Context, key string) (Proforma, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Proforma{}, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return Proforma{}, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}

	var p Proforma
	if err := json.Unmarshal(data, &p); err != nil {
		return Proforma{}, fmt.Errorf("%w: %s: %v", ErrLoadFailed, key, err)
	}
	return p, nil
}

func (s *fileStore) Save(_ context.Context, p Proforma) error {
	key := p.Key()
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	path := filepath.Join(s.root, filepath.FromSlash(key))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %v", ErrSaveFailed, key, err)
	}

	return nil
}

func (s *fileStore) Delete(_ context.Context, key string) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete failed: %s: %w", key, err)
	}
	return nil
}
