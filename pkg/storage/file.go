package storage

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// FileStore keeps each artifact as <id>.json (metadata) and <id>.bin (data).
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based store.
// If baseDir is empty, defaults to ~/.local/share/seasonviz/artifacts/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "seasonviz", "artifacts")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) metaPath(id string) string { return filepath.Join(s.baseDir, id+".json") }
func (s *FileStore) dataPath(id string) string { return filepath.Join(s.baseDir, id+".bin") }

func (s *FileStore) Put(ctx context.Context, a *Artifact) error {
	if err := prepare(a); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	meta, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	if err := os.WriteFile(s.dataPath(a.ID), a.Data, 0o644); err != nil {
		return fmt.Errorf("write artifact data: %w", err)
	}
	if err := os.WriteFile(s.metaPath(a.ID), meta, 0o644); err != nil {
		return fmt.Errorf("write artifact metadata: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*Artifact, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, err := s.readMeta(s.metaPath(id))
	if os.IsNotExist(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.dataPath(id))
	if os.IsNotExist(err) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("read artifact data: %w", err)
	}
	a.Data = data
	return a, nil
}

func (s *FileStore) List(ctx context.Context, limit int) ([]*Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read artifact dir: %w", err)
	}
	var out []*Artifact
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		a, err := s.readMeta(filepath.Join(s.baseDir, e.Name()))
		if err != nil {
			continue
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b *Artifact) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range []string{s.metaPath(id), s.dataPath(id)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove artifact: %w", err)
		}
	}
	return nil
}

func (s *FileStore) Close() error { return nil }

// Path returns the base directory for artifact files.
func (s *FileStore) Path() string {
	return s.baseDir
}

func (s *FileStore) readMeta(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact metadata: %w", err)
	}
	return &a, nil
}

var _ Store = (*FileStore)(nil)
