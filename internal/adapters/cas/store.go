// Package cas implements build state storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultPath is where build state is kept, relative to the working directory.
const DefaultPath = ".kiln/state.json"

// Store implements ports.BuildInfoStore using a flat JSON file keyed by build directory.
type Store struct {
	path   string
	mu     sync.RWMutex
	loaded bool
	cache  map[string]domain.BuildInfo
}

// NewStore creates a new BuildInfoStore backed by the file at the given path.
// The file is read on first use.
func NewStore(path string) *Store {
	return &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BuildInfo),
	}
}

// ensureLoaded reads the state file once. Callers must hold the write lock.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loaded = true
			return nil
		}
		return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
	}

	if len(data) > 0 {
		var entries map[string]domain.BuildInfo
		if err := json.Unmarshal(data, &entries); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "path", s.path)
		}
		// A file holding "null" decodes to a nil map.
		if entries != nil {
			s.cache = entries
		}
	}

	s.loaded = true
	return nil
}

// save writes the state through a temporary file so a crash never leaves it truncated.
// Callers must hold the write lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrStoreWriteFailed, err.Error())
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the build info for a given build directory.
func (s *Store) Get(buildDir string) (*domain.BuildInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	info, ok := s.cache[key(buildDir)]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the build info, replacing any earlier record for the same build directory.
func (s *Store) Put(info domain.BuildInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(); err != nil {
		return err
	}

	info.BuildDir = key(info.BuildDir)
	s.cache[info.BuildDir] = info
	return s.save()
}

func key(buildDir string) string {
	return filepath.ToSlash(filepath.Clean(buildDir))
}
