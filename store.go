package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// StateStore is the opaque persistence boundary: the whole state goes in
// and out as one serializable value. Schema migration happens inside the
// store, before the state reaches any core logic.
type StateStore interface {
	Load() (*State, error)
	Save(*State) error
}

// FileStore persists the state as a single JSON document on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a store over the given file path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// Load reads and migrates the state document. A missing file yields a fresh
// default state.
func (f *FileStore) Load() (*State, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read state file %q: %w", f.Path, err)
	}
	s, err := DecodeState(raw)
	if err != nil {
		return nil, fmt.Errorf("cannot decode state file %q: %w", f.Path, err)
	}
	return s, nil
}

// Save writes the state atomically: to a temp file first, then renamed over
// the target so a crash never leaves a torn document.
func (f *FileStore) Save(s *State) error {
	raw, err := EncodeState(s)
	if err != nil {
		return fmt.Errorf("cannot encode state: %w", err)
	}
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".tmp*")
	if err != nil {
		return fmt.Errorf("cannot create temp state file: %w", err)
	}
	_, err = tmp.Write(raw)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write state file %q: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot replace state file %q: %w", f.Path, err)
	}
	return nil
}

// MemoryStore keeps the serialized state in memory. It round-trips through
// the same encode/decode path as the file store, which makes it the store
// of choice for tests.
type MemoryStore struct {
	raw []byte
}

// Load decodes the held document, or returns a fresh default state.
func (m *MemoryStore) Load() (*State, error) {
	if m.raw == nil {
		return NewState(), nil
	}
	return DecodeState(m.raw)
}

// Save encodes and replaces the held document.
func (m *MemoryStore) Save(s *State) error {
	raw, err := EncodeState(s)
	if err != nil {
		return err
	}
	m.raw = raw
	return nil
}

var (
	_ StateStore = (*FileStore)(nil)
	_ StateStore = (*MemoryStore)(nil)
)
