// Package storage persists small boolean flags between visits.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is a boolean key-value store.
type Store interface {
	Bool(key string) bool
	SetBool(key string, v bool) error
	Remove(key string) error
}

// Keys used across the island.
const (
	KeyIntroSeen = "intro_seen"
	readPrefix   = "read."
)

// ReadKey is the key recording that an object's badge was cleared.
func ReadKey(objectID string) string {
	return readPrefix + objectID
}

// MemStore keeps flags in memory.
type MemStore struct {
	mu    sync.Mutex
	flags map[string]bool
}

func NewMemStore() *MemStore {
	return &MemStore{flags: make(map[string]bool)}
}

func (s *MemStore) Bool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *MemStore) SetBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = v
	return nil
}

func (s *MemStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flags, key)
	return nil
}

type fileState struct {
	Flags map[string]bool `yaml:"flags"`
}

// FileStore writes every change through to a YAML file.
type FileStore struct {
	mu    sync.Mutex
	path  string
	flags map[string]bool
}

// DefaultPath is the state file under the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("storage: config dir: %w", err)
	}
	return filepath.Join(dir, "hexfolio", "state.yaml"), nil
}

// OpenFile loads the state file, starting empty when it does not exist.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{path: path, flags: make(map[string]bool)}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", path, err)
	}
	var st fileState
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("storage: unmarshal %s: %w", path, err)
	}
	for k, v := range st.Flags {
		s.flags[k] = v
	}
	return s, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Bool(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *FileStore) SetBool(key string, v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.flags[key]; ok && cur == v {
		return nil
	}
	s.flags[key] = v
	return s.flushLocked()
}

func (s *FileStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flags[key]; !ok {
		return nil
	}
	delete(s.flags, key)
	return s.flushLocked()
}

// Keys returns the stored keys, sorted.
func (s *FileStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.flags))
	for k := range s.flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *FileStore) flushLocked() error {
	data, err := yaml.Marshal(fileState{Flags: s.flags})
	if err != nil {
		return fmt.Errorf("storage: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("storage: mkdir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: rename %s: %w", s.path, err)
	}
	return nil
}
