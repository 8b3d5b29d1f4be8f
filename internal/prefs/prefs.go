// Package prefs persists values that outlive a single run, chiefly the list
// of target folders offered by the folder step.
package prefs

import (
	"slices"
	"sync"

	"github.com/interpretive-systems/compgen/internal/config"
)

// Store is a synchronous key-value store of string lists.
type Store interface {
	Get(key string, def []string) []string
	Set(key string, value []string) error
}

// FileStore keeps values in the compgen config file.
type FileStore struct {
	mu  sync.Mutex
	cfg *config.Config
}

// NewFileStore creates a store backed by cfg.
func NewFileStore(cfg *config.Config) *FileStore {
	return &FileStore{cfg: cfg}
}

// Get returns the list under key, or def when the key was never written.
func (s *FileStore) Get(key string, def []string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.cfg.Viper()
	if !v.IsSet(key) {
		return slices.Clone(def)
	}
	return v.GetStringSlice(key)
}

// Set stores value under key and saves the file.
func (s *FileStore) Set(key string, value []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Set(key, value)
}

// Policy decides how a new folder joins the saved list.
type Policy func(folders []string, folder string) []string

// AppendOnly adds every folder at the end, duplicates included.
func AppendOnly(folders []string, folder string) []string {
	return append(folders, folder)
}

// Dedupe adds a folder only if it is not already saved.
func Dedupe(folders []string, folder string) []string {
	if slices.Contains(folders, folder) {
		return folders
	}
	return append(folders, folder)
}

// SavedFolders is the ordered folder list, read once and written through on
// every Add. It is safe for concurrent use.
type SavedFolders struct {
	mu      sync.Mutex
	store   Store
	policy  Policy
	folders []string
}

// LoadSavedFolders reads the list from store. A nil policy means AppendOnly.
func LoadSavedFolders(store Store, policy Policy) *SavedFolders {
	if policy == nil {
		policy = AppendOnly
	}
	return &SavedFolders{
		store:   store,
		policy:  policy,
		folders: store.Get(config.KeySavedFolders, config.DefaultFolders),
	}
}

// List returns a copy of the saved folders in order.
func (s *SavedFolders) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.folders)
}

// Add applies the policy and persists the result. The in-memory list is
// only updated once the store accepted it.
func (s *SavedFolders) Add(folder string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.policy(slices.Clone(s.folders), folder)
	if err := s.store.Set(config.KeySavedFolders, next); err != nil {
		return err
	}
	s.folders = next
	return nil
}
