package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LoadStatus tells the caller where the loaded profile came from, so a
// discarded unreadable file can be surfaced instead of silently masked.
type LoadStatus int

const (
	// LoadFresh: no prior state existed; a default profile was returned.
	LoadFresh LoadStatus = iota
	// LoadExisting: prior state was read and parsed.
	LoadExisting
	// LoadCorrupt: prior state existed but could not be parsed; a
	// default profile was returned and the old file is left in place.
	LoadCorrupt
)

// DefaultProfilePath returns the default Forest Log profile location.
func DefaultProfilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".forestlog.json"), nil
}

// ProfileStore persists the full Profile as a single JSON document.
type ProfileStore struct {
	path string
}

func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{path: path}
}

func (s *ProfileStore) Path() string { return s.path }

// Load reads the persisted profile. A missing file yields a default
// profile with LoadFresh; an unparsable file yields a default profile
// with LoadCorrupt. Only real I/O failures return an error.
func (s *ProfileStore) Load() (*Profile, LoadStatus, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewProfile(), LoadFresh, nil
		}
		return nil, LoadFresh, fmt.Errorf("read profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return NewProfile(), LoadCorrupt, nil
	}
	if p.Logs == nil {
		p.Logs = []LogEntry{}
	}
	return &p, LoadExisting, nil
}

// Save writes the full profile, overwriting prior state. The write is
// atomic: the document goes to a temp file in the same directory which
// is then renamed over the target, so an interrupted save never leaves
// a truncated profile behind.
func (s *ProfileStore) Save(p *Profile) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".forestlog-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp profile: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
