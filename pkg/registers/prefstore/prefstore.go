// Package prefstore provides preference persistence backends for the
// register inspection core.
package prefstore

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EvilEli/cortex-debug/pkg/registers"
	"github.com/EvilEli/cortex-debug/pkg/utils"
)

// FileStore persists the preference record list as a YAML document on disk.
// A missing file is an empty preference set, not an error.
type FileStore struct {
	path string
}

var _ registers.PreferenceStore = (*FileStore)(nil)

// NewFileStore creates a file store writing to the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored record list
func (s *FileStore) Load() ([]registers.PreferenceRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, utils.MakeError(err, "reading preference file %s", s.path)
	}

	var records []registers.PreferenceRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, utils.MakeError(err, "parsing preference file %s", s.path)
	}

	return records, nil
}

// Save overwrites the stored record list wholesale
func (s *FileStore) Save(records []registers.PreferenceRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return utils.MakeError(err, "encoding %d preference records", len(records))
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return utils.MakeError(err, "writing preference file %s", s.path)
	}

	return nil
}

// Memory is an in-memory preference store for tests and ephemeral sessions
type Memory struct {
	records []registers.PreferenceRecord
}

var _ registers.PreferenceStore = (*Memory)(nil)

// Load returns the last saved record list
func (s *Memory) Load() ([]registers.PreferenceRecord, error) {
	return s.records, nil
}

// Save replaces the record list
func (s *Memory) Save(records []registers.PreferenceRecord) error {
	s.records = records
	return nil
}
